package loaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

func TestSetLeafOverwritesDuplicates(t *testing.T) {
	m := make(ACVoteShareMap)
	setLeaf(m, "Kannur", "Kannur North", "Thalassery", models.VoteShareRecord{
		GE2024: models.Measurement{VoteShare: "10%", Votes: "100"},
	})
	setLeaf(m, "Kannur", "Kannur North", "Thalassery", models.VoteShareRecord{
		GE2024: models.Measurement{VoteShare: "20%", Votes: "200"},
	})

	record, ok := m.Get("Kannur", "Kannur North", "Thalassery")
	require.True(t, ok)
	assert.Equal(t, "20%", record.GE2024.VoteShare)
}

func TestAppendLeafIsAdditiveInOrder(t *testing.T) {
	m := make(MandalVoteShareMap)
	for _, name := range []string{"Eranholi", "Dharmadam", "Pinarayi"} {
		appendLeaf(m, "Kannur", "Kannur North", "Thalassery", models.MandalVoteShare{Mandal: name})
	}

	assert.Equal(t, []string{"Eranholi", "Dharmadam", "Pinarayi"},
		m.MandalsIn("Kannur", "Kannur North", "Thalassery"))
}

func TestGetNormalizesLookupKeys(t *testing.T) {
	m := make(ACVoteShareMap)
	// Inserted under canonical names, as the loader does
	setLeaf(m,
		Normalize("Trivandrum", KindZone),
		Normalize("tvm city", KindOrgDistrict),
		Normalize("kazhakuttam", KindAC),
		models.VoteShareRecord{Target2025: models.Measurement{VoteShare: "35%", Votes: "64000"}},
	)

	// Looked up under a different variant of every level
	record, ok := m.Get("TVM", "Thiruvananthapuram City", "Kazhakkoottam")
	require.True(t, ok)
	assert.Equal(t, "35%", record.Target2025.VoteShare)
}

func TestGetMissReturnsEmpty(t *testing.T) {
	m := make(ACVoteShareMap)
	setLeaf(m, "Kannur", "Kannur North", "Thalassery", models.VoteShareRecord{})

	_, ok := m.Get("Kannur", "Kannur South", "Thalassery")
	assert.False(t, ok)
	_, ok = m.Get("Nowhere", "Kannur North", "Thalassery")
	assert.False(t, ok)

	mandals := make(MandalVoteShareMap)
	assert.Nil(t, mandals.Get("Kannur", "Kannur North", "Thalassery"))
	assert.Nil(t, mandals.MandalsIn("Kannur", "Kannur North", "Thalassery"))
}

func TestNavigationListingsAreSorted(t *testing.T) {
	m := make(ACVoteShareMap)
	setLeaf(m, "Kozhikode", "Kozhikode City", "Kozhikode South", models.VoteShareRecord{})
	setLeaf(m, "Kannur", "Kannur North", "Thalassery", models.VoteShareRecord{})
	setLeaf(m, "Kannur", "Kannur South", "Azhikode", models.VoteShareRecord{})

	assert.Equal(t, []string{"Kannur", "Kozhikode"}, m.Zones())
	assert.Equal(t, []string{"Kannur North", "Kannur South"}, m.DistrictsIn("Kannur"))
	assert.Equal(t, []string{"Thalassery"}, m.ACsIn("Kannur", "Kannur North"))
	assert.Nil(t, m.DistrictsIn("Nowhere"))
}
