package loaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeConvergesSpellingVariants(t *testing.T) {
	tests := []struct {
		raw       string
		kind      NameKind
		canonical string
	}{
		{"Trivandrum", KindZone, "Thiruvananthapuram"},
		{"TVM", KindZone, "Thiruvananthapuram"},
		{"  trivandrum  ", KindZone, "Thiruvananthapuram"},
		{"CALICUT", KindZone, "Kozhikode"},
		{"Alleppey", KindZone, "Alappuzha"},
		{"kasargod", KindOrgDistrict, "Kasaragod"},
		{"tvm city", KindOrgDistrict, "Thiruvananthapuram City"},
		{"Kazhakuttam", KindAC, "Kazhakkoottam"},
		{"kazhakootam", KindAC, "Kazhakkoottam"},
		{"Tellicherry", KindAC, "Thalassery"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.canonical, Normalize(tt.raw, tt.kind), "raw=%q", tt.raw)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, name := range []string{"Thiruvananthapuram", "Kozhikode", "Kannur"} {
		once := Normalize(name, KindZone)
		assert.Equal(t, name, once)
		assert.Equal(t, once, Normalize(once, KindZone))
	}
}

func TestNormalizeFallsBackToInput(t *testing.T) {
	// Unknown names must round-trip unchanged so insert and lookup agree
	assert.Equal(t, "Some New Zone", Normalize("Some New Zone", KindZone))
	assert.Equal(t, "Some New Zone", Normalize("  Some   New  Zone ", KindZone))
	assert.Equal(t, "", Normalize("   ", KindAC))
}
