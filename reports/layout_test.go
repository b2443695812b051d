package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

func TestDistrictPanchayatLayoutHasThreeColumns(t *testing.T) {
	layout := LayoutFor(models.TypeDistrictPanchayat)
	require.Len(t, layout, 3)
	assert.Equal(t, "#", layout[0].Label)
	assert.Equal(t, "District", layout[1].Label)
	assert.Equal(t, "Division Name", layout[2].Label)
}

func TestUnknownTypeGetsDefaultLayout(t *testing.T) {
	layout := LayoutFor("Something Else")
	require.Len(t, layout, 4)
	assert.Equal(t, []string{"#", "Name", "District", "Type"},
		labels(layout))
}

func TestLayoutWidthsFitA4(t *testing.T) {
	// 190mm printable width with 10mm margins
	check := func(name string, layout []Column) {
		total := 0.0
		for _, c := range layout {
			total += c.Width
		}
		assert.InDelta(t, 190, total, 0.5, "layout %s", name)
	}

	for _, typ := range []string{
		models.TypeDistrictPanchayat,
		models.TypeBlockPanchayat,
		models.TypeGramaPanchayat,
		models.TypeMunicipality,
		models.TypeCorporation,
		"unknown",
	} {
		check(typ, LayoutFor(typ))
	}
	check("voter", VoterLayout())
}

func labels(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}
