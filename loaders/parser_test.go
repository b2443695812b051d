package loaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowsSkipsHeadersAndPlaceholders(t *testing.T) {
	raw := "Zone,District,AC\n" +
		"h2,h2,h2\n" +
		"Kannur,Kannur North,Thalassery\n" +
		",,,\n" +
		"   \n" +
		"Kollam,Kollam East,Punalur\n"

	rows := ParseRows(raw, 2, 3)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Kannur", "Kannur North", "Thalassery"}, rows[0])
	assert.Equal(t, []string{"Kollam", "Kollam East", "Punalur"}, rows[1])
}

func TestParseRowsSkipsShortRows(t *testing.T) {
	raw := "header\n" +
		"Kannur,Kannur North,Thalassery\n" +
		"Kollam,Kollam East\n" // one field short

	rows := ParseRows(raw, 1, 3)
	require.Len(t, rows, 1)
	assert.Equal(t, "Thalassery", rows[0][2])
}

func TestParseRowsCleansFields(t *testing.T) {
	raw := "header\n" +
		"\"Kannur\", Kannur North ,\"Thalassery\"\r\n"

	rows := ParseRows(raw, 1, 3)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Kannur", "Kannur North", "Thalassery"}, rows[0])
}

func TestParseRowsEmptyInput(t *testing.T) {
	assert.Nil(t, ParseRows("", 1, 3))
	assert.Empty(t, ParseRows("only a header\n", 1, 3))
}

func TestNASentinels(t *testing.T) {
	assert.Equal(t, "0%", normalizeShare("NA"))
	assert.Equal(t, "0%", normalizeShare("n/a"))
	assert.Equal(t, "0%", normalizeShare(""))
	assert.Equal(t, "12.5%", normalizeShare("12.5%"))

	assert.Equal(t, "0", normalizeCount("NA"))
	assert.Equal(t, "0", normalizeCount(""))
	assert.Equal(t, "45123", normalizeCount("45123"))
}
