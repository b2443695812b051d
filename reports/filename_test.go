package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Kannur North - Grama Panchayats", "Kannur_North_Grama_Panchayats.pdf"},
		{"  Voters (Booth #12)  ", "Voters_Booth_12.pdf"},
		{"___", "report.pdf"},
		{"plain", "plain.pdf"},
		{"already_clean_name", "already_clean_name.pdf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeFileName(tt.title), "title=%q", tt.title)
	}
}

func TestSummaryFileNameAppendsISODate(t *testing.T) {
	now := time.Date(2025, 8, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Mandal_Summary_2025-08-15.pdf", SummaryFileName("Mandal Summary", now))
}
