package reports

import (
	"regexp"
	"strings"
	"time"
)

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// SafeFileName derives a PDF file name from a human-readable title:
// runs of non-alphanumeric characters collapse to a single underscore and
// leading/trailing underscores are trimmed.
func SafeFileName(title string) string {
	name := nonAlphanumeric.ReplaceAllString(title, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		name = "report"
	}
	return name + ".pdf"
}

// SummaryFileName is SafeFileName with the generation date in ISO form
// appended, used for summary reports.
func SummaryFileName(title string, now time.Time) string {
	base := strings.TrimSuffix(SafeFileName(title), ".pdf")
	return base + "_" + now.Format("2006-01-02") + ".pdf"
}
