package loaders

import (
	"log"
	"strings"
)

// ParseRows splits raw CSV text into cleaned field slices. The first
// headerLines lines are dropped verbatim; column order is the contract, the
// header content is never trusted. Blank lines and all-comma placeholder
// rows are discarded. A row with fewer than minFields fields is skipped
// with a diagnostic so a partial row never becomes a partial record.
//
// The source sheets carry stray quotes and placeholder rows that a strict
// CSV reader rejects outright, so fields are split by hand and cleaned
// individually.
func ParseRows(raw string, headerLines, minFields int) [][]string {
	lines := strings.Split(raw, "\n")
	if len(lines) <= headerLines {
		return nil
	}

	rows := make([][]string, 0, len(lines)-headerLines)
	for i, line := range lines[headerLines:] {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || isPlaceholderRow(line) {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < minFields {
			log.Printf("[CSV] Skipping short row %d: %d fields, expected at least %d", i+headerLines+1, len(fields), minFields)
			continue
		}

		for j, f := range fields {
			fields[j] = cleanField(f)
		}
		rows = append(rows, fields)
	}

	return rows
}

// cleanField strips carriage returns, surrounding quotes and whitespace.
func cleanField(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}

// isPlaceholderRow reports whether a line is an all-comma filler row, which
// the source spreadsheets emit for empty grid rows.
func isPlaceholderRow(line string) bool {
	for _, r := range line {
		if r != ',' && r != ' ' && r != '\t' && r != '"' {
			return false
		}
	}
	return true
}

// normalizeShare maps an absent or "NA" vote-share field to the "0%"
// sentinel. This is the fail-soft policy for not-applicable measurements,
// not a computed zero.
func normalizeShare(v string) string {
	if isNA(v) {
		return "0%"
	}
	return v
}

// normalizeCount maps an absent or "NA" vote-count field to "0".
func normalizeCount(v string) string {
	if isNA(v) {
		return "0"
	}
	return v
}

func isNA(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "NA") || strings.EqualFold(v, "N/A")
}
