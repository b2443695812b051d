package reports

import (
	"strconv"
	"time"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

// Table is one rendered table: a title, a column layout and display rows.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// Report is everything the PDF renderer needs. Aside from GeneratedAt it
// is a pure function of the input records.
type Report struct {
	Title       string
	GeneratedAt time.Time
	Tables      []Table
}

// BuildEntityReport assembles the main table for a set of homogeneous
// local body records, plus grouped summary tables when the set is filtered
// to a single parent.
func BuildEntityReport(title, entityType string, entities []models.Entity, now time.Time) Report {
	layout := LayoutFor(entityType)

	rows := make([][]string, 0, len(entities))
	for i, e := range entities {
		rows = append(rows, entityRow(entityType, i+1, e))
	}

	report := Report{
		Title:       title,
		GeneratedAt: now,
		Tables:      []Table{{Title: entityType, Columns: layout, Rows: rows}},
	}
	report.Tables = append(report.Tables, entitySummaries(entities)...)
	return report
}

// BuildVoterReport assembles a voter roll table plus a per-booth summary
// when all voters belong to one mandal.
func BuildVoterReport(title string, voters []models.Voter, now time.Time) Report {
	rows := make([][]string, 0, len(voters))
	for i, v := range voters {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			v.Name,
			v.Guardian,
			v.HouseName,
			v.Gender,
			strconv.Itoa(v.Age),
			v.VoterID,
		})
	}

	report := Report{
		Title:       title,
		GeneratedAt: now,
		Tables:      []Table{{Title: "Voters", Columns: VoterLayout(), Rows: rows}},
	}

	if mandal, ok := singleValue(voters, func(v models.Voter) string { return v.Mandal }); ok && mandal != "" {
		report.Tables = append(report.Tables, countTable(
			"Booth-wise Count ("+mandal+")", "Booth",
			voters, func(v models.Voter) string { return v.Booth },
		))
	}

	return report
}

// entityRow projects one record into display strings matching the layout
// selected for its type.
func entityRow(entityType string, serial int, e models.Entity) []string {
	n := strconv.Itoa(serial)
	switch entityType {
	case models.TypeDistrictPanchayat:
		return []string{n, e.District, e.Division}
	case models.TypeBlockPanchayat:
		return []string{n, e.District, e.Block, e.Division}
	case models.TypeGramaPanchayat:
		return []string{n, e.District, e.Mandal, e.Name, strconv.Itoa(e.Wards)}
	case models.TypeMunicipality, models.TypeCorporation:
		return []string{n, e.District, e.Name, strconv.Itoa(e.Wards)}
	}
	return []string{n, e.Name, e.District, e.Type}
}

// entitySummaries produces grouped count tables only when the record set
// shares a single parent: one org district yields a mandal-wise count, one
// revenue district (spanning org districts) yields an org-district-wise
// count. Mixed sets get no summary.
func entitySummaries(entities []models.Entity) []Table {
	if len(entities) == 0 {
		return nil
	}

	if district, ok := singleValue(entities, func(e models.Entity) string { return e.OrgDistrict }); ok && district != "" {
		return []Table{countTable(
			"Mandal-wise Count ("+district+")", "Mandal",
			entities, func(e models.Entity) string { return e.Mandal },
		)}
	}

	if district, ok := singleValue(entities, func(e models.Entity) string { return e.District }); ok && district != "" {
		return []Table{countTable(
			"Org District-wise Count ("+district+")", "Org District",
			entities, func(e models.Entity) string { return e.OrgDistrict },
		)}
	}

	return nil
}

// countTable tallies records per group key, keeping first-appearance order.
func countTable[T any](title, keyLabel string, records []T, key func(T) string) Table {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if k == "" {
			k = "Unassigned"
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	rows := make([][]string, 0, len(order))
	total := 0
	for _, k := range order {
		rows = append(rows, []string{k, strconv.Itoa(counts[k])})
		total += counts[k]
	}
	rows = append(rows, []string{"Total", strconv.Itoa(total)})

	return Table{
		Title: title,
		Columns: []Column{
			{Label: keyLabel, Width: 120},
			{Label: "Count", Width: 70},
		},
		Rows: rows,
	}
}

func singleValue[T any](records []T, key func(T) string) (string, bool) {
	if len(records) == 0 {
		return "", false
	}
	first := key(records[0])
	for _, r := range records[1:] {
		if key(r) != first {
			return "", false
		}
	}
	return first, true
}
