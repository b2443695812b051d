package reports

import "github.com/oru-pavam-nair/BJPMission2025-sub002/models"

// Column is one report column: a header label and a width in millimetres.
type Column struct {
	Label string
	Width float64
}

// entityLayouts is the fixed dispatch table from entity type to column
// layout. Widths are tuned for A4 portrait with 10mm margins.
var entityLayouts = map[string][]Column{
	models.TypeDistrictPanchayat: {
		{Label: "#", Width: 15},
		{Label: "District", Width: 70},
		{Label: "Division Name", Width: 105},
	},
	models.TypeBlockPanchayat: {
		{Label: "#", Width: 15},
		{Label: "District", Width: 50},
		{Label: "Block", Width: 55},
		{Label: "Division Name", Width: 70},
	},
	models.TypeGramaPanchayat: {
		{Label: "#", Width: 15},
		{Label: "District", Width: 45},
		{Label: "Mandal", Width: 50},
		{Label: "Panchayat Name", Width: 55},
		{Label: "Wards", Width: 25},
	},
	models.TypeMunicipality: {
		{Label: "#", Width: 15},
		{Label: "District", Width: 55},
		{Label: "Municipality Name", Width: 90},
		{Label: "Wards", Width: 30},
	},
	models.TypeCorporation: {
		{Label: "#", Width: 15},
		{Label: "District", Width: 55},
		{Label: "Corporation Name", Width: 90},
		{Label: "Wards", Width: 30},
	},
}

var defaultEntityLayout = []Column{
	{Label: "#", Width: 15},
	{Label: "Name", Width: 75},
	{Label: "District", Width: 55},
	{Label: "Type", Width: 45},
}

var voterLayout = []Column{
	{Label: "#", Width: 12},
	{Label: "Name", Width: 42},
	{Label: "Guardian", Width: 35},
	{Label: "House Name", Width: 38},
	{Label: "Gender", Width: 18},
	{Label: "Age", Width: 13},
	{Label: "Voter ID", Width: 32},
}

// LayoutFor returns the column layout for an entity type, falling back to
// the generic layout for unknown types.
func LayoutFor(entityType string) []Column {
	if layout, ok := entityLayouts[entityType]; ok {
		return layout
	}
	return defaultEntityLayout
}

// VoterLayout returns the voter roll layout.
func VoterLayout() []Column {
	return voterLayout
}
