package models

// GeoPath identifies a node in the campaign hierarchy:
// zone -> organisational district -> assembly constituency -> org mandal.
// Names must be normalized before a GeoPath is used as a lookup key.
type GeoPath struct {
	Zone        string `json:"zone"`
	OrgDistrict string `json:"org_district"`
	AC          string `json:"ac"`
	Mandal      string `json:"mandal,omitempty"`
}

// Local body types as they appear in the registry and in report requests.
const (
	TypeGramaPanchayat    = "Grama Panchayat"
	TypeBlockPanchayat    = "Block Panchayat"
	TypeDistrictPanchayat = "District Panchayat"
	TypeMunicipality      = "Municipality"
	TypeCorporation       = "Corporation"
)
