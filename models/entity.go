package models

// Entity is one local body row from the registry. Only the fields the
// report layouts project are kept; the registry table carries more.
type Entity struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	District    string `json:"district"`
	Division    string `json:"division,omitempty"`
	Block       string `json:"block,omitempty"`
	OrgDistrict string `json:"org_district,omitempty"`
	Mandal      string `json:"mandal,omitempty"`
	AC          string `json:"ac,omitempty"`
	Wards       int    `json:"wards,omitempty"`
}

// Voter is one voter roll row used for outreach reports.
type Voter struct {
	SerialNo    int    `json:"serial_no"`
	Name        string `json:"name"`
	Guardian    string `json:"guardian,omitempty"`
	HouseName   string `json:"house_name,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Age         int    `json:"age,omitempty"`
	VoterID     string `json:"voter_id,omitempty"`
	District    string `json:"district,omitempty"`
	OrgDistrict string `json:"org_district,omitempty"`
	Mandal      string `json:"mandal,omitempty"`
	Booth       string `json:"booth,omitempty"`
}
