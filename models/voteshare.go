package models

// Measurement is one election reading: a vote-share percentage and a raw
// vote count, both kept as display text. Source sheets mark missing data
// with the literal "NA"; the loaders normalize that to the "0%"/"0"
// sentinels instead of leaving the field absent.
type Measurement struct {
	VoteShare string `json:"vote_share"`
	Votes     string `json:"votes"`
}

// VoteShareRecord holds the three measurements tracked per constituency:
// the 2020 local body election, the 2024 general election and the 2025
// target figure.
type VoteShareRecord struct {
	LSGE2020   Measurement `json:"lsge_2020"`
	GE2024     Measurement `json:"ge_2024"`
	Target2025 Measurement `json:"target_2025"`
}

// MandalVoteShare is a mandal-granularity reading. Several mandals roll up
// to one assembly constituency, so leaves at this level are lists.
type MandalVoteShare struct {
	Mandal string `json:"mandal"`
	VoteShareRecord
}

// ACTarget carries the 2025 local body targets for one assembly
// constituency, split by body type. Counts stay as text the same way the
// vote-share figures do.
type ACTarget struct {
	Panchayat    string `json:"panchayat"`
	Municipality string `json:"municipality"`
	Corporation  string `json:"corporation"`
	Total        string `json:"total"`
}
