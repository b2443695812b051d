package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/loaders"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

// Lookup requests carry names as typed by field coordinators; the loaders
// normalize them before traversal, so misspelled but known variants still
// resolve.

type VoteShareRequest struct {
	Zone        string `json:"zone"`
	OrgDistrict string `json:"org_district"`
	AC          string `json:"ac"`
}

type ACVoteShareResponse struct {
	Found  bool                    `json:"found"`
	Status string                  `json:"status"`
	Record *models.VoteShareRecord `json:"record,omitempty"`
}

type MandalVoteShareResponse struct {
	Found   bool                     `json:"found"`
	Status  string                   `json:"status"`
	Mandals []models.MandalVoteShare `json:"mandals"`
}

// GetACVoteShare resolves one AC-level vote-share record. A miss is an
// empty response, not an error.
func GetACVoteShare(w http.ResponseWriter, r *http.Request) {
	var req VoteShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("Received AC vote share request: Zone=%s, District=%s, AC=%s",
		req.Zone, req.OrgDistrict, req.AC)

	data, status := Lookups.ACVoteShare(r.Context())
	record, found := data.Get(req.Zone, req.OrgDistrict, req.AC)

	resp := ACVoteShareResponse{Found: found, Status: status.String()}
	if found {
		resp.Record = &record
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetMandalVoteShare resolves the mandal-level records under one AC.
func GetMandalVoteShare(w http.ResponseWriter, r *http.Request) {
	var req VoteShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("Received mandal vote share request: Zone=%s, District=%s, AC=%s",
		req.Zone, req.OrgDistrict, req.AC)

	data, status := Lookups.MandalVoteShare(r.Context())
	mandals := data.Get(req.Zone, req.OrgDistrict, req.AC)
	if mandals == nil {
		mandals = []models.MandalVoteShare{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MandalVoteShareResponse{
		Found:   len(mandals) > 0,
		Status:  status.String(),
		Mandals: mandals,
	})
}

// GetACTarget resolves the 2025 target record for one AC.
func GetACTarget(w http.ResponseWriter, r *http.Request) {
	var req VoteShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, status := Lookups.ACTarget(r.Context())
	record, found := data.Get(req.Zone, req.OrgDistrict, req.AC)

	resp := struct {
		Found  bool             `json:"found"`
		Status string           `json:"status"`
		Target *models.ACTarget `json:"target,omitempty"`
	}{Found: found, Status: status.String()}
	if found {
		resp.Target = &record
	}

	if status == loaders.StatusFailed {
		log.Printf("[Target] Lookup served from failed load: Zone=%s, AC=%s", req.Zone, req.AC)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
