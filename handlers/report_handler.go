package handlers

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/config"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/reports"
)

type EntityReportRequest struct {
	Title       string `json:"title"`
	EntityType  string `json:"entity_type"`
	District    string `json:"district,omitempty"`
	OrgDistrict string `json:"org_district,omitempty"`
	Mandal      string `json:"mandal,omitempty"`
	Summary     bool   `json:"summary,omitempty"`
}

type VoterReportRequest struct {
	Title       string `json:"title"`
	District    string `json:"district,omitempty"`
	OrgDistrict string `json:"org_district,omitempty"`
	Mandal      string `json:"mandal,omitempty"`
	Booth       string `json:"booth,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}

type reportFailure struct {
	Error        string `json:"error"`
	FallbackPath string `json:"fallback_path,omitempty"`
}

// GenerateEntityReport builds a local body report PDF and streams it. PDF
// generation is the one failure surfaced to the user: on error a save to
// the reports directory is attempted and the path reported back.
func GenerateEntityReport(w http.ResponseWriter, r *http.Request) {
	var req EntityReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		req.Title = req.EntityType + " Report"
	}

	entities, err := queryEntities(r, req)
	if err != nil {
		log.Printf("[Report] Entity query failed: %v", err)
		http.Error(w, "Query failed", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	report := reports.BuildEntityReport(req.Title, req.EntityType, entities, now)

	fileName := reports.SafeFileName(req.Title)
	if req.Summary {
		fileName = reports.SummaryFileName(req.Title, now)
	}

	streamPDF(w, report, fileName)
}

// GenerateVoterReport builds a voter roll PDF for outreach teams.
func GenerateVoterReport(w http.ResponseWriter, r *http.Request) {
	var req VoterReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		req.Title = "Voter Report"
	}
	if req.Limit <= 0 || req.Limit > 5000 {
		req.Limit = 5000
	}

	voters, err := queryVoters(r, req)
	if err != nil {
		log.Printf("[Report] Voter query failed: %v", err)
		http.Error(w, "Query failed", http.StatusInternalServerError)
		return
	}

	report := reports.BuildVoterReport(req.Title, voters, time.Now())
	streamPDF(w, report, reports.SafeFileName(req.Title))
}

func queryEntities(r *http.Request, req EntityReportRequest) ([]models.Entity, error) {
	cacheKey := config.GetCacheKey("entities", req.EntityType, req.District, req.OrgDistrict, req.Mandal)
	if cached, ok := config.ReportCache.Get(cacheKey); ok {
		return cached.([]models.Entity), nil
	}

	rows, err := config.DB.QueryContext(r.Context(), `
		SELECT name, type, district, COALESCE(division, ''), COALESCE(block, ''),
		       COALESCE(org_district, ''), COALESCE(mandal, ''), COALESCE(wards, 0)
		FROM local_bodies
		WHERE type = $1
		  AND ($2 = '' OR LOWER(district) = LOWER($2))
		  AND ($3 = '' OR LOWER(org_district) = LOWER($3))
		  AND ($4 = '' OR LOWER(mandal) = LOWER($4))
		ORDER BY district, name`,
		req.EntityType, req.District, req.OrgDistrict, req.Mandal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := make([]models.Entity, 0)
	for rows.Next() {
		var e models.Entity
		if err := rows.Scan(&e.Name, &e.Type, &e.District, &e.Division, &e.Block,
			&e.OrgDistrict, &e.Mandal, &e.Wards); err != nil {
			log.Printf("[Report] Skipping unreadable local body row: %v", err)
			continue
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	config.ReportCache.Set(cacheKey, entities, cache.DefaultExpiration)
	return entities, nil
}

func queryVoters(r *http.Request, req VoterReportRequest) ([]models.Voter, error) {
	rows, err := config.DB.QueryContext(r.Context(), `
		SELECT serial_no, name, COALESCE(guardian, ''), COALESCE(house_name, ''),
		       COALESCE(gender, ''), COALESCE(age, 0), COALESCE(voter_id, ''),
		       COALESCE(district, ''), COALESCE(org_district, ''),
		       COALESCE(mandal, ''), COALESCE(booth, '')
		FROM voters
		WHERE ($1 = '' OR LOWER(district) = LOWER($1))
		  AND ($2 = '' OR LOWER(org_district) = LOWER($2))
		  AND ($3 = '' OR LOWER(mandal) = LOWER($3))
		  AND ($4 = '' OR LOWER(booth) = LOWER($4))
		ORDER BY serial_no
		LIMIT $5`,
		req.District, req.OrgDistrict, req.Mandal, req.Booth, req.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	voters := make([]models.Voter, 0)
	for rows.Next() {
		var v models.Voter
		if err := rows.Scan(&v.SerialNo, &v.Name, &v.Guardian, &v.HouseName,
			&v.Gender, &v.Age, &v.VoterID, &v.District, &v.OrgDistrict,
			&v.Mandal, &v.Booth); err != nil {
			log.Printf("[Report] Skipping unreadable voter row: %v", err)
			continue
		}
		voters = append(voters, v)
	}

	return voters, rows.Err()
}

// streamPDF renders into memory first so a render failure can fall back to
// a server-side save instead of a half-written response.
func streamPDF(w http.ResponseWriter, report reports.Report, fileName string) {
	var buf bytes.Buffer
	if err := reports.Render(report, &buf); err != nil {
		log.Printf("[Report] PDF render failed for %s: %v", fileName, err)

		failure := reportFailure{Error: "Report generation failed"}
		if path, saveErr := reports.Save(report, config.ReportsDir(), fileName); saveErr == nil {
			failure.FallbackPath = path
		} else {
			log.Printf("[Report] Fallback save also failed: %v", saveErr)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(failure)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[Report] Failed to stream %s: %v", fileName, err)
	}
}
