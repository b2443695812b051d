package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/config"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/loaders"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

// Hierarchy navigation endpoints backing the map controls and breadcrumb
// trail. All of them degrade to empty lists: a missing level is a lookup
// miss, not an error.

type HierarchyResponse struct {
	Level string   `json:"level"`
	Names []string `json:"names"`
}

func GetZones(w http.ResponseWriter, r *http.Request) {
	data, status := Lookups.ACVoteShare(r.Context())
	if status == loaders.StatusFailed {
		log.Printf("[Map] Zone listing served from failed load")
	}

	writeHierarchy(w, "zone", data.Zones())
}

func GetDistrictsInZone(w http.ResponseWriter, r *http.Request) {
	zone := mux.Vars(r)["zone"]
	data, _ := Lookups.ACVoteShare(r.Context())
	writeHierarchy(w, "org_district", data.DistrictsIn(zone))
}

func GetACsInDistrict(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	data, _ := Lookups.ACVoteShare(r.Context())
	writeHierarchy(w, "ac", data.ACsIn(vars["zone"], vars["district"]))
}

func GetMandalsInAC(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	data, _ := Lookups.MandalVoteShare(r.Context())
	writeHierarchy(w, "mandal", data.MandalsIn(vars["zone"], vars["district"], vars["ac"]))
}

// GetLocalBodiesInMandal lists the panchayats/municipalities under one
// mandal from the registry.
func GetLocalBodiesInMandal(w http.ResponseWriter, r *http.Request) {
	mandal := strings.TrimSpace(mux.Vars(r)["mandal"])

	rows, err := config.DB.QueryContext(r.Context(), `
		SELECT name, type, district, COALESCE(wards, 0)
		FROM local_bodies
		WHERE LOWER(mandal) = LOWER($1)
		ORDER BY type, name`, mandal)
	if err != nil {
		log.Printf("[Map] Local body query failed for mandal %s: %v", mandal, err)
		http.Error(w, "Query failed", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	bodies := make([]models.Entity, 0)
	for rows.Next() {
		var e models.Entity
		if err := rows.Scan(&e.Name, &e.Type, &e.District, &e.Wards); err != nil {
			log.Printf("[Map] Skipping unreadable local body row: %v", err)
			continue
		}
		e.Mandal = mandal
		bodies = append(bodies, e)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	json.NewEncoder(w).Encode(bodies)
}

func writeHierarchy(w http.ResponseWriter, level string, names []string) {
	if names == nil {
		names = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	json.NewEncoder(w).Encode(HierarchyResponse{Level: level, Names: names})
}
