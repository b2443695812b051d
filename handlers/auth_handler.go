package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/config"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/middleware"
)

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type LoginResponse struct {
	Token           string `json:"token"`
	PhoneNumber     string `json:"phoneNumber"`
	Name            string `json:"name"`
	LoginTime       int64  `json:"loginTime"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Login validates a coordinator phone number against the registry and
// issues a session token.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	phone := strings.TrimSpace(req.PhoneNumber)
	if !phonePattern.MatchString(phone) {
		http.Error(w, "Invalid phone number", http.StatusBadRequest)
		return
	}

	var name string
	err := config.DB.QueryRowContext(r.Context(), `
		SELECT name FROM coordinators
		WHERE phone_number = $1`, phone).Scan(&name)
	if err == sql.ErrNoRows {
		log.Printf("[Auth] Login rejected for unknown number ending %s", phone[len(phone)-4:])
		http.Error(w, "Phone number not registered", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Printf("[Auth] Coordinator lookup failed: %v", err)
		http.Error(w, "Login unavailable", http.StatusInternalServerError)
		return
	}

	session, err := Sessions.Login(r.Context(), phone)
	if err != nil {
		log.Printf("[Auth] Session create failed: %v", err)
		http.Error(w, "Login unavailable", http.StatusInternalServerError)
		return
	}

	log.Printf("[Auth] Coordinator %s logged in", name)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{
		Token:           session.Token,
		PhoneNumber:     session.PhoneNumber,
		Name:            name,
		LoginTime:       session.LoginTime,
		IsAuthenticated: session.IsAuthenticated,
	})
}

// Logout removes the caller's session. Always succeeds.
func Logout(w http.ResponseWriter, r *http.Request) {
	if session, ok := middleware.SessionFromContext(r.Context()); ok {
		Sessions.Logout(r.Context(), session.Token)
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSession echoes the caller's session record, for clients restoring
// state after a reload.
func GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}
