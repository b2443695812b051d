package models

import "time"

// SessionWindow is how long a coordinator login stays valid.
const SessionWindow = 24 * time.Hour

// Session is a coordinator login record. LoginTime is epoch milliseconds,
// matching the record shape the dashboard client persists.
type Session struct {
	Token           string `json:"token" bson:"token"`
	PhoneNumber     string `json:"phoneNumber" bson:"phone_number"`
	LoginTime       int64  `json:"loginTime" bson:"login_time"`
	IsAuthenticated bool   `json:"isAuthenticated" bson:"is_authenticated"`
}

// ExpiredAt reports whether the session has passed the 24-hour window at
// the given instant. An unauthenticated record is always expired.
func (s Session) ExpiredAt(now time.Time) bool {
	if !s.IsAuthenticated {
		return true
	}
	login := time.UnixMilli(s.LoginTime)
	return now.Sub(login) > SessionWindow
}
