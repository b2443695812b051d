package handlers

import (
	"github.com/oru-pavam-nair/BJPMission2025-sub002/auth"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/loaders"
)

// Package-level collaborators, wired once from main before the routes are
// registered.
var (
	Lookups  *loaders.Loaders
	Sessions *auth.Store
)

func Init(lookups *loaders.Loaders, sessions *auth.Store) {
	Lookups = lookups
	Sessions = sessions
}
