package loaders

import (
	"sort"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

// Nested lookup structures, keyed zone -> org district -> AC. Keys are
// always canonical names; the loaders normalize on insert and the accessors
// normalize on lookup, so spelling drift in either direction resolves to
// the same entry.
type (
	ACVoteShareMap     map[string]map[string]map[string]models.VoteShareRecord
	MandalVoteShareMap map[string]map[string]map[string][]models.MandalVoteShare
	ACTargetMap        map[string]map[string]map[string]models.ACTarget
)

// setLeaf inserts a single-record leaf, creating intermediate levels as
// needed. Duplicate key paths overwrite: the last row wins.
func setLeaf[T any](m map[string]map[string]map[string]T, zone, district, ac string, v T) {
	if m[zone] == nil {
		m[zone] = make(map[string]map[string]T)
	}
	if m[zone][district] == nil {
		m[zone][district] = make(map[string]T)
	}
	m[zone][district][ac] = v
}

// appendLeaf inserts into a list leaf, creating intermediate levels as
// needed. Duplicate key paths are additive and insertion order is kept.
func appendLeaf[T any](m map[string]map[string]map[string][]T, zone, district, ac string, v T) {
	if m[zone] == nil {
		m[zone] = make(map[string]map[string][]T)
	}
	if m[zone][district] == nil {
		m[zone][district] = make(map[string][]T)
	}
	m[zone][district][ac] = append(m[zone][district][ac], v)
}

func getLeaf[T any](m map[string]map[string]map[string]T, zone, district, ac string) (T, bool) {
	var zero T
	districts, ok := m[Normalize(zone, KindZone)]
	if !ok {
		return zero, false
	}
	acs, ok := districts[Normalize(district, KindOrgDistrict)]
	if !ok {
		return zero, false
	}
	leaf, ok := acs[Normalize(ac, KindAC)]
	if !ok {
		return zero, false
	}
	return leaf, true
}

// Get resolves one AC-level vote-share record. A miss at any level returns
// the zero record and false, never an error.
func (m ACVoteShareMap) Get(zone, district, ac string) (models.VoteShareRecord, bool) {
	return getLeaf(m, zone, district, ac)
}

// Get resolves the mandal records under one AC. A miss returns nil.
func (m MandalVoteShareMap) Get(zone, district, ac string) []models.MandalVoteShare {
	leaf, ok := getLeaf(m, zone, district, ac)
	if !ok {
		return nil
	}
	return leaf
}

// Get resolves one AC target record.
func (m ACTargetMap) Get(zone, district, ac string) (models.ACTarget, bool) {
	return getLeaf(m, zone, district, ac)
}

// Navigation helpers. The nested maps are unordered, so listings are
// sorted for stable API responses; leaf lists keep insertion order.

func (m ACVoteShareMap) Zones() []string {
	return sortedKeys(m)
}

func (m ACVoteShareMap) DistrictsIn(zone string) []string {
	districts, ok := m[Normalize(zone, KindZone)]
	if !ok {
		return nil
	}
	return sortedKeys(districts)
}

func (m ACVoteShareMap) ACsIn(zone, district string) []string {
	districts, ok := m[Normalize(zone, KindZone)]
	if !ok {
		return nil
	}
	acs, ok := districts[Normalize(district, KindOrgDistrict)]
	if !ok {
		return nil
	}
	return sortedKeys(acs)
}

// MandalsIn lists the mandal names under one AC, in CSV order.
func (m MandalVoteShareMap) MandalsIn(zone, district, ac string) []string {
	records := m.Get(zone, district, ac)
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Mandal)
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
