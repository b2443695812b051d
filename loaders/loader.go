package loaders

import (
	"context"
	"log"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

// Status distinguishes "no data" from "fetch failed". Both degrade to an
// empty dataset at the API surface, but handlers log the difference.
type Status int

const (
	StatusLoaded Status = iota
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// CSV asset paths relative to the data base URL. Column order and count
// are the contract; header rows are skipped verbatim.
const (
	acVoteSharePath     = "ac_wise_voteshare.csv"
	mandalVoteSharePath = "mandal_wise_voteshare.csv"
	acTargetPath        = "ac_target.csv"
)

// Loaders owns the memoized lookup structures for the three CSV data
// domains. The first successful load of each domain is cached for the
// process lifetime; concurrent first calls share a single fetch.
type Loaders struct {
	fetcher *Fetcher
	memo    *cache.Cache
	group   singleflight.Group
}

type loadEntry struct {
	data   interface{}
	status Status
}

// New builds a Loaders on top of a fetcher. memo should be a
// no-expiration cache; the lookup structures are never invalidated while
// the process runs.
func New(fetcher *Fetcher, memo *cache.Cache) *Loaders {
	return &Loaders{fetcher: fetcher, memo: memo}
}

// ACVoteShare loads the AC-level vote-share lookup. Duplicate rows for the
// same key path overwrite, one record per AC.
func (l *Loaders) ACVoteShare(ctx context.Context) (ACVoteShareMap, Status) {
	entry := l.load(ctx, "ac_voteshare", acVoteSharePath, 2, 9, func(rows [][]string) (interface{}, int) {
		m := make(ACVoteShareMap)
		for _, row := range rows {
			zone := Normalize(row[0], KindZone)
			district := Normalize(row[1], KindOrgDistrict)
			ac := Normalize(row[2], KindAC)
			setLeaf(m, zone, district, ac, voteShareFromFields(row[3:9]))
		}
		return m, len(m)
	})
	return entry.data.(ACVoteShareMap), entry.status
}

// MandalVoteShare loads the mandal-level lookup. Duplicate key paths are
// additive: each AC leaf is the list of its mandal records in CSV order.
func (l *Loaders) MandalVoteShare(ctx context.Context) (MandalVoteShareMap, Status) {
	entry := l.load(ctx, "mandal_voteshare", mandalVoteSharePath, 1, 10, func(rows [][]string) (interface{}, int) {
		m := make(MandalVoteShareMap)
		for _, row := range rows {
			zone := Normalize(row[0], KindZone)
			district := Normalize(row[1], KindOrgDistrict)
			ac := Normalize(row[2], KindAC)
			appendLeaf(m, zone, district, ac, models.MandalVoteShare{
				Mandal:          cleanField(row[3]),
				VoteShareRecord: voteShareFromFields(row[4:10]),
			})
		}
		return m, len(m)
	})
	return entry.data.(MandalVoteShareMap), entry.status
}

// ACTarget loads the 2025 local body target lookup, one record per AC.
func (l *Loaders) ACTarget(ctx context.Context) (ACTargetMap, Status) {
	entry := l.load(ctx, "ac_target", acTargetPath, 1, 7, func(rows [][]string) (interface{}, int) {
		m := make(ACTargetMap)
		for _, row := range rows {
			zone := Normalize(row[0], KindZone)
			district := Normalize(row[1], KindOrgDistrict)
			ac := Normalize(row[2], KindAC)
			setLeaf(m, zone, district, ac, models.ACTarget{
				Panchayat:    normalizeCount(row[3]),
				Municipality: normalizeCount(row[4]),
				Corporation:  normalizeCount(row[5]),
				Total:        normalizeCount(row[6]),
			})
		}
		return m, len(m)
	})
	return entry.data.(ACTargetMap), entry.status
}

// load runs the fetch+parse+build pipeline for one data domain, memoizing
// the result. The singleflight group collapses concurrent first calls into
// one fetch. A failed fetch is logged and returned as an empty structure
// but is not memoized, so a later call can still recover.
func (l *Loaders) load(ctx context.Context, key, path string, headerLines, minFields int, build func([][]string) (interface{}, int)) loadEntry {
	if cached, ok := l.memo.Get(key); ok {
		return cached.(loadEntry)
	}

	result, _, _ := l.group.Do(key, func() (interface{}, error) {
		if cached, ok := l.memo.Get(key); ok {
			return cached.(loadEntry), nil
		}

		raw, err := l.fetcher.Fetch(ctx, path)
		if err != nil {
			log.Printf("[Loader] %s: %v, serving empty dataset", key, err)
			empty, _ := build(nil)
			return loadEntry{data: empty, status: StatusFailed}, nil
		}

		rows := ParseRows(raw, headerLines, minFields)
		data, count := build(rows)
		entry := loadEntry{data: data, status: StatusLoaded}
		if count == 0 {
			entry.status = StatusEmpty
		}
		l.memo.Set(key, entry, cache.NoExpiration)
		log.Printf("[Loader] %s: built lookup from %d rows (%s)", key, len(rows), entry.status)
		return entry, nil
	})

	return result.(loadEntry)
}

func voteShareFromFields(f []string) models.VoteShareRecord {
	return models.VoteShareRecord{
		LSGE2020:   models.Measurement{VoteShare: normalizeShare(f[0]), Votes: normalizeCount(f[1])},
		GE2024:     models.Measurement{VoteShare: normalizeShare(f[2]), Votes: normalizeCount(f[3])},
		Target2025: models.Measurement{VoteShare: normalizeShare(f[4]), Votes: normalizeCount(f[5])},
	}
}
