package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// Cache instances for different data types
	LookupCache *cache.Cache
	ReportCache *cache.Cache
)

const (
	// The vote-share lookups are static assets; once built they live for
	// the rest of the process, so no expiry and no janitor.
	lookupCacheDuration = cache.NoExpiration

	// Generated report tables are cheap to rebuild; keep them briefly
	reportCacheDuration   = 15 * time.Minute
	reportCleanupInterval = 30 * time.Minute
)

func InitCache() {
	LookupCache = cache.New(lookupCacheDuration, 0)
	ReportCache = cache.New(reportCacheDuration, reportCleanupInterval)
}

func ClearAllCaches() {
	LookupCache.Flush()
	ReportCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
