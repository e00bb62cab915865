package twoiplib

import (
	"encoding/json"
	"sync"
	"time"
)

// UsageStats accumulates per-kind lookup counters for the lifetime of
// a client instance.
type UsageStats struct {
	Kind LookupKind

	mutex         sync.Mutex
	lastUsed      time.Time
	successCount  uint64
	failureCount  uint64
	cacheHitCount uint64
}

func (u *UsageStats) Used(ok bool) {
	now := time.Now()

	u.mutex.Lock()
	defer u.mutex.Unlock()

	u.lastUsed = now

	if ok {
		u.successCount += 1
	} else {
		u.failureCount += 1
	}
}

func (u *UsageStats) CacheHit() {
	now := time.Now()

	u.mutex.Lock()
	defer u.mutex.Unlock()

	u.lastUsed = now
	u.cacheHitCount += 1
}

func (u *UsageStats) MarshalJSON() ([]byte, error) {
	var lastUsedTime int64

	u.mutex.Lock()

	if !u.lastUsed.IsZero() {
		lastUsedTime = u.lastUsed.Unix()
	}

	rawStruct := struct {
		Kind          string `json:"kind"`
		LastUsed      int64  `json:"last_used"`
		SuccessCount  uint64 `json:"success_count"`
		FailureCount  uint64 `json:"failure_count"`
		CacheHitCount uint64 `json:"cache_hit_count"`
	}{
		Kind:          u.Kind.String(),
		LastUsed:      lastUsedTime,
		SuccessCount:  u.successCount,
		FailureCount:  u.failureCount,
		CacheHitCount: u.cacheHitCount,
	}

	u.mutex.Unlock()

	return json.Marshal(&rawStruct)
}
