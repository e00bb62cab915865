package twoiplib_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/2ip-api/twoip/twoiplib"
	"github.com/stretchr/testify/suite"
)

type usageStatsJSON struct {
	Kind          string `json:"kind"`
	LastUsed      int64  `json:"last_used"`
	SuccessCount  uint64 `json:"success_count"`
	FailureCount  uint64 `json:"failure_count"`
	CacheHitCount uint64 `json:"cache_hit_count"`
}

type UsageStatsTestSuite struct {
	suite.Suite

	u *twoiplib.UsageStats
}

func (suite *UsageStatsTestSuite) SetupTest() {
	suite.u = &twoiplib.UsageStats{Kind: twoiplib.LookupGeo}
}

func (suite *UsageStatsTestSuite) VerifyTime(expected time.Time, actual int64) {
	if expected.IsZero() {
		suite.EqualValues(0, actual)
	} else {
		suite.WithinDuration(expected, time.Unix(actual, 0), time.Second)
	}
}

func (suite *UsageStatsTestSuite) Verify(lastUsed time.Time, success, failure, cacheHits int) {
	data, err := json.Marshal(suite.u)

	suite.NoError(err)

	raw := usageStatsJSON{}

	suite.NoError(json.Unmarshal(data, &raw))
	suite.Equal("geo", raw.Kind)
	suite.EqualValues(success, raw.SuccessCount)
	suite.EqualValues(failure, raw.FailureCount)
	suite.EqualValues(cacheHits, raw.CacheHitCount)
	suite.VerifyTime(lastUsed, raw.LastUsed)
}

func (suite *UsageStatsTestSuite) TestEmpty() {
	suite.Verify(time.Time{}, 0, 0, 0)
}

func (suite *UsageStatsTestSuite) TestUsed() {
	suite.u.Used(true)
	suite.Verify(time.Now(), 1, 0, 0)

	suite.u.Used(false)
	suite.Verify(time.Now(), 1, 1, 0)

	suite.u.Used(false)
	suite.Verify(time.Now(), 1, 2, 0)

	suite.u.Used(true)
	suite.Verify(time.Now(), 2, 2, 0)
}

func (suite *UsageStatsTestSuite) TestCacheHit() {
	suite.u.CacheHit()
	suite.Verify(time.Now(), 0, 0, 1)

	suite.u.CacheHit()
	suite.Verify(time.Now(), 0, 0, 2)
}

func TestUsageStats(t *testing.T) {
	suite.Run(t, &UsageStatsTestSuite{})
}
