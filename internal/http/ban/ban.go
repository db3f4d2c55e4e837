// Package ban keeps a redis-backed log of clients that keep hitting the rate
// limit, so the operator gets a daily summary of abusive traffic. When no
// redis service is configured the package is a no-op.
package ban

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/forecast-dashboard/internal/redissvc"
)

var (
	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

func Enabled() bool {
	return rdb != nil
}

type StrikeEntry struct {
	Target string    `json:"target"`
	Route  string    `json:"route"`
	Time   time.Time `json:"time"`
}

const dailyStrikeLogKey = "ratelimit:strikelog:daily"

// RecordStrike notes one rate-limit rejection for the given client and route.
func RecordStrike(target, route string) {
	if !Enabled() {
		return
	}
	entry := StrikeEntry{Target: target, Route: route, Time: time.Now()}
	data, _ := json.Marshal(entry)
	if err := rdb.RPush(ctx, dailyStrikeLogKey, data).Err(); err != nil {
		log.Printf("failed to record rate-limit strike: %v", err)
	}
}

// StartDailySummaryLoop logs an aggregate of the day's strikes every evening
// and clears the log.
func StartDailySummaryLoop(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		LogDailySummary()
	}
}

// LogDailySummary writes per-route and per-client strike counts to the
// process log, then resets the daily log.
func LogDailySummary() {
	if !Enabled() {
		return
	}
	entries, err := rdb.LRange(ctx, dailyStrikeLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, dailyStrikeLogKey).Err() // clear after reading

	routeCounts := make(map[string]int)
	targetCounts := make(map[string]int)
	total := 0
	for _, item := range entries {
		var entry StrikeEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			routeCounts[entry.Route]++
			targetCounts[entry.Target]++
			total++
		}
	}

	log.Printf("rate-limit summary: %d strikes today", total)
	for route, count := range routeCounts {
		log.Printf("rate-limit summary: route %s: %d", route, count)
	}
	for target, count := range targetCounts {
		log.Printf("rate-limit summary: client %s: %d", target, count)
	}
}
