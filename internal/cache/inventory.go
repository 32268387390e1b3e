package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	jobListKey    = "jobs:all"
	jobKeyPrefix  = "job:%d"
	userKeyPrefix = "user:%d"
)

const (
	// JobListTTL keeps the public listing fresh enough that a new posting
	// shows up quickly even if an invalidation is missed.
	JobListTTL = 2 * time.Minute
	JobTTL     = 10 * time.Minute
	UserTTL    = 5 * time.Minute
)

// JobListKey is the cache key for the full public job listing.
func JobListKey() string {
	return jobListKey
}

func JobKey(jobID uint) string {
	return fmt.Sprintf(jobKeyPrefix, jobID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// Aside implements the cache-aside pattern: on a hit, dest is populated from
// the cached JSON; on a miss, fetch must populate dest and the result is
// stored with the given TTL. Cache failures degrade to the fetch path.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			return nil
		}
		// Corrupt entry; drop it and fall through to fetch.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		return fetch()
	}

	if err := fetch(); err != nil {
		return err
	}

	if raw, err := json.Marshal(dest); err == nil {
		client.Set(ctx, key, raw, ttl)
	}
	return nil
}

// Invalidate removes a key from the cache.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateJobs removes the public listing entry; called after any job or
// application mutation that changes what the listing shows.
func InvalidateJobs(ctx context.Context) {
	Invalidate(ctx, jobListKey)
}

func InvalidateJob(ctx context.Context, jobID uint) {
	Invalidate(ctx, JobKey(jobID))
	InvalidateJobs(ctx)
}
