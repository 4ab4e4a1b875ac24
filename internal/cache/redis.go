package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const dashboardKeyFmt = "dashboard:%s"

var (
	client *redis.Client
	ttl    = 5 * time.Minute
)

// Init initializes the Redis connection. On failure the client stays nil
// and every cache call degrades to a miss.
func Init(addr, password string, cacheTTL time.Duration) error {
	if cacheTTL > 0 {
		ttl = cacheTTL
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// Close releases the Redis connection. Subsequent cache calls degrade to
// misses.
func Close() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Printf("[Cache] close: %v", err)
	}
	client = nil
}

// GetDashboard returns the cached dashboard payload for a month, if any.
func GetDashboard(ctx context.Context, month string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	b, err := client.Get(ctx, fmt.Sprintf(dashboardKeyFmt, month)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

// SetDashboard caches a rendered dashboard payload for a month.
func SetDashboard(ctx context.Context, month string, payload []byte) {
	if client == nil {
		return
	}
	if err := client.Set(ctx, fmt.Sprintf(dashboardKeyFmt, month), payload, ttl).Err(); err != nil {
		log.Printf("[Cache] set dashboard %s: %v", month, err)
	}
}

// InvalidateDashboards drops every cached dashboard. Any mutation can move
// the monthly trend series, so per-month invalidation is not enough.
func InvalidateDashboards(ctx context.Context) {
	if client == nil {
		return
	}

	iter := client.Scan(ctx, 0, fmt.Sprintf(dashboardKeyFmt, "*"), 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("[Cache] invalidate %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("[Cache] scan dashboards: %v", err)
	}
}
