package ratelimit

import (
	"context"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/taxsarthi/taxsarthi/internal/config"
)

const keyBillDownload = "gstbill:download:%s"

// Bill downloads are cheap to regenerate but expensive to render; half a
// request per second with a small burst is plenty for a human clicking
// "Download Invoice".
const (
	downloadRate  = 0.5
	downloadBurst = 10
)

// DownloadLimiter throttles public bill downloads per client address.
// A nil limiter allows everything (no redis configured).
type DownloadLimiter struct {
	bucket *TokenBucket
}

func NewDownloadLimiter(cfg config.Config) *DownloadLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
	})
	return &DownloadLimiter{bucket: NewTokenBucket(client)}
}

func (l *DownloadLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	if l == nil || l.bucket == nil {
		return true, nil
	}
	return l.bucket.Allow(ctx, fmt.Sprintf(keyBillDownload, strings.TrimSpace(clientIP)), downloadRate, downloadBurst)
}
