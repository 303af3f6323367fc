package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
)

const viewCacheTTL = 10 * time.Minute

// ViewCache memoizes filtered views under a hash of the filter config plus a
// per-workspace version counter. Every write to a workspace bumps the
// counter, so stale views simply stop being addressable. All cache failures
// fall through to recompute; the cache is never load-bearing.
type ViewCache interface {
	Get(ctx context.Context, workspaceID uuid.UUID, kind string, cfg any) ([]byte, bool)
	Set(ctx context.Context, workspaceID uuid.UUID, kind string, cfg any, payload []byte)
	Invalidate(ctx context.Context, workspaceID uuid.UUID)
}

type viewCache struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewViewCache connects to redis when REDIS_ADDR is set; otherwise the cache
// is a no-op and every view recomputes.
func NewViewCache(log *logger.Logger) ViewCache {
	cacheLog := log.With("service", "ViewCache")

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		cacheLog.Info("REDIS_ADDR not set, view caching disabled")
		return &viewCache{log: cacheLog}
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		cacheLog.Warn("redis ping failed, view caching disabled", "error", err)
		_ = rdb.Close()
		return &viewCache{log: cacheLog}
	}
	return &viewCache{log: cacheLog, rdb: rdb}
}

func (vc *viewCache) Get(ctx context.Context, workspaceID uuid.UUID, kind string, cfg any) ([]byte, bool) {
	if vc.rdb == nil {
		return nil, false
	}
	key, err := vc.key(ctx, workspaceID, kind, cfg)
	if err != nil {
		return nil, false
	}
	payload, err := vc.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (vc *viewCache) Set(ctx context.Context, workspaceID uuid.UUID, kind string, cfg any, payload []byte) {
	if vc.rdb == nil {
		return
	}
	key, err := vc.key(ctx, workspaceID, kind, cfg)
	if err != nil {
		return
	}
	if err := vc.rdb.Set(ctx, key, payload, viewCacheTTL).Err(); err != nil {
		vc.log.Debug("view cache set failed", "key", key, "error", err)
	}
}

func (vc *viewCache) Invalidate(ctx context.Context, workspaceID uuid.UUID) {
	if vc.rdb == nil {
		return
	}
	if err := vc.rdb.Incr(ctx, versionKey(workspaceID)).Err(); err != nil {
		vc.log.Debug("view cache version bump failed", "workspace_id", workspaceID, "error", err)
	}
}

func (vc *viewCache) key(ctx context.Context, workspaceID uuid.UUID, kind string, cfg any) (string, error) {
	version, err := vc.rdb.Get(ctx, versionKey(workspaceID)).Int64()
	if err != nil && err != goredis.Nil {
		return "", err
	}
	return formatViewKey(workspaceID, version, kind, cacheDay(time.Now()), cfg)
}

// cacheDay pins an entry to its evaluation day: summaries carry day-derived
// fields (overdue flags, days-until-due), so a hit must never outlive the
// midnight rollover even inside the TTL window.
func cacheDay(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

func formatViewKey(workspaceID uuid.UUID, version int64, kind, day string, cfg any) (string, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("view:%s:%d:%s:%s:%s", workspaceID, version, kind, day, hex.EncodeToString(sum[:])), nil
}

func versionKey(workspaceID uuid.UUID) string {
	return fmt.Sprintf("viewver:%s", workspaceID)
}
