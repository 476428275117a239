package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/logger"
)

// ContentCacheTTL lifetime of cached public content responses.
const ContentCacheTTL = 5 * time.Minute

// ContentListKey cache key for a public collection listing variant.
// The variant encodes the query string so filtered views cache separately.
func ContentListKey(collection, variant string) string {
	if variant == "" {
		variant = "default"
	}
	return fmt.Sprintf("public:%s:list:%s", collection, variant)
}

// ContentDetailKey cache key for a public detail view.
func ContentDetailKey(collection, slug string) string {
	return fmt.Sprintf("public:%s:detail:%s", collection, slug)
}

// SettingKey cache key for a public setting payload.
func SettingKey(name string) string {
	return fmt.Sprintf("public:setting:%s", name)
}

// InvalidateCollection drops every cached public view of a collection.
// Best effort: a failed invalidation only delays freshness by the TTL.
func InvalidateCollection(ctx context.Context, collection string) {
	if err := DelPattern(ctx, fmt.Sprintf("public:%s:*", collection)); err != nil {
		logger.Warnw("content_cache_invalidate_failed", "collection", collection, "error", err)
	}
}

// InvalidateSetting drops a cached public setting payload.
func InvalidateSetting(ctx context.Context, name string) {
	if err := Del(ctx, SettingKey(name)); err != nil {
		logger.Warnw("setting_cache_invalidate_failed", "setting", name, "error", err)
	}
}
