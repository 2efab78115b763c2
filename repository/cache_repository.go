package repository

import "context"

// CacheRepository stores encoded recommendations by key. A miss and a
// backend failure both report ok=false on Get.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
