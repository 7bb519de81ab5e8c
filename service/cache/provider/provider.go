package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/ipmarket/base/ctx"
)

// NoExpiry keeps an entry until it is evicted or deleted
const NoExpiry time.Duration = 0

// ErrNotFound is returned on a miss, including entries that expired
var ErrNotFound = errors.New("cache miss")

// Provider stores raw bytes. Get reports the remaining ttl so stacked
// providers can copy an entry without extending its life.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
