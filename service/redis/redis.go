package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/ipmarket/base/ctx"
)

// Forever means the key never expires
const Forever time.Duration = -1

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrKeyExists is returned by SetNX when the key is already set
	ErrKeyExists = errors.New("redis: key exists")
)

// Service is the subset of redis commands used by the stores
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only if it does not exist yet, or returns ErrKeyExists
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	// TTL returns the remaining time to live, Forever when the key has no
	// expire, or ErrNotFound
	TTL(context ctx.Ctx, key string) (time.Duration, error)
	Ping(context ctx.Ctx) error
}
