package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// Loader fetches the value on a miss. It must return a pointer.
type Loader func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service caches typed values under a key prefix
type Service interface {
	// GetByFunc fills container from the cache, or from load on a miss and
	// then caches the loaded value
	GetByFunc(c ctx.Ctx, key string, container interface{}, load Loader) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
