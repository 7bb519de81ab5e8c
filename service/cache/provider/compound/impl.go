package compound

import (
	"time"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/service/cache/provider"
)

type impl struct {
	layers []provider.Provider
}

// NewCompound stacks layers, fastest first. A hit in a lower layer is copied
// into the layers above it with the remaining ttl.
func NewCompound(layers ...provider.Provider) provider.Provider {
	return &impl{layers}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for depth, lyr := range im.layers {
		val, ttl, err := lyr.Get(c, key)
		if err == provider.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		im.backfill(c, depth, key, val, ttl)
		return val, ttl, nil
	}
	return nil, 0, provider.ErrNotFound
}

// backfill copies a hit at depth into the faster layers. A failed copy only
// costs a later miss, the hit is still returned.
func (im *impl) backfill(c ctx.Ctx, depth int, key string, val []byte, ttl time.Duration) {
	for _, upper := range im.layers[:depth] {
		if err := upper.Set(c, key, val, ttl); err != nil {
			c.WithFields(log.Fields{"err": err, "key": key, "depth": depth}).Warn("backfill failed")
		}
	}
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

// Del clears the slowest layer first so a concurrent Get cannot copy the
// entry back up.
func (im *impl) Del(c ctx.Ctx, key string) error {
	for i := len(im.layers) - 1; i >= 0; i-- {
		if err := im.layers[i].Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
