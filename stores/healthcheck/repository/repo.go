package repository

import (
	"bytes"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/x-xyz/ipmarket/base/ctx"
	hcdomain "github.com/x-xyz/ipmarket/domain/healthcheck"
	"github.com/x-xyz/ipmarket/domain/keys"
	"github.com/x-xyz/ipmarket/service/query"
	"github.com/x-xyz/ipmarket/service/redis"
)

const (
	pingTimeout  = 2 * time.Second
	roundTripTTL = 30 * time.Second
)

var errRoundTripMismatch = errors.New("redis read back a different value")

type impl struct {
	mongo query.Mongo
	redis redis.Service
}

// New checks the stores the api writes to: mongo for bid receipts, redis for
// bid guards and the response cache.
func New(mongo query.Mongo, redis redis.Service) hcdomain.HealthCheckRepo {
	return &impl{mongo: mongo, redis: redis}
}

func (im *impl) PingDB(c ctx.Ctx) error {
	pc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		if err := im.mongo.Ping(pc); err != nil {
			c.WithField("err", err).Error("mongo.Ping failed")
			return err
		}
		return nil
	})
	g.Go(func() error {
		return im.roundTripRedis(pc)
	})
	return g.Wait()
}

// roundTripRedis writes then reads back a fresh key, a read-only replica fails it
func (im *impl) roundTripRedis(c ctx.Ctx) error {
	id := uuid.NewString()
	key := keys.RedisKey(keys.PfxHealthCheck, "roundtrip", id)
	val := []byte(id)
	if err := im.redis.Set(c, key, val, roundTripTTL); err != nil {
		c.WithField("err", err).Error("failed to redis.Set")
		return err
	}
	got, err := im.redis.Get(c, key)
	if err != nil {
		c.WithField("err", err).Error("failed to redis.Get")
		return err
	}
	if !bytes.Equal(got, val) {
		c.WithField("key", key).Warn("redis round trip mismatch")
		return errRoundTripMismatch
	}
	return nil
}
