package redis

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/database/redisclient"
	"github.com/x-xyz/ipmarket/base/metrics"
	"github.com/x-xyz/ipmarket/domain/keys"
)

// redisSuite needs a redis, set REDIS_TEST_ADDR to run it
type redisSuite struct {
	suite.Suite
	im  Service
	ctx ctx.Ctx
	key string
}

func TestRedisSuite(t *testing.T) {
	if os.Getenv("REDIS_TEST_ADDR") == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	suite.Run(t, new(redisSuite))
}

func (s *redisSuite) SetupTest() {
	pool := redisclient.MustConnectRedis(os.Getenv("REDIS_TEST_ADDR"), "")
	s.im = New("test", metrics.New("redis"), pool)
	s.ctx = ctx.Background()
	s.key = keys.RedisKey(keys.PfxBidGuard, "test", time.Now().Format(time.RFC3339Nano))
	_, _ = s.im.Del(s.ctx, s.key)
}

func (s *redisSuite) TestSetGet() {
	_, err := s.im.Get(s.ctx, s.key)
	s.Equal(ErrNotFound, err)

	s.Require().NoError(s.im.Set(s.ctx, s.key, []byte("v1"), time.Minute))
	val, err := s.im.Get(s.ctx, s.key)
	s.Require().NoError(err)
	s.Equal([]byte("v1"), val)

	ttl, err := s.im.TTL(s.ctx, s.key)
	s.Require().NoError(err)
	s.True(ttl > 0 && ttl <= time.Minute)

	s.Require().NoError(s.im.Set(s.ctx, s.key, []byte("v2"), Forever))
	ttl, err = s.im.TTL(s.ctx, s.key)
	s.Require().NoError(err)
	s.Equal(Forever, ttl)

	_, err = s.im.TTL(s.ctx, s.key+":missing")
	s.Equal(ErrNotFound, err)
}

func (s *redisSuite) TestSetNX() {
	s.Require().NoError(s.im.SetNX(s.ctx, s.key, []byte("1"), time.Minute))
	s.Equal(ErrKeyExists, s.im.SetNX(s.ctx, s.key, []byte("2"), time.Minute))

	n, err := s.im.Del(s.ctx, s.key)
	s.Require().NoError(err)
	s.Equal(1, n)
	s.NoError(s.im.SetNX(s.ctx, s.key, []byte("3"), time.Minute))
	s.NoError(s.im.Ping(s.ctx))
}
