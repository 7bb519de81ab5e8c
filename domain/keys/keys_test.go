package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "bidGuard:LISTING_1:abc", RedisKey(PfxBidGuard, "LISTING_1", "abc"))
	assert.Equal(t, "a", RedisKey("a"))
}

func TestGetPrefix(t *testing.T) {
	cases := []struct {
		key string
		exp string
	}{
		{"bidGuard:LISTING_1:abc", "bidGuard:LISTING_1"},
		{"healthcheck:testset", "healthcheck"},
		{"plain", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.exp, GetPrefix(c.key), c.key)
	}
}
