package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/ipmarket/base/log"
)

type requestIDKey struct{}

// Ctx is a context.Context that also carries a field logger
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, e.g. an incoming request context
func From(parent context.Context) Ctx {
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithRequestID tags both the context and its logger with the request id
func WithRequestID(parent Ctx, id string) Ctx {
	return Ctx{
		Context: context.WithValue(parent, requestIDKey{}, id),
		Logger:  parent.Logger.WithField("requestID", id),
	}
}

// RequestID returns the id set by WithRequestID or ""
func RequestID(c context.Context) string {
	if id, ok := c.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

// WithContext swaps the underlying context and keeps the logger, used when
// a derived context (errgroup, signal) has to flow back into Ctx-based APIs
func WithContext(parent Ctx, c context.Context) Ctx {
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}
}
