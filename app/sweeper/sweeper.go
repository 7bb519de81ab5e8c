package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/ipmarket/base/backoff"
	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/goroutine"
	"github.com/x-xyz/ipmarket/base/log"
	"github.com/x-xyz/ipmarket/base/metrics"
	"github.com/x-xyz/ipmarket/domain/listing"
)

var met = metrics.New("sweeper")

type sweeper struct {
	listing  listing.Usecase
	interval time.Duration
	backoff  *backoff.Backoff
	now      func() time.Time
}

const (
	defaultInterval     = time.Minute
	defaultBackoffStart = 2 * time.Second
	defaultBackoffLimit = 2 * time.Minute
)

// newSweeper reads the sweeper.* keys, unset or non positive durations fall
// back to the defaults
func newSweeper(uc listing.Usecase) *sweeper {
	interval := viper.GetDuration("sweeper.interval")
	if interval <= 0 {
		interval = defaultInterval
	}
	start := viper.GetDuration("sweeper.backoffStart")
	if start <= 0 {
		start = defaultBackoffStart
	}
	limit := viper.GetDuration("sweeper.backoffLimit")
	if limit <= 0 {
		limit = defaultBackoffLimit
	}

	b := backoff.NewExponential(start, limit)
	if viper.GetString("sweeper.backoffStrategy") == "linear" {
		b = backoff.NewLinear(start, limit)
	}

	return &sweeper{
		listing:  uc,
		interval: interval,
		backoff:  b,
		now:      time.Now,
	}
}

// run sweeps every interval until c is done. Failed sweeps are retried with
// backoff instead of waiting a full interval.
func (s *sweeper) run(c ctx.Ctx) {
	for {
		if err := s.tick(c); err != nil {
			met.BumpSum("fail", 1)
			c.WithFields(log.Fields{
				"err":      err,
				"failures": s.backoff.Failures(),
				"next":     s.backoff.NextDuration,
			}).Error("sweep failed")
			if err := s.backoff.Backoff(c); err != nil {
				return
			}
			continue
		}
		s.backoff.Reset()

		select {
		case <-c.Done():
			return
		case <-time.After(s.interval):
		}
	}
}

// tick runs one sweep, a panic inside it is reported as an error
func (s *sweeper) tick(c ctx.Ctx) error {
	var err error
	ch := goroutine.RecoverableGo(func() {
		defer met.BumpTime("sweep").End()
		var n int
		n, err = s.listing.SweepExpired(c, s.now())
		if err == nil {
			met.BumpSum("cleaned", float64(n))
		}
	}, goroutine.WithName("sweep"))
	if perr := goroutine.Wait(ch); perr != nil {
		return perr
	}
	return err
}
