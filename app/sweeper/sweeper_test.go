package main

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ipmarket/base/backoff"
	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/goroutine"
	"github.com/x-xyz/ipmarket/domain"
	mListing "github.com/x-xyz/ipmarket/domain/listing/mocks"
)

type sweeperSuite struct {
	suite.Suite

	now time.Time
	uc  *mListing.Usecase
	s   *sweeper
}

func TestSweeperSuite(t *testing.T) {
	suite.Run(t, new(sweeperSuite))
}

func (ss *sweeperSuite) SetupTest() {
	ss.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ss.uc = mListing.NewUsecase(ss.T())
	ss.s = &sweeper{
		listing:  ss.uc,
		interval: time.Hour,
		backoff:  backoff.NewExponential(time.Millisecond, 4*time.Millisecond),
		now:      func() time.Time { return ss.now },
	}
}

func (ss *sweeperSuite) TestTick() {
	ss.uc.On("SweepExpired", mock.Anything, ss.now).Return(2, nil).Once()
	ss.NoError(ss.s.tick(ctx.Background()))

	ss.uc.On("SweepExpired", mock.Anything, ss.now).Return(0, domain.ErrLedgerUnavailable).Once()
	ss.ErrorIs(ss.s.tick(ctx.Background()), domain.ErrLedgerUnavailable)
}

func (ss *sweeperSuite) TestTickRecoversPanic() {
	ss.uc.On("SweepExpired", mock.Anything, ss.now).Run(func(mock.Arguments) {
		panic("boom")
	}).Return(0, nil).Once()

	err := ss.s.tick(ctx.Background())
	var ev *goroutine.PanicEvent
	ss.True(errors.As(err, &ev))
	ss.Equal("boom", ev.Panic)
}

func (ss *sweeperSuite) TestRunBacksOffThenStops() {
	c, cancel := ctx.WithCancel(ctx.Background())
	calls := 0

	ss.uc.On("SweepExpired", mock.Anything, ss.now).Return(0, domain.ErrLedgerUnavailable).Times(3)
	ss.uc.On("SweepExpired", mock.Anything, ss.now).Run(func(mock.Arguments) {
		calls++
		cancel()
	}).Return(1, nil).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ss.s.run(c)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		ss.FailNow("sweeper did not stop")
	}
	ss.Equal(1, calls)
	ss.Equal(0, ss.s.backoff.Failures())
}

func (ss *sweeperSuite) TestNewSweeperDefaults() {
	viper.Reset()
	defer viper.Reset()

	s := newSweeper(ss.uc)
	ss.Equal(defaultInterval, s.interval)
	ss.Equal(defaultBackoffStart, s.backoff.NextDuration)
}

func (ss *sweeperSuite) TestNewSweeperFromConfig() {
	viper.Reset()
	defer viper.Reset()
	viper.Set("sweeper.interval", "30s")
	viper.Set("sweeper.backoffStart", "1ms")
	viper.Set("sweeper.backoffLimit", "1s")
	viper.Set("sweeper.backoffStrategy", "linear")

	s := newSweeper(ss.uc)
	ss.Equal(30*time.Second, s.interval)
	ss.Equal(time.Millisecond, s.backoff.NextDuration)

	for i := 0; i < 3; i++ {
		ss.NoError(s.backoff.Backoff(ctx.Background()))
	}
	ss.Equal(3, s.backoff.Failures())
	ss.Equal(4*time.Millisecond, s.backoff.NextDuration)
}
