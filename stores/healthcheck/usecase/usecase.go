package usecase

import (
	"time"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/base/log"
	hcdomain "github.com/x-xyz/ipmarket/domain/healthcheck"
)

const ledgerPingTimeout = 3 * time.Second

type impl struct {
	repo   hcdomain.HealthCheckRepo
	ledger hcdomain.Pinger
}

func New(repo hcdomain.HealthCheckRepo, ledger hcdomain.Pinger) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:   repo,
		ledger: ledger,
	}
}

func (im *impl) Check(c ctx.Ctx) (hcdomain.Report, error) {
	report := hcdomain.Report{Store: hcdomain.StatusUp, Ledger: hcdomain.StatusUp}
	var first error

	if err := im.repo.PingDB(c); err != nil {
		c.WithField("err", err).Error("repo.PingDB failed")
		report.Store = hcdomain.StatusDown
		first = err
	}

	pc, cancel := ctx.WithTimeout(c, ledgerPingTimeout)
	defer cancel()
	if err := im.ledger.Ping(pc); err != nil {
		c.WithFields(log.Fields{"err": err, "timeout": ledgerPingTimeout}).Error("ledger.Ping failed")
		report.Ledger = hcdomain.StatusDown
		if first == nil {
			first = err
		}
	}

	return report, first
}
