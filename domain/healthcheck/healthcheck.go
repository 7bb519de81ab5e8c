package healthcheck

import (
	"github.com/x-xyz/ipmarket/base/ctx"
)

type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Report holds the check result of every dependency the api talks to
type Report struct {
	Store  Status `json:"store"`
	Ledger Status `json:"ledger"`
}

func (r Report) Healthy() bool {
	return r.Store == StatusUp && r.Ledger == StatusUp
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	// Check pings all dependencies. The report is always complete, err is the first failure seen.
	Check(c ctx.Ctx) (Report, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
}

// Pinger is a remote dependency that can be pinged
type Pinger interface {
	Ping(c ctx.Ctx) error
}
