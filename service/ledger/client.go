package ledger

import (
	"fmt"
	"net/http"
	"time"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/domain"
	"github.com/x-xyz/ipmarket/domain/listing"
	"github.com/x-xyz/ipmarket/domain/nft"
)

const (
	HeaderPrincipal = "X-Principal"
	HeaderRequestID = "X-Request-ID"
)

// Client talks to the marketplace ledger gateway. Every method is one remote
// call, nothing is retried.
type Client interface {
	listing.Ledger
	nft.Ledger
	Ping(ctx ctx.Ctx) error
}

type ClientCfg struct {
	HttpClient http.Client
	BaseURL    string
	Timeout    time.Duration
}

// Error is a ledger refusal with no domain counterpart, e.g. InsufficientFunds
type Error struct {
	Method string
	Kind   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ledger %s: %s", e.Method, e.Kind)
}

func (e *Error) Unwrap() error {
	return domain.ErrLedgerRejected
}
