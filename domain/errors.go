package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrUnauthorized is returned when the caller may not act on the item
	ErrUnauthorized = errors.New("Unauthorized")
	// ErrLedgerUnavailable wraps every transport, timeout or decoding failure
	// talking to the marketplace ledger. It is safe to retry by hand.
	ErrLedgerUnavailable = errors.New("marketplace ledger unavailable")
	// ErrInvalidState marks a snapshot that breaks the listing invariants, or
	// an auction operation on a fixed-price listing. It is a defect upstream.
	ErrInvalidState = errors.New("invalid listing state")
	// ErrLedgerRejected is a ledger refusal with no better domain meaning,
	// such as InsufficientFunds or NFTNotTransferable
	ErrLedgerRejected   = errors.New("rejected by marketplace ledger")
	ErrInvalidPrincipal = errors.New("invalid principal")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNotImplemented   = errors.New("not implemented")
)
