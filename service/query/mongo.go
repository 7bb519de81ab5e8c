// Package query is the mongo access used by repositories. Every call is timed
// and slow ones are logged.
package query

import (
	"errors"

	"github.com/x-xyz/ipmarket/base/ctx"
	"github.com/x-xyz/ipmarket/domain"
)

var (
	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = errors.New("COLLSCAN is not allowed")
)

// Index is one index on a table, keys prefixed with "-" are descending
type Index struct {
	Keys   []string
	Unique bool
}

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert returns ErrDuplicateKey when a unique index rejects doc
	Insert(c ctx.Ctx, table domain.Table, doc interface{}) error

	Count(c ctx.Ctx, table domain.Table, filter interface{}) (n int, err error)

	// Search decodes one page into results. sort is a field name, "-" prefixed
	// for descending; an empty sort leaves the order to the server.
	Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, filter, results interface{}) error

	// EnsureIndexes creates missing indexes, existing ones are left untouched
	EnsureIndexes(c ctx.Ctx, table domain.Table, indexes ...Index) error

	Ping(c ctx.Ctx) error
}
