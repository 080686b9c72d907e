package mystore

import (
	"context"
	"errors"
)

// ErrRollbackFailed is wrapped into the error of a transaction whose appends could not be undone.
var ErrRollbackFailed = errors.New("rollback failed")

// ctxTransactionKey marks a context as running inside a transaction on the store with the given name.
type ctxTransactionKey struct {
	name string
}

// Store is an append-only text surface. Records are never rewritten, only appended.
//
//go:generate mockgen -source=api.go -package mystore -destination store_mock.go Store
type Store interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Append(c context.Context, text string) error
	ReadLines(c context.Context) ([]string, error)
}

// New returns a file-backed store, or an in-memory one when no filename is given.
func New(c context.Context, filename string) (Store, func(), error) {
	if filename == "" {
		return NewInMemoryStore(c)
	}

	return newFileStore(c, filename)
}
