package order

import (
	"context"
	"fmt"

	"github.com/MarcGrol/storecli/lib/myerrors"
	"github.com/MarcGrol/storecli/lib/mystore"
)

type Store struct {
	store mystore.Store
}

func NewStore(store mystore.Store) *Store {
	return &Store{
		store: store,
	}
}

func (s *Store) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	return s.store.RunInTransaction(c, f)
}

// LastOrderID returns the highest order id on file, or 0 when there are no orders yet.
func (s *Store) LastOrderID(c context.Context) (int, error) {
	lines, err := s.store.ReadLines(c)
	if err != nil {
		return 0, myerrors.NewPersistenceError(err)
	}

	lastID := 0
	for idx, line := range lines {
		id, found, err := parseOrderIDLine(line)
		if err != nil {
			return 0, myerrors.NewPersistenceError(fmt.Errorf("corrupt order store at line %d: %w", idx+1, err))
		}
		if found && id > lastID {
			lastID = id
		}
	}
	return lastID, nil
}

func (s *Store) Append(c context.Context, o Order) error {
	err := s.store.Append(c, Format(o))
	if err != nil {
		return myerrors.NewPersistenceError(fmt.Errorf("error saving order %d: %w", o.OrderID, err))
	}
	return nil
}

// All returns the raw order blocks in the order they were written.
func (s *Store) All(c context.Context) ([]string, error) {
	lines, err := s.store.ReadLines(c)
	if err != nil {
		return nil, myerrors.NewPersistenceError(err)
	}
	return splitBlocks(lines), nil
}

func (s *Store) Orders(c context.Context) ([]Order, error) {
	blocks, err := s.All(c)
	if err != nil {
		return nil, err
	}

	orders := make([]Order, 0, len(blocks))
	for _, block := range blocks {
		o, err := Parse(block)
		if err != nil {
			return nil, myerrors.NewPersistenceError(err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
