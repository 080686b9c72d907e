package mystore

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type InMemoryStore struct {
	sync.Mutex
	Content string
}

func NewInMemoryStore(c context.Context) (*InMemoryStore, func(), error) {
	return &InMemoryStore{}, func() {}, nil
}

func (s *InMemoryStore) key() ctxTransactionKey {
	return ctxTransactionKey{name: fmt.Sprintf("inmem-%p", s)}
}

func (s *InMemoryStore) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	if c.Value(s.key()) != nil {
		return f(c)
	}

	// Start transaction
	s.Lock()
	defer s.Unlock()

	snapshot := s.Content

	ctx := context.WithValue(c, s.key(), true)

	// Within this block everything is transactional
	err := f(ctx)
	if err != nil {
		// Rollback
		s.Content = snapshot
		return err
	}

	// Commit
	return nil
}

func (s *InMemoryStore) Append(c context.Context, text string) error {
	nonTransactional := c.Value(s.key()) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	s.Content += text

	return nil
}

func (s *InMemoryStore) ReadLines(c context.Context) ([]string, error) {
	nonTransactional := c.Value(s.key()) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	if s.Content == "" {
		return []string{}, nil
	}
	return strings.Split(strings.TrimSuffix(s.Content, "\n"), "\n"), nil
}
