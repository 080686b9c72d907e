package mystore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
)

type fileStore struct {
	filename string
}

func newFileStore(c context.Context, filename string) (*fileStore, func(), error) {
	return &fileStore{
		filename: filename,
	}, func() {}, nil
}

func (s *fileStore) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	key := ctxTransactionKey{name: s.filename}
	if c.Value(key) != nil {
		// Already part of an outer transaction on this file
		return f(c)
	}

	// Start transaction: remember where the file ended
	size, existed, err := s.size()
	if err != nil {
		return err
	}

	ctx := context.WithValue(c, key, true)

	err = f(ctx)
	if err != nil {
		// Rollback
		rollbackErr := s.restore(size, existed)
		if rollbackErr != nil {
			return fmt.Errorf("%w (%w: restoring %s to %d bytes: %s)", err, ErrRollbackFailed, s.filename, size, rollbackErr)
		}
		return err
	}

	// Commit: appends are already on disk
	return nil
}

func (s *fileStore) Append(c context.Context, text string) error {
	file, err := os.OpenFile(s.filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening %s for append: %w", s.filename, err)
	}

	_, err = file.WriteString(text)
	if err != nil {
		file.Close()
		return fmt.Errorf("error appending to %s: %w", s.filename, err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("error closing %s: %w", s.filename, err)
	}

	return nil
}

func (s *fileStore) ReadLines(c context.Context) ([]string, error) {
	file, err := os.Open(s.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("error opening %s: %w", s.filename, err)
	}
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", s.filename, err)
	}

	return lines, nil
}

func (s *fileStore) size() (int64, bool, error) {
	info, err := os.Stat(s.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error inspecting %s: %w", s.filename, err)
	}
	return info.Size(), true, nil
}

func (s *fileStore) restore(size int64, existed bool) error {
	if !existed {
		err := os.Remove(s.filename)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return os.Truncate(s.filename, size)
}
