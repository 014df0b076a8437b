package testutil

import (
	"errors"
	"sync"
)

// ErrStorageUnavailable is returned by FailingStorage.
var ErrStorageUnavailable = errors.New("storage unavailable")

// FailingStorage is a store.Storage whose operations always fail. It counts
// the calls made to it.
type FailingStorage struct {
	Calls int
	mu    sync.Mutex
}

func (s *FailingStorage) record() {
	s.mu.Lock()
	s.Calls++
	s.mu.Unlock()
}

func (s *FailingStorage) Get(string) ([]byte, error) {
	s.record()

	return nil, ErrStorageUnavailable
}

func (s *FailingStorage) Set(string, []byte) error {
	s.record()

	return ErrStorageUnavailable
}

func (s *FailingStorage) Clear() error {
	s.record()

	return ErrStorageUnavailable
}
