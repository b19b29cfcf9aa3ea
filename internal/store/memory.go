package store

import (
	"bytes"
	"context"
	"sync"
	"time"
)

// MemoryBlobRepo is an in-process BlobRepo for tests and dry runs.
// SaveErr, when set, makes every Save fail; SaveDelay makes Save block
// until the delay elapses or ctx is done.
type MemoryBlobRepo struct {
	mu        sync.Mutex
	blobs     map[Key][]byte
	Saves     int
	SaveErr   error
	SaveDelay time.Duration
}

// NewMemoryBlobRepo returns an empty MemoryBlobRepo.
func NewMemoryBlobRepo() *MemoryBlobRepo {
	return &MemoryBlobRepo{blobs: make(map[Key][]byte)}
}

func (m *MemoryBlobRepo) Load(_ context.Context, key Key) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(b), true, nil
}

func (m *MemoryBlobRepo) Save(ctx context.Context, key Key, blob []byte) error {
	m.mu.Lock()
	delay, saveErr := m.SaveDelay, m.SaveErr
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if saveErr != nil {
		return saveErr
	}
	m.blobs[key] = bytes.Clone(blob)
	return nil
}

// SetSaveErr changes the injected Save error.
func (m *MemoryBlobRepo) SetSaveErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveErr = err
}

// SaveCount returns the number of Save calls so far.
func (m *MemoryBlobRepo) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Saves
}
