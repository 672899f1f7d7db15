package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStore keeps objects in process memory. It backs local development
// when no storage endpoint is configured, and the handler tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// UploadHook, when set, runs before each upload and can veto it.
	UploadHook func(bucket, key string) error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
	}
}

func (s *MemoryStore) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (string, error) {
	if s.UploadHook != nil {
		if err := s.UploadHook(bucket, key); err != nil {
			return "", err
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	s.mu.Lock()
	s.objects[bucket+"/"+key] = data
	s.mu.Unlock()

	return s.PublicURL(bucket, key), nil
}

func (s *MemoryStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://storage.local/%s/%s", bucket, key)
}

func (s *MemoryStore) Remove(ctx context.Context, bucket, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := bucket + "/" + key
	if _, ok := s.objects[name]; !ok {
		return fmt.Errorf("object not found: %s", name)
	}
	delete(s.objects, name)
	return nil
}

// Len reports how many objects are stored.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// Has reports whether an object exists.
func (s *MemoryStore) Has(bucket, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[bucket+"/"+key]
	return ok
}
