package store

import (
	"bytes"
	"fmt"
	"slices"

	"userstore/internal/codec"
	"userstore/internal/domain"
)

// MemoryStore keeps encoded records in a map. Values round-trip through the
// codec so encode failures and aliasing behave as they do on disk.
type MemoryStore[V any] struct {
	codec   codec.Codec[V]
	records map[domain.Username][]byte
}

// NewMemoryStore returns an empty MemoryStore using c.
func NewMemoryStore[V any](c codec.Codec[V]) *MemoryStore[V] {
	return &MemoryStore[V]{
		codec:   c,
		records: make(map[domain.Username][]byte),
	}
}

// Get decodes the record stored for u.
func (s *MemoryStore[V]) Get(u domain.Username) (V, bool, error) {
	var zero V
	if err := u.Validate(); err != nil {
		return zero, false, err
	}
	b, ok := s.records[u]
	if !ok {
		return zero, false, nil
	}
	v, err := s.codec.Decode(bytes.NewReader(b))
	if err != nil {
		return zero, false, fmt.Errorf("%w: %s: %w", domain.ErrCorruptEntry, u, err)
	}
	return v, true, nil
}

// Set encodes v and stores it for u.
func (s *MemoryStore[V]) Set(u domain.Username, v V) error {
	if err := u.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, v); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrWriteFailure, u, err)
	}
	s.records[u] = buf.Bytes()
	return nil
}

// Delete forgets u.
func (s *MemoryStore[V]) Delete(u domain.Username) error {
	if err := u.Validate(); err != nil {
		return err
	}
	delete(s.records, u)
	return nil
}

// Usernames returns the stored usernames in sorted order.
func (s *MemoryStore[V]) Usernames() []domain.Username {
	out := make([]domain.Username, 0, len(s.records))
	for u := range s.records {
		out = append(out, u)
	}
	slices.Sort(out)
	return out
}

// Compile-time assertion that MemoryStore implements domain.StorageManager.
var _ domain.StorageManager[any] = (*MemoryStore[any])(nil)
