package database

import "context"

// MemoryStore keeps collections in process memory. Not safe for concurrent use.
type MemoryStore struct {
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, collection string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]byte(nil), s.data[collection]...), nil
}

func (s *MemoryStore) Save(ctx context.Context, collection string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data[collection] = append([]byte(nil), data...)
	return nil
}
