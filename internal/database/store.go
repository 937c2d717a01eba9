package database

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
)

// Store persists raw collection blobs by name
type Store interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
}

// Repository reads and overwrites a whole list of entities
type Repository[T any] interface {
	ReadAll(ctx context.Context) ([]T, error)
	WriteAll(ctx context.Context, items []T) error
}

// Collection stores a list of T as one JSON array keyed by T's type name
type Collection[T any] struct {
	store Store
	name  string
}

// NewCollection creates a collection for T on top of store
func NewCollection[T any](store Store) *Collection[T] {
	return &Collection[T]{store: store, name: CollectionName[T]()}
}

// CollectionName returns the storage key used for T, e.g. "Flight"
func CollectionName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().Name()
}

// Name returns the storage key of the collection
func (c *Collection[T]) Name() string {
	return c.name
}

// ReadAll returns every stored item; a missing or empty collection is an empty list
func (c *Collection[T]) ReadAll(ctx context.Context) ([]T, error) {
	data, err := c.store.Load(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c.name, err)
	}

	items := []T{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// WriteAll replaces the stored collection with items
func (c *Collection[T]) WriteAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.name, err)
	}
	if err := c.store.Save(ctx, c.name, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.name, err)
	}
	return nil
}
