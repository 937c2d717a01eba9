package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/database"
	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

// cachedList holds the in-memory copy of one stored collection.
// The cache is filled from storage only while empty and replaced after every write.
type cachedList[T models.Entity] struct {
	repo  database.Repository[T]
	name  string
	clone func(T) T
	items []T
}

func newCachedList[T models.Entity](repo database.Repository[T], name string, clone func(T) T) *cachedList[T] {
	return &cachedList[T]{repo: repo, name: name, clone: clone}
}

// current returns the cached items without copying; callers must not mutate them
func (c *cachedList[T]) current(ctx context.Context) ([]T, error) {
	if len(c.items) > 0 {
		return c.items, nil
	}

	items, err := c.repo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.name, err)
	}
	c.items = c.copyOf(items)
	return c.items, nil
}

// snapshot returns a deep copy of the cached items
func (c *cachedList[T]) snapshot(ctx context.Context) ([]T, error) {
	items, err := c.current(ctx)
	if err != nil {
		return nil, err
	}
	return c.copyOf(items), nil
}

// working returns a shallow copy that can be edited and passed to commit
func (c *cachedList[T]) working(ctx context.Context) ([]T, error) {
	items, err := c.current(ctx)
	if err != nil {
		return nil, err
	}
	return append(make([]T, 0, len(items)+1), items...), nil
}

// commit persists items and then replaces the cache with them
func (c *cachedList[T]) commit(ctx context.Context, items []T) error {
	if err := c.repo.WriteAll(ctx, items); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.name, err)
	}
	c.items = c.copyOf(items)
	return nil
}

func (c *cachedList[T]) copyOf(items []T) []T {
	return lo.Map(items, func(item T, _ int) T { return c.clone(item) })
}

func indexByID[T models.Entity](items []T, id uuid.UUID) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}
