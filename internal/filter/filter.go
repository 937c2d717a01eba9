package filter

import (
	"github.com/samber/lo"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/internal/apperr"
)

// Predicate reports whether an item matches a criterion
type Predicate[T any] func(T) bool

// Apply returns the items matching every predicate, in source order.
// Predicates run in order and stop at the first that fails.
// An empty predicate list matches everything.
func Apply[T any](items []T, predicates []Predicate[T]) ([]T, error) {
	if predicates == nil {
		return nil, apperr.FilterNilPredicates
	}
	if lo.ContainsBy(predicates, func(p Predicate[T]) bool { return p == nil }) {
		return nil, apperr.FilterNilPredicate
	}

	return lo.Filter(items, func(item T, _ int) bool {
		for _, p := range predicates {
			if !p(item) {
				return false
			}
		}
		return true
	}), nil
}
