// Package query composes the storage backend's restricted single-predicate
// queries into conjunctive results. The backend refuses inequality comparisons
// on two different attributes in one query; Intersect answers such queries by
// running each predicate as a key-only query and intersecting the key sets.
package query

import (
	"context"
	"fmt"

	"confcentral/internal/domain"
)

// Store is the minimal storage surface Intersect needs for one record kind:
// key-only single-predicate queries plus batched fetch by key.
type Store[T any] interface {
	QueryKeys(ctx context.Context, f domain.Filter) ([]string, error)
	GetMulti(ctx context.Context, ids []string) ([]T, error)
}

// Intersect returns the records satisfying both filters. Each filter runs as
// an independent key-only query; the full records are fetched only for keys
// present in both result sets. Result order is unspecified. Cost is linear in
// the two key-set sizes, which is fine for small-to-moderate datasets.
//
// Filters on the same attribute degenerate to the tighter constraint; no
// special casing is needed for that.
func Intersect[T any](ctx context.Context, s Store[T], first, second domain.Filter) ([]T, error) {
	firstKeys, err := s.QueryKeys(ctx, first)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", first.Attribute, err)
	}
	secondKeys, err := s.QueryKeys(ctx, second)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", second.Attribute, err)
	}
	if len(firstKeys) == 0 || len(secondKeys) == 0 {
		return nil, nil
	}

	inFirst := make(map[string]struct{}, len(firstKeys))
	for _, k := range firstKeys {
		inFirst[k] = struct{}{}
	}
	var both []string
	seen := make(map[string]struct{}, len(secondKeys))
	for _, k := range secondKeys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := inFirst[k]; ok {
			both = append(both, k)
		}
	}
	if len(both) == 0 {
		return nil, nil
	}

	records, err := s.GetMulti(ctx, both)
	if err != nil {
		return nil, fmt.Errorf("fetch intersected records: %w", err)
	}
	return records, nil
}
