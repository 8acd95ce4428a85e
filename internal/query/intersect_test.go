package query

import (
	"context"
	"math/rand"
	"testing"

	"confcentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string
	Score int
	Kind  string
}

// fakeStore answers single-predicate queries over an in-memory record set.
// Only the attribute/operator pairs used by the tests are implemented.
type fakeStore struct {
	records  []record
	queryErr error
	fetchErr error
	fetches  int
}

func (f *fakeStore) QueryKeys(ctx context.Context, filter domain.Filter) ([]string, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var keys []string
	for _, r := range f.records {
		if matches(r, filter) {
			keys = append(keys, r.ID)
		}
	}
	return keys, nil
}

func (f *fakeStore) GetMulti(ctx context.Context, ids []string) ([]record, error) {
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	byID := make(map[string]record, len(f.records))
	for _, r := range f.records {
		byID[r.ID] = r
	}
	var out []record
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func matches(r record, f domain.Filter) bool {
	switch f.Attribute {
	case "score":
		v := f.Value.(int)
		switch f.Op {
		case domain.OpGt:
			return r.Score > v
		case domain.OpGte:
			return r.Score >= v
		case domain.OpLt:
			return r.Score < v
		case domain.OpLte:
			return r.Score <= v
		case domain.OpEq:
			return r.Score == v
		case domain.OpNe:
			return r.Score != v
		}
	case "kind":
		v := f.Value.(string)
		switch f.Op {
		case domain.OpEq:
			return r.Kind == v
		case domain.OpNe:
			return r.Kind != v
		}
	}
	return false
}

func TestIntersect_MatchesIndependentKeySetIntersection(t *testing.T) {
	// Property check over randomly generated record sets: the result must
	// equal the set intersection of the two independently-run key queries.
	rng := rand.New(rand.NewSource(1))
	kinds := []string{"a", "b", "c"}

	for round := 0; round < 50; round++ {
		store := &fakeStore{}
		n := rng.Intn(40)
		for i := 0; i < n; i++ {
			store.records = append(store.records, record{
				ID:    string(rune('A'+i/26)) + string(rune('a'+i%26)),
				Score: rng.Intn(20),
				Kind:  kinds[rng.Intn(len(kinds))],
			})
		}
		first := domain.Filter{Attribute: "score", Op: domain.OpGt, Value: rng.Intn(20)}
		second := domain.Filter{Attribute: "kind", Op: domain.OpNe, Value: kinds[rng.Intn(len(kinds))]}

		got, err := Intersect[record](context.Background(), store, first, second)
		require.NoError(t, err)

		want := make(map[string]struct{})
		for _, r := range store.records {
			if matches(r, first) && matches(r, second) {
				want[r.ID] = struct{}{}
			}
		}
		gotIDs := make(map[string]struct{}, len(got))
		for _, r := range got {
			gotIDs[r.ID] = struct{}{}
		}
		assert.Equal(t, want, gotIDs, "round %d", round)
	}
}

func TestIntersect_EmptySideSkipsFetch(t *testing.T) {
	store := &fakeStore{records: []record{
		{ID: "s1", Score: 5, Kind: "a"},
		{ID: "s2", Score: 7, Kind: "b"},
	}}

	got, err := Intersect[record](context.Background(), store,
		domain.Filter{Attribute: "score", Op: domain.OpGt, Value: 100},
		domain.Filter{Attribute: "kind", Op: domain.OpEq, Value: "a"},
	)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, store.fetches, "fetch must be skipped when a side is empty")
}

func TestIntersect_SameAttributeDegeneratesToTighterBound(t *testing.T) {
	store := &fakeStore{records: []record{
		{ID: "s1", Score: 1},
		{ID: "s2", Score: 4},
		{ID: "s3", Score: 9},
	}}

	got, err := Intersect[record](context.Background(), store,
		domain.Filter{Attribute: "score", Op: domain.OpGt, Value: 2},
		domain.Filter{Attribute: "score", Op: domain.OpGt, Value: 5},
	)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s3", got[0].ID)
}

func TestIntersect_PropagatesQueryError(t *testing.T) {
	store := &fakeStore{queryErr: domain.NewQueryError("unsupported attribute %q", "nope")}

	_, err := Intersect[record](context.Background(), store,
		domain.Filter{Attribute: "nope", Op: domain.OpEq, Value: 1},
		domain.Filter{Attribute: "score", Op: domain.OpEq, Value: 1},
	)
	require.Error(t, err)
	var qe *domain.QueryError
	assert.ErrorAs(t, err, &qe)
}
