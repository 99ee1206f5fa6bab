package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spec-kit/warehouse-service/internal/persistence"
)

// ErrNotFound is returned when no record matches the requested identifier.
var ErrNotFound = errors.New("record not found")

// loadCollection reads a serialized record list from the substrate. A key
// that was never written reads as an empty collection.
func loadCollection[T any](ctx context.Context, store persistence.Store, key string) ([]T, error) {
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || len(data) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return items, nil
}

// saveCollection writes the record list back, replacing the previous value.
func saveCollection[T any](ctx context.Context, store persistence.Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
