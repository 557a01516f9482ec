package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Vovarama1992/planbmusic/internal/ports"
)

// Patch is a partial JSON body; only the supplied fields change on update.
type Patch map[string]json.RawMessage

// records stores one entity type as JSON under "<prefix>:<...>" keys.
type records[T any] struct {
	kv     ports.KVStore
	prefix string
	ids    *IDGen
}

func newRecords[T any](kv ports.KVStore, prefix string, ids *IDGen) *records[T] {
	return &records[T]{kv: kv, prefix: prefix, ids: ids}
}

func (r *records[T]) owns(id string) bool {
	return strings.HasPrefix(id, r.prefix+":")
}

func (r *records[T]) newID() string { return r.ids.Next(r.prefix) }

func (r *records[T]) list(ctx context.Context) ([]T, error) {
	entries, err := r.kv.GetByPrefix(ctx, r.prefix+":")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.prefix, err)
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var v T
		if err := json.Unmarshal(e.Value, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", e.Key, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *records[T]) get(ctx context.Context, id string) (T, error) {
	var v T
	if !r.owns(id) {
		return v, fmt.Errorf("%s %q: %w", r.prefix, id, ErrNotFound)
	}
	raw, err := r.kv.Get(ctx, id)
	if err != nil {
		return v, fmt.Errorf("get %s: %w", id, err)
	}
	if raw == nil {
		return v, fmt.Errorf("%s %q: %w", r.prefix, id, ErrNotFound)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", id, err)
	}
	return v, nil
}

func (r *records[T]) put(ctx context.Context, id string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", id, err)
	}
	if err := r.kv.Set(ctx, id, raw); err != nil {
		return fmt.Errorf("set %s: %w", id, err)
	}
	return nil
}

// merge overlays patch on the stored record, keeps the id, stamps updatedAt
// and lets fix enforce invariants before writing back.
func (r *records[T]) merge(ctx context.Context, id string, patch Patch, fix func(*T)) (T, error) {
	var v T
	if !r.owns(id) {
		return v, fmt.Errorf("%s %q: %w", r.prefix, id, ErrNotFound)
	}
	raw, err := r.kv.Get(ctx, id)
	if err != nil {
		return v, fmt.Errorf("get %s: %w", id, err)
	}
	if raw == nil {
		return v, fmt.Errorf("%s %q: %w", r.prefix, id, ErrNotFound)
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return v, fmt.Errorf("decode %s: %w", id, err)
	}
	for k, val := range patch {
		fields[k] = val
	}
	fields["id"], _ = json.Marshal(id)
	fields["updatedAt"], _ = json.Marshal(r.ids.Now())

	merged, err := json.Marshal(fields)
	if err != nil {
		return v, fmt.Errorf("encode %s: %w", id, err)
	}
	if err := json.Unmarshal(merged, &v); err != nil {
		return v, invalid("%v", err)
	}
	if fix != nil {
		fix(&v)
	}
	return v, r.put(ctx, id, v)
}

func (r *records[T]) remove(ctx context.Context, id string) error {
	if err := r.kv.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}

// newestFirst sorts by the given timestamp, descending and stable.
func newestFirst[T any](items []T, at func(T) time.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return at(b).Compare(at(a))
	})
}
