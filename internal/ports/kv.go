package ports

import "context"

type KVEntry struct {
	Key   string
	Value []byte
}

// KVStore is the persistence collaborator for every record type. Get of a
// missing key returns nil, nil.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]KVEntry, error)
}
