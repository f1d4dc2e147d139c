// Package collection persists collection schemas in a Redis hash store and
// implements the storage engine contract of the collection use case.
package collection

import (
	"context"
	"fmt"
	"sort"

	"github.com/ucasfl/milvus/internal/domain"
	"github.com/ucasfl/milvus/internal/domain/schema"
)

// store is the consumer interface for collection persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/collection.Engine.
type Repo struct {
	store store
}

// New creates a collection repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// CreateCollection stores the collection schema and its fields in one hash.
// A name collision is reported as domain.ErrAlreadyExists; arbitration
// between concurrent requests for the same name is left to the store.
func (r *Repo) CreateCollection(ctx context.Context, col schema.Collection, fields []schema.Field) error {
	key := metaKey(col.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, col.ID())
	}

	hashData, err := collectionToHash(col, fields)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, key, hashData); err != nil {
		return fmt.Errorf("hset collection %s: %w", col.ID(), err)
	}
	return nil
}

// DescribeCollection retrieves a collection schema and its fields by name.
func (r *Repo) DescribeCollection(ctx context.Context, name string) (schema.Collection, []schema.Field, error) {
	m, err := r.store.HGetAll(ctx, metaKey(name))
	if err != nil {
		return schema.Collection{}, nil, fmt.Errorf("hgetall collection %s: %w", name, err)
	}
	if len(m) == 0 {
		return schema.Collection{}, nil, domain.ErrNotFound
	}
	return collectionFromHash(m)
}

// ListCollections returns all collection schemas sorted by creation time.
func (r *Repo) ListCollections(ctx context.Context) ([]schema.Collection, error) {
	keys, err := r.store.Scan(ctx, metaKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan collections: %w", err)
	}
	if len(keys) == 0 {
		return []schema.Collection{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi collections: %w", err)
	}

	cols := make([]schema.Collection, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		col, _, err := collectionFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse collection %s: %w", keys[i], err)
		}
		cols = append(cols, col)
	}

	sort.Slice(cols, func(i, j int) bool {
		return cols[i].CreatedAt() < cols[j].CreatedAt()
	})

	return cols, nil
}

// DropCollection removes a collection schema.
func (r *Repo) DropCollection(ctx context.Context, name string) error {
	key := metaKey(name)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del collection %s: %w", name, err)
	}
	return nil
}

// HasCollection reports whether a collection exists.
func (r *Repo) HasCollection(ctx context.Context, name string) (bool, error) {
	exists, err := r.store.Exists(ctx, metaKey(name))
	if err != nil {
		return false, fmt.Errorf("check exists: %w", err)
	}
	return exists, nil
}

// Key pattern: milvus:collection:{name}

func metaKey(name string) string {
	return fmt.Sprintf("%scollection:%s", domain.KeyPrefix, name)
}
