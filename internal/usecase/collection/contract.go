package collection

import (
	"context"

	"github.com/ucasfl/milvus/internal/domain/schema"
)

// Engine is the storage contract for collection schemas. CreateCollection
// reports a name collision as domain.ErrAlreadyExists, distinguished from
// all other failures.
type Engine interface {
	CreateCollection(ctx context.Context, col schema.Collection, fields []schema.Field) error
	DescribeCollection(ctx context.Context, name string) (schema.Collection, []schema.Field, error)
	ListCollections(ctx context.Context) ([]schema.Collection, error)
	DropCollection(ctx context.Context, name string) error
	HasCollection(ctx context.Context, name string) (bool, error)
}

// NameValidator checks proposed collection names (external collaborator).
type NameValidator interface {
	ValidateCollectionName(name string) error
}
