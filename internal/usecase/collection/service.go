// Package collection implements the hybrid-collection construction pipeline:
// validate the name, build the schema from the per-field parameter maps,
// submit it to the storage engine and translate engine failures into
// client-facing categories.
package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/ucasfl/milvus/internal/domain"
	"github.com/ucasfl/milvus/internal/domain/schema"
)

// Service handles collection schema operations.
type Service struct {
	engine               Engine
	names                NameValidator
	defaultIndexFileSize int64
}

// New creates a collection service. defaultIndexFileSize applies when a
// request's extra params carry no segment_size.
func New(engine Engine, names NameValidator, defaultIndexFileSize int64) *Service {
	return &Service{engine: engine, names: names, defaultIndexFileSize: defaultIndexFileSize}
}

// Create runs the pipeline for one request. Stages run strictly in order and
// every failure is terminal: a name validation failure is returned untouched
// before any schema object is built, a build failure prevents submission, and
// an "already exists" report from the engine is remapped to
// domain.ErrInvalidCollectionName with the engine's message preserved. All
// other engine failures pass through unchanged.
func (s *Service) Create(
	ctx context.Context,
	name string,
	fieldTypes map[string]schema.DataType,
	fieldIndexParams map[string]map[string]any,
	fieldParams map[string]string,
	extraParams map[string]any,
) (schema.Collection, error) {
	if err := s.names.ValidateCollectionName(name); err != nil {
		return schema.Collection{}, err
	}

	col, fields, err := buildSchema(name, fieldTypes, fieldIndexParams, fieldParams, extraParams, s.defaultIndexFileSize)
	if err != nil {
		return schema.Collection{}, classify(err)
	}

	if err := s.engine.CreateCollection(ctx, col, fields); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return schema.Collection{}, fmt.Errorf("%w: %s", domain.ErrInvalidCollectionName, err.Error())
		}
		return schema.Collection{}, fmt.Errorf("create collection: %w", err)
	}

	return col, nil
}

// Get retrieves a collection schema and its fields by name.
func (s *Service) Get(ctx context.Context, name string) (schema.Collection, []schema.Field, error) {
	col, fields, err := s.engine.DescribeCollection(ctx, name)
	if err != nil {
		return schema.Collection{}, nil, fmt.Errorf("describe collection: %w", err)
	}
	return col, fields, nil
}

// List returns all collection schemas.
func (s *Service) List(ctx context.Context) ([]schema.Collection, error) {
	cols, err := s.engine.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return cols, nil
}

// Drop removes a collection schema.
func (s *Service) Drop(ctx context.Context, name string) error {
	if err := s.engine.DropCollection(ctx, name); err != nil {
		return fmt.Errorf("drop collection: %w", err)
	}
	return nil
}

// Has reports whether a collection exists.
func (s *Service) Has(ctx context.Context, name string) (bool, error) {
	ok, err := s.engine.HasCollection(ctx, name)
	if err != nil {
		return false, fmt.Errorf("has collection: %w", err)
	}
	return ok, nil
}

// classify keeps build failures that belong to the client-facing taxonomy and
// folds everything else (parse failures, marshal failures) into ErrUnexpected.
func classify(err error) error {
	for _, sentinel := range []error{
		domain.ErrMissingField,
		domain.ErrInvalidEnumValue,
		domain.ErrInvalidSchema,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return domain.Unexpected(err)
}
