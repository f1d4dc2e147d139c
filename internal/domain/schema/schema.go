// Package schema holds the collection schema model: the top-level collection
// descriptor, per-field descriptors, and the fixed enumeration tables that
// map client-supplied type strings to internal codes.
package schema

import (
	"fmt"
	"time"
)

// Collection is the top-level descriptor of a collection (immutable value object).
// Dimension, metric type and engine type are meaningful only when the collection
// has a vector field; otherwise they stay at their zero values.
type Collection struct {
	id            string
	dimension     uint16
	indexFileSize int64
	metricType    int32
	engineType    int32
	createdAt     int64
}

// NewCollection validates and creates a Collection.
func NewCollection(id string, dimension uint16, indexFileSize int64, metricType, engineType int32) (Collection, error) {
	if id == "" {
		return Collection{}, fmt.Errorf("collection id is required")
	}
	if indexFileSize <= 0 {
		return Collection{}, fmt.Errorf("index file size must be positive, got %d", indexFileSize)
	}
	return Collection{
		id:            id,
		dimension:     dimension,
		indexFileSize: indexFileSize,
		metricType:    metricType,
		engineType:    engineType,
		createdAt:     time.Now().UnixMilli(),
	}, nil
}

// ReconstructCollection creates a Collection without validation (storage hydration).
func ReconstructCollection(
	id string, dimension uint16, indexFileSize int64,
	metricType, engineType int32, createdAt int64,
) Collection {
	return Collection{
		id:            id,
		dimension:     dimension,
		indexFileSize: indexFileSize,
		metricType:    metricType,
		engineType:    engineType,
		createdAt:     createdAt,
	}
}

// ID returns the collection name, the unique key for the collection.
func (c Collection) ID() string { return c.id }

// Dimension returns the vector dimension (0 if no vector field).
func (c Collection) Dimension() uint16 { return c.dimension }

// IndexFileSize returns the segment size threshold in megabytes.
func (c Collection) IndexFileSize() int64 { return c.indexFileSize }

// MetricType returns the distance metric code (0 if no vector field).
func (c Collection) MetricType() int32 { return c.metricType }

// EngineType returns the index engine code (0 if no vector field).
func (c Collection) EngineType() int32 { return c.engineType }

// CreatedAt returns the creation timestamp (unix millis).
func (c Collection) CreatedAt() int64 { return c.createdAt }

// Field describes a single collection field (immutable value object).
// Index and field parameters are opaque serialized configuration, preserved
// verbatim for the storage engine.
type Field struct {
	collectionID string
	name         string
	dataType     DataType
	indexName    string
	indexParam   string
	fieldParams  string
}

// NewField validates and creates a Field. collectionID is a back-reference to
// the owning collection, not an ownership link.
func NewField(collectionID, name string, dt DataType, indexName, indexParam, fieldParams string) (Field, error) {
	if name == "" {
		return Field{}, fmt.Errorf("field name is required")
	}
	if len(name) > 255 {
		return Field{}, fmt.Errorf("field name %q too long (max 255)", name)
	}
	if !dt.IsValid() {
		return Field{}, fmt.Errorf("invalid data type %d for field %q", int32(dt), name)
	}
	return Field{
		collectionID: collectionID,
		name:         name,
		dataType:     dt,
		indexName:    indexName,
		indexParam:   indexParam,
		fieldParams:  fieldParams,
	}, nil
}

// ReconstructField creates a Field without validation (storage hydration).
func ReconstructField(collectionID, name string, dt DataType, indexName, indexParam, fieldParams string) Field {
	return Field{
		collectionID: collectionID,
		name:         name,
		dataType:     dt,
		indexName:    indexName,
		indexParam:   indexParam,
		fieldParams:  fieldParams,
	}
}

// CollectionID returns the owning collection's id.
func (f Field) CollectionID() string { return f.collectionID }

// Name returns the field name, unique within the collection.
func (f Field) Name() string { return f.name }

// DataType returns the field's data type.
func (f Field) DataType() DataType { return f.dataType }

// IndexName returns the optional index name ("" when unset).
func (f Field) IndexName() string { return f.indexName }

// IndexParam returns the serialized index configuration.
func (f Field) IndexParam() string { return f.indexParam }

// FieldParams returns the raw field parameter string.
func (f Field) FieldParams() string { return f.fieldParams }
