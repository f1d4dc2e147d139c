package collection

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/ucasfl/milvus/internal/domain"
	"github.com/ucasfl/milvus/internal/domain/schema"
)

const maxDimension = math.MaxUint16

// vectorParams is the structured configuration recognized inside a vector
// field's parameter string. All other keys are opaque.
type vectorParams struct {
	Dimension  *int64 `json:"dimension"`
	MetricType string `json:"metric_type"`
	IndexType  string `json:"index_type"`
}

// buildSchema joins the three per-field parameter maps by field name into one
// ordered set of field records and derives the top-level collection attributes.
//
// Go map iteration order is random, so field names are processed in sorted
// order to keep the output deterministic. A field name present in fieldTypes
// but absent from either parameter map is a contract violation, reported as
// domain.MissingFieldError. At most one vector field is allowed; its
// parameters supply the collection dimension, metric type and engine type.
func buildSchema(
	name string,
	fieldTypes map[string]schema.DataType,
	fieldIndexParams map[string]map[string]any,
	fieldParams map[string]string,
	extraParams map[string]any,
	defaultIndexFileSize int64,
) (schema.Collection, []schema.Field, error) {
	names := make([]string, 0, len(fieldTypes))
	for n := range fieldTypes {
		names = append(names, n)
	}
	sort.Strings(names)

	var (
		fields      = make([]schema.Field, 0, len(names))
		dimension   uint16
		metricType  int32
		engineType  int32
		vectorField string
	)

	for _, fieldName := range names {
		dt := fieldTypes[fieldName]

		indexParams, ok := fieldIndexParams[fieldName]
		if !ok {
			return schema.Collection{}, nil, &domain.MissingFieldError{Field: fieldName, Map: "field_index_params"}
		}
		params, ok := fieldParams[fieldName]
		if !ok {
			return schema.Collection{}, nil, &domain.MissingFieldError{Field: fieldName, Map: "field_params"}
		}

		indexName := ""
		if v, ok := indexParams["name"].(string); ok {
			indexName = v
		}
		// json.Marshal emits map keys sorted: the canonical serialized form.
		indexParam, err := json.Marshal(indexParams)
		if err != nil {
			return schema.Collection{}, nil, fmt.Errorf("marshal index params for field %q: %w", fieldName, err)
		}

		f, err := schema.NewField(name, fieldName, dt, indexName, string(indexParam), params)
		if err != nil {
			return schema.Collection{}, nil, fmt.Errorf("%w: field %q: %s", domain.ErrInvalidSchema, fieldName, err.Error())
		}
		fields = append(fields, f)

		if !dt.IsVector() {
			continue
		}
		if vectorField != "" {
			return schema.Collection{}, nil, fmt.Errorf(
				"%w: multiple vector fields (%q and %q)", domain.ErrInvalidSchema, vectorField, fieldName)
		}
		vectorField = fieldName

		var vp vectorParams
		if err := json.Unmarshal([]byte(params), &vp); err != nil {
			return schema.Collection{}, nil, fmt.Errorf("parse params of vector field %q: %w", fieldName, err)
		}
		if vp.Dimension != nil {
			d := *vp.Dimension
			if d < 0 || d > maxDimension {
				return schema.Collection{}, nil, fmt.Errorf(
					"%w: dimension %d of field %q out of range [0, %d]",
					domain.ErrInvalidSchema, d, fieldName, maxDimension)
			}
			dimension = uint16(d)
		}
		if vp.MetricType != "" {
			if metricType, err = schema.MetricTypeCode(vp.MetricType); err != nil {
				return schema.Collection{}, nil, err
			}
		}
		if vp.IndexType != "" {
			if engineType, err = schema.EngineTypeCode(vp.IndexType); err != nil {
				return schema.Collection{}, nil, err
			}
		}
	}

	indexFileSize := defaultIndexFileSize
	if raw, ok := extraParams["segment_size"]; ok {
		size, err := asInt64(raw)
		if err != nil {
			return schema.Collection{}, nil, fmt.Errorf("%w: segment_size: %s", domain.ErrInvalidSchema, err.Error())
		}
		indexFileSize = size
	}

	col, err := schema.NewCollection(name, dimension, indexFileSize, metricType, engineType)
	if err != nil {
		return schema.Collection{}, nil, fmt.Errorf("%w: %s", domain.ErrInvalidSchema, err.Error())
	}
	return col, fields, nil
}

// asInt64 accepts the integer encodings produced by JSON decoding.
func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}
