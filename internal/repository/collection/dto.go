package collection

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ucasfl/milvus/internal/domain/schema"
)

// fieldRow is the JSON-serializable representation of a field for HSET.
type fieldRow struct {
	Name        string `json:"name"`
	Type        int32  `json:"type"`
	IndexName   string `json:"index_name,omitempty"`
	IndexParam  string `json:"index_param,omitempty"`
	FieldParams string `json:"field_params,omitempty"`
}

// collectionToHash converts a collection schema and its fields to a map for HSET.
func collectionToHash(col schema.Collection, fields []schema.Field) (map[string]string, error) {
	rows := make([]fieldRow, len(fields))
	for i, f := range fields {
		rows[i] = fieldRow{
			Name:        f.Name(),
			Type:        int32(f.DataType()),
			IndexName:   f.IndexName(),
			IndexParam:  f.IndexParam(),
			FieldParams: f.FieldParams(),
		}
	}
	fieldsJSON, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}
	return map[string]string{
		"id":              col.ID(),
		"dimension":       strconv.Itoa(int(col.Dimension())),
		"index_file_size": strconv.FormatInt(col.IndexFileSize(), 10),
		"metric_type":     strconv.Itoa(int(col.MetricType())),
		"engine_type":     strconv.Itoa(int(col.EngineType())),
		"created_at":      strconv.FormatInt(col.CreatedAt(), 10),
		"fields_json":     string(fieldsJSON),
	}, nil
}

// collectionFromHash hydrates a collection schema from an HGETALL result map.
func collectionFromHash(m map[string]string) (schema.Collection, []schema.Field, error) {
	id := m["id"]

	dimension, err := strconv.ParseUint(m["dimension"], 10, 16)
	if err != nil {
		return schema.Collection{}, nil, fmt.Errorf("invalid dimension: %w", err)
	}
	indexFileSize, err := strconv.ParseInt(m["index_file_size"], 10, 64)
	if err != nil {
		return schema.Collection{}, nil, fmt.Errorf("invalid index_file_size: %w", err)
	}
	metricType, err := parseInt32(m["metric_type"])
	if err != nil {
		return schema.Collection{}, nil, fmt.Errorf("invalid metric_type: %w", err)
	}
	engineType, err := parseInt32(m["engine_type"])
	if err != nil {
		return schema.Collection{}, nil, fmt.Errorf("invalid engine_type: %w", err)
	}
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return schema.Collection{}, nil, fmt.Errorf("invalid created_at: %w", err)
	}

	var rows []fieldRow
	if fieldsJSON := m["fields_json"]; fieldsJSON != "" {
		if err := json.Unmarshal([]byte(fieldsJSON), &rows); err != nil {
			return schema.Collection{}, nil, fmt.Errorf("unmarshal fields: %w", err)
		}
	}

	fields := make([]schema.Field, len(rows))
	for i, row := range rows {
		fields[i] = schema.ReconstructField(
			id, row.Name, schema.DataType(row.Type),
			row.IndexName, row.IndexParam, row.FieldParams,
		)
	}

	col := schema.ReconstructCollection(
		id, uint16(dimension), indexFileSize, metricType, engineType, createdAt,
	)
	return col, fields, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
