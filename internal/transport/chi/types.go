package chi

import "github.com/ucasfl/milvus/internal/domain/schema"

// Error codes carried in error responses.
const (
	codeBadRequest            = "bad_request"
	codeInvalidCollectionName = "invalid_collection_name"
	codeMissingField          = "missing_field"
	codeInvalidEnumValue      = "invalid_enum_value"
	codeValidationFailed      = "validation_failed"
	codeCollectionNotFound    = "collection_not_found"
	codeAlreadyExists         = "collection_already_exists"
	codeUnauthorized          = "unauthorized"
	codeInternalError         = "internal_error"
)

// errorResponse is the wire form of a failed request.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// createHybridCollectionRequest carries the three per-field parameter maps
// and the extra collection parameters.
type createHybridCollectionRequest struct {
	CollectionName   string                    `json:"collection_name"`
	FieldTypes       map[string]string         `json:"field_types"`
	FieldIndexParams map[string]map[string]any `json:"field_index_params"`
	FieldParams      map[string]string         `json:"field_params"`
	ExtraParams      map[string]any            `json:"extra_params"`
}

// fieldResponse is the wire form of a field schema.
type fieldResponse struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	IndexName   string `json:"index_name,omitempty"`
	IndexParam  string `json:"index_param,omitempty"`
	FieldParams string `json:"field_params,omitempty"`
}

// collectionResponse is the wire form of a collection schema.
type collectionResponse struct {
	Name          string          `json:"name"`
	Dimension     uint16          `json:"dimension"`
	IndexFileSize int64           `json:"index_file_size"`
	MetricType    int32           `json:"metric_type"`
	EngineType    int32           `json:"engine_type"`
	CreatedAt     int64           `json:"created_at"`
	Fields        []fieldResponse `json:"fields,omitempty"`
}

// collectionListResponse wraps the collection listing.
type collectionListResponse struct {
	Collections []collectionResponse `json:"collections"`
	Count       int                  `json:"count"`
}

// hasCollectionResponse reports a collection existence probe.
type hasCollectionResponse struct {
	Exists bool `json:"exists"`
}

// healthResponse is the wire form of a health report.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func collectionToResponse(col schema.Collection, fields []schema.Field) collectionResponse {
	resp := collectionResponse{
		Name:          col.ID(),
		Dimension:     col.Dimension(),
		IndexFileSize: col.IndexFileSize(),
		MetricType:    col.MetricType(),
		EngineType:    col.EngineType(),
		CreatedAt:     col.CreatedAt(),
	}
	for _, f := range fields {
		resp.Fields = append(resp.Fields, fieldResponse{
			Name:        f.Name(),
			Type:        f.DataType().String(),
			IndexName:   f.IndexName(),
			IndexParam:  f.IndexParam(),
			FieldParams: f.FieldParams(),
		})
	}
	return resp
}
