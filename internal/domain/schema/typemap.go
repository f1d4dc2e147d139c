package schema

import "github.com/ucasfl/milvus/internal/domain"

// Metric and engine codes are part of the persisted schema format and must
// not be renumbered. An unmatched string is a contract error for the request,
// never a silent default.

var metricTypes = map[string]int32{
	"L2":             1,
	"IP":             2,
	"HAMMING":        3,
	"JACCARD":        4,
	"TANIMOTO":       5,
	"SUBSTRUCTURE":   6,
	"SUPERSTRUCTURE": 7,
}

var engineTypes = map[string]int32{
	"FLAT":           1,
	"IVF_FLAT":       2,
	"IVF_SQ8":        3,
	"NSG":            4,
	"IVF_SQ8_HYBRID": 5,
	"IVF_PQ":         6,
	"BIN_FLAT":       9,
	"BIN_IVF_FLAT":   10,
	"HNSW":           11,
	"ANNOY":          12,
}

// MetricTypeCode resolves a distance metric name against the fixed table.
func MetricTypeCode(s string) (int32, error) {
	code, ok := metricTypes[s]
	if !ok {
		return 0, &domain.UnknownEnumError{Kind: "metric_type", Value: s}
	}
	return code, nil
}

// EngineTypeCode resolves an index type name against the fixed table.
func EngineTypeCode(s string) (int32, error) {
	code, ok := engineTypes[s]
	if !ok {
		return 0, &domain.UnknownEnumError{Kind: "index_type", Value: s}
	}
	return code, nil
}
