package schema

import "github.com/ucasfl/milvus/internal/domain"

// DataType is the storage type of a collection field. The numeric codes are
// part of the persisted schema format and must not be renumbered.
type DataType int32

const (
	// DataTypeNone is the zero value, never valid in a field definition.
	DataTypeNone DataType = 0
	// DataTypeBool is a boolean scalar.
	DataTypeBool DataType = 1
	// DataTypeInt8 is an 8-bit integer scalar.
	DataTypeInt8 DataType = 2
	// DataTypeInt16 is a 16-bit integer scalar.
	DataTypeInt16 DataType = 3
	// DataTypeInt32 is a 32-bit integer scalar.
	DataTypeInt32 DataType = 4
	// DataTypeInt64 is a 64-bit integer scalar.
	DataTypeInt64 DataType = 5
	// DataTypeFloat is a 32-bit float scalar.
	DataTypeFloat DataType = 10
	// DataTypeDouble is a 64-bit float scalar.
	DataTypeDouble DataType = 11
	// DataTypeString is a string scalar.
	DataTypeString DataType = 20
	// DataTypeBinaryVector is a binary vector field.
	DataTypeBinaryVector DataType = 100
	// DataTypeFloatVector is a float vector field.
	DataTypeFloatVector DataType = 101
)

var dataTypeNames = map[string]DataType{
	"BOOL":          DataTypeBool,
	"INT8":          DataTypeInt8,
	"INT16":         DataTypeInt16,
	"INT32":         DataTypeInt32,
	"INT64":         DataTypeInt64,
	"FLOAT":         DataTypeFloat,
	"DOUBLE":        DataTypeDouble,
	"STRING":        DataTypeString,
	"BINARY_VECTOR": DataTypeBinaryVector,
	"FLOAT_VECTOR":  DataTypeFloatVector,
}

var dataTypeStrings = func() map[DataType]string {
	m := make(map[DataType]string, len(dataTypeNames))
	for name, t := range dataTypeNames {
		m[t] = name
	}
	return m
}()

// ParseDataType resolves a field type name against the fixed table.
func ParseDataType(s string) (DataType, error) {
	t, ok := dataTypeNames[s]
	if !ok {
		return DataTypeNone, &domain.UnknownEnumError{Kind: "field_type", Value: s}
	}
	return t, nil
}

// IsValid reports whether t is one of the defined data types.
func (t DataType) IsValid() bool {
	_, ok := dataTypeStrings[t]
	return ok
}

// IsVector reports whether t is a vector field type.
func (t DataType) IsVector() bool {
	return t == DataTypeFloatVector || t == DataTypeBinaryVector
}

func (t DataType) String() string {
	if s, ok := dataTypeStrings[t]; ok {
		return s
	}
	return "NONE"
}
