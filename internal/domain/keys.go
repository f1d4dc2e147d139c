package domain

// KeyPrefix namespaces all storage keys written by this service.
const KeyPrefix = "milvus:"
