package memory

import "errors"

// Sentinel errors for store and collection operations.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrLoadFailed     = errors.New("load failed")
	ErrSaveFailed     = errors.New("save failed")
	ErrEmptyText      = errors.New("record text is empty")
	ErrNoEmbedding    = errors.New("embedder returned no vectors")
)
