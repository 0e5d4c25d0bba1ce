// Package memory provides the semantic memory layer: embedded text
// records with vector similarity search, backed by pluggable storage.
package memory

import "context"

// Record is one remembered text with its embedding vector. Metadata
// carries caller-defined tags such as source or category.
type Record struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Embedding []float32         `json:"embedding,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Store persists records. Implementations are stateless — they perform
// I/O on each call without caching.
type Store interface {
	// List returns the IDs of all stored records.
	List(ctx context.Context) ([]string, error)
	// Load retrieves records for the specified IDs.
	Load(ctx context.Context, ids ...string) ([]Record, error)
	// Save persists records, creating or overwriting as needed.
	Save(ctx context.Context, records ...Record) error
	// Delete removes records from storage. Missing IDs are ignored.
	Delete(ctx context.Context, ids ...string) error
}
