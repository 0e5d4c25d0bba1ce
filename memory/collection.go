package memory

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

// Embedder turns texts into embedding vectors. Implemented by
// *service.EmbeddingsService.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Match is one search hit: a stored record and its cosine similarity
// to the query, in [-1, 1] with 1 meaning identical direction.
type Match struct {
	Record
	Score float64
}

// Collection is a named set of embedded records with similarity search.
// Texts are embedded on save and queries on search, through the same
// Embedder so the vectors are comparable.
type Collection struct {
	name     string
	store    Store
	embedder Embedder
}

// NewCollection creates a Collection over the given store and embedder.
func NewCollection(name string, store Store, embedder Embedder) *Collection {
	return &Collection{name: name, store: store, embedder: embedder}
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

// SaveText embeds text and persists it as a new record, returning its
// generated ID.
func (c *Collection) SaveText(ctx context.Context, text string, metadata map[string]string) (string, error) {
	ids, err := c.SaveTexts(ctx, []string{text}, metadata)
	if err != nil {
		return "", err
	}
	return ids[0], nil
}

// SaveTexts embeds texts in one batch and persists them, returning the
// generated record IDs in input order. All records share metadata.
func (c *Collection) SaveTexts(ctx context.Context, texts []string, metadata map[string]string) ([]string, error) {
	for _, text := range texts {
		if text == "" {
			return nil, ErrEmptyText
		}
	}

	vectors, err := c.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed texts: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: got %d for %d texts", ErrNoEmbedding, len(vectors), len(texts))
	}

	ids := make([]string, len(texts))
	records := make([]Record, len(texts))
	for i, text := range texts {
		ids[i] = uuid.Must(uuid.NewV7()).String()
		records[i] = Record{
			ID:        ids[i],
			Text:      text,
			Embedding: vectors[i],
			Metadata:  metadata,
		}
	}

	if err := c.store.Save(ctx, records...); err != nil {
		return nil, err
	}
	return ids, nil
}

// Get retrieves a record by ID.
func (c *Collection) Get(ctx context.Context, id string) (Record, error) {
	records, err := c.store.Load(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return records[0], nil
}

// Delete removes records by ID.
func (c *Collection) Delete(ctx context.Context, ids ...string) error {
	return c.store.Delete(ctx, ids...)
}

// Search embeds the query and returns the k most similar records by
// cosine similarity, best first. Fewer than k matches may be returned
// when the collection is small.
func (c *Collection) Search(ctx context.Context, query string, k int) ([]Match, error) {
	if query == "" {
		return nil, ErrEmptyText
	}
	if k <= 0 {
		return nil, nil
	}

	vectors, err := c.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, ErrNoEmbedding
	}
	queryVec := vectors[0]

	ids, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	records, err := c.store.Load(ctx, ids...)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(records))
	for _, rec := range records {
		if len(rec.Embedding) == 0 {
			continue
		}
		matches = append(matches, Match{
			Record: rec,
			Score:  cosineSimilarity(queryVec, rec.Embedding),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

// cosineSimilarity returns 0 for mismatched lengths or zero vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
