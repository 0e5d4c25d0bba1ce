package memory

import (
	"context"
	"fmt"
	"strings"
)

// BuildPrompt composes a grounded prompt: the retrieved passages as
// numbered context followed by the question, instructing the model to
// answer only from the context.
func BuildPrompt(question string, matches []Match) string {
	var b strings.Builder

	b.WriteString("Answer the question using only the context below. ")
	b.WriteString("If the context does not contain the answer, say you don't know.\n\n")
	b.WriteString("Context:\n")
	for i, m := range matches {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m.Text)
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	return b.String()
}

// Retriever answers questions over a collection by retrieving the top-k
// passages and handing the grounded prompt to a completion function.
type Retriever struct {
	collection *Collection
	topK       int
}

// NewRetriever creates a Retriever over the collection. topK values
// below 1 default to 3.
func NewRetriever(collection *Collection, topK int) *Retriever {
	if topK < 1 {
		topK = 3
	}
	return &Retriever{collection: collection, topK: topK}
}

// Retrieve returns the grounded prompt for question along with the
// matches it was built from.
func (r *Retriever) Retrieve(ctx context.Context, question string) (string, []Match, error) {
	matches, err := r.collection.Search(ctx, question, r.topK)
	if err != nil {
		return "", nil, err
	}
	return BuildPrompt(question, matches), matches, nil
}
