// Step 7: semantic memory and retrieval augmented generation. Facts
// and documents are embedded into a collection, searched by meaning,
// and the retrieved passages ground the model's answers.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/stepwise-ai/semkernel/cmd/internal/cli"
	"github.com/stepwise-ai/semkernel/core/config"
	"github.com/stepwise-ai/semkernel/kernel"
	"github.com/stepwise-ai/semkernel/memory"
	"github.com/stepwise-ai/semkernel/service"
)

var userFacts = []string{
	"My name is Alice and I'm a software engineer.",
	"I love Go programming and AI.",
	"I have a dog named Max who is 3 years old.",
	"My favorite food is sushi.",
	"I live in San Francisco and work remotely.",
	"I enjoy hiking on weekends.",
	"I'm learning to play the guitar.",
}

var documents = []string{
	"Artificial Intelligence (AI) is the simulation of human intelligence by machines. It includes learning, reasoning, and self-correction.",
	"Machine Learning is a subset of AI that enables systems to learn and improve from experience without being explicitly programmed.",
	"Deep Learning is a subset of machine learning based on artificial neural networks with multiple layers.",
	"Natural Language Processing (NLP) is a branch of AI that helps computers understand, interpret and manipulate human language.",
	"Computer Vision is a field of AI that trains computers to interpret and understand the visual world using digital images and videos.",
	"Reinforcement Learning is a type of machine learning where an agent learns to make decisions by performing actions and receiving rewards.",
}

func main() {
	cli.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if cfg.EmbeddingDeployment == "" {
		log.Fatalf("Set %s to run the memory examples", config.EnvEmbeddingDeployment)
	}

	opts, err := cli.Options(cfg)
	if err != nil {
		log.Fatalf("Failed to configure credentials: %v", err)
	}

	svc := service.NewChatService(cfg, opts...)
	embedder := service.NewEmbeddingsService(cfg, opts...)
	k := kernel.New(svc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Memory storage and semantic search.
	fmt.Println("Example 1: Memory Storage & Retrieval")
	fmt.Println(strings.Repeat("-", 70))

	memories := memory.NewCollection("memories", memory.NewMemoryStore(), embedder)
	if _, err := memories.SaveTexts(ctx, userFacts, map[string]string{"type": "user_fact"}); err != nil {
		log.Fatalf("Failed to store memories: %v", err)
	}
	fmt.Printf("Stored %d memories\n\n", len(userFacts))

	queries := []string{
		"What is the user's profession?",
		"Does the user have any pets?",
		"What are the user's hobbies?",
	}
	for _, query := range queries {
		matches, err := memories.Search(ctx, query, 2)
		if err != nil {
			log.Fatalf("Search failed: %v", err)
		}
		fmt.Printf("Query: %s\n", query)
		for i, m := range matches {
			fmt.Printf("  %d. %s (score %.3f)\n", i+1, m.Text, m.Score)
		}
		fmt.Println()
	}

	// Document Q&A with retrieval augmented generation.
	fmt.Println("Example 2: Document Q&A with RAG")
	fmt.Println(strings.Repeat("-", 70))

	docs := memory.NewCollection("documents", memory.NewMemoryStore(), embedder)
	if _, err := docs.SaveTexts(ctx, documents, map[string]string{"type": "document"}); err != nil {
		log.Fatalf("Failed to store documents: %v", err)
	}

	retriever := memory.NewRetriever(docs, 3)
	answer, err := k.AddFunction("RAGPlugin", "answer", "{{$prompt}}", &service.ExecutionSettings{
		Temperature: service.Float(0.2),
		MaxTokens:   service.Int(300),
	})
	if err != nil {
		log.Fatalf("Failed to add function: %v", err)
	}

	questions := []string{
		"What is the difference between machine learning and deep learning?",
		"How do computers understand human language?",
	}
	for _, question := range questions {
		prompt, matches, err := retriever.Retrieve(ctx, question)
		if err != nil {
			log.Fatalf("Retrieval failed: %v", err)
		}

		result, err := k.Invoke(ctx, answer, map[string]string{"prompt": prompt})
		if err != nil {
			log.Fatalf("Invocation failed: %v", err)
		}

		fmt.Printf("Question: %s\n", question)
		fmt.Printf("Retrieved %d passages\n", len(matches))
		fmt.Printf("Answer: %s\n\n", result)
	}
}
