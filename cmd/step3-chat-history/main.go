// Step 3: multi-turn conversation with accumulated chat history.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/stepwise-ai/semkernel/chat"
	"github.com/stepwise-ai/semkernel/cmd/internal/cli"
	"github.com/stepwise-ai/semkernel/kernel"
	"github.com/stepwise-ai/semkernel/service"
)

func main() {
	cli.InitLogger()

	_, svc, err := cli.Setup()
	if err != nil {
		log.Fatalf("Failed to configure service: %v", err)
	}

	k := kernel.New(svc)

	settings := &service.ExecutionSettings{
		Temperature: service.Float(0.7),
		MaxTokens:   service.Int(500),
	}

	history := chat.NewHistory()
	history.AddSystemMessage(
		"You are a helpful AI assistant who explains technical concepts clearly and concisely.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	questions := []string{
		"What is a REST API?",
		"Can you give me a simple example?",
		"What HTTP methods are commonly used?",
	}

	// Each turn resends the full history, so follow-up questions
	// resolve against earlier answers.
	for _, question := range questions {
		history.AddUserMessage(question)

		result, err := k.Chat(ctx, history, settings)
		if err != nil {
			log.Fatalf("Chat failed: %v", err)
		}

		fmt.Printf("User: %s\n", question)
		fmt.Printf("Assistant: %s\n\n", result.Message)
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("Full Conversation History:")
	fmt.Println(strings.Repeat("=", 70))
	for _, msg := range history.Messages() {
		fmt.Printf("[%s] %s\n", msg.Role, msg.Content)
	}
	fmt.Printf("\nMessages in history: %d\n", history.Len())
}
