// Step 2: prompt templates with variables and execution settings.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/stepwise-ai/semkernel/cmd/internal/cli"
	"github.com/stepwise-ai/semkernel/kernel"
	"github.com/stepwise-ai/semkernel/service"
)

const simpleTemplate = `You are a helpful assistant.

Question: {{$question}}

Provide a clear answer.`

const multiVarTemplate = `You are a {{$role}}.

Topic: {{$topic}}
Audience: {{$audience}}

Explain the topic appropriately for the audience.`

const creativeTemplate = `Write a creative {{$style}} about {{$subject}}.
Keep it to 2-3 sentences.`

func main() {
	cli.InitLogger()

	_, svc, err := cli.Setup()
	if err != nil {
		log.Fatalf("Failed to configure service: %v", err)
	}

	k := kernel.New(svc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simple, err := k.AddFunction("QAPlugin", "simple_qa", simpleTemplate, nil)
	if err != nil {
		log.Fatalf("Failed to add function: %v", err)
	}
	result, err := k.Invoke(ctx, simple, map[string]string{
		"question": "What is machine learning?",
	})
	if err != nil {
		log.Fatalf("Invocation failed: %v", err)
	}
	fmt.Printf("Simple Template:\n%s\n\n", result)

	multiVar, err := k.AddFunction("ExplainPlugin", "explain", multiVarTemplate, nil)
	if err != nil {
		log.Fatalf("Failed to add function: %v", err)
	}
	result, err = k.Invoke(ctx, multiVar, map[string]string{
		"role":     "teacher",
		"topic":    "neural networks",
		"audience": "high school students",
	})
	if err != nil {
		log.Fatalf("Invocation failed: %v", err)
	}
	fmt.Printf("Multi-Variable Template:\n%s\n\n", result)

	creative, err := k.AddFunction("WriterPlugin", "creative_writer", creativeTemplate, &service.ExecutionSettings{
		Temperature: service.Float(0.7),
		MaxTokens:   service.Int(150),
		TopP:        service.Float(0.9),
	})
	if err != nil {
		log.Fatalf("Failed to add function: %v", err)
	}
	result, err = k.Invoke(ctx, creative, map[string]string{
		"style":   "haiku",
		"subject": "the ocean",
	})
	if err != nil {
		log.Fatalf("Invocation failed: %v", err)
	}
	fmt.Printf("Creative Template (temperature 0.7):\n%s\n", result)
}
