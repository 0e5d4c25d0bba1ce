// Step 1: kernel bootstrap and a single prompt-function invocation.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/stepwise-ai/semkernel/cmd/internal/cli"
	"github.com/stepwise-ai/semkernel/kernel"
)

func main() {
	cli.InitLogger()

	_, svc, err := cli.Setup()
	if err != nil {
		log.Fatalf("Failed to configure service: %v", err)
	}

	k := kernel.New(svc)

	fn, err := k.AddFunction("ChatPlugin", "chat", "What is AI/ML? Answer in 2 to 4 sentences.", nil)
	if err != nil {
		log.Fatalf("Failed to add function: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := k.Invoke(ctx, fn, nil)
	if err != nil {
		log.Fatalf("Invocation failed: %v", err)
	}

	fmt.Printf("Response: %s\n", result)
}
