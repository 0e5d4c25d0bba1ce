// Step 6: streaming responses, token by token, with and without
// function calling.
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
	"github.com/stepwise-ai/semkernel/plugins/mathplugin"
	"github.com/stepwise-ai/semkernel/service"
)

func main() {
	cli.InitLogger()

	_, svc, err := cli.Setup()
	if err != nil {
		log.Fatalf("Failed to configure service: %v", err)
	}

	if err := mathplugin.Register(); err != nil {
		log.Fatalf("Failed to register MathPlugin: %v", err)
	}

	k := kernel.New(svc)

	settings := &service.ExecutionSettings{
		Temperature: service.Float(0.7),
		MaxTokens:   service.Int(500),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printDelta := func(delta string) {
		fmt.Print(delta)
	}

	// Prompt-function streaming.
	fmt.Println("Example 1: Streaming a prompt function")
	fmt.Println(strings.Repeat("-", 70))

	fn, err := k.AddFunction("StoryPlugin", "robot_story",
		"Write a short story (3 paragraphs) about a robot learning to paint.", settings)
	if err != nil {
		log.Fatalf("Failed to add function: %v", err)
	}

	result, err := k.InvokeStream(ctx, fn, nil, printDelta)
	if err != nil {
		log.Fatalf("Streaming invocation failed: %v", err)
	}
	fmt.Printf("\n%s\nStreamed %d characters\n\n", strings.Repeat("-", 70), len(result.Text))

	// Chat streaming with history.
	fmt.Println("Example 2: Streaming a chat turn")
	fmt.Println(strings.Repeat("-", 70))

	history := chat.NewHistory()
	history.AddSystemMessage("You are a concise technical assistant.")
	history.AddUserMessage("Explain how HTTP streaming works, briefly.")

	chatResult, err := k.ChatStream(ctx, history, settings, printDelta)
	if err != nil {
		log.Fatalf("Streaming chat failed: %v", err)
	}
	fmt.Printf("\n%s\n\n", strings.Repeat("-", 70))

	// Streaming with function calling: tool rounds run silently, only
	// the final reply streams.
	fmt.Println("Example 3: Streaming with function calling")
	fmt.Println(strings.Repeat("-", 70))

	history.AddUserMessage("What is 127 multiplied by 49? Use the math functions.")

	chatResult, err = k.ChatStream(ctx, history, settings, printDelta, kernel.WithFunctionChoiceAuto())
	if err != nil {
		log.Fatalf("Streaming chat failed: %v", err)
	}
	fmt.Println()
	for _, call := range chatResult.FunctionCalls {
		fmt.Printf("  [function] %s(%s) -> %s\n", call.Name, call.Arguments, call.Result)
	}
}
