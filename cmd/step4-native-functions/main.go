// Step 4: native-function plugins with automatic function calling.
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
	"github.com/stepwise-ai/semkernel/plugins/databaseplugin"
	"github.com/stepwise-ai/semkernel/plugins/mathplugin"
	"github.com/stepwise-ai/semkernel/plugins/weatherplugin"
	"github.com/stepwise-ai/semkernel/service"
)

func registerPlugins() {
	if err := mathplugin.Register(); err != nil {
		log.Fatalf("Failed to register MathPlugin: %v", err)
	}
	if err := weatherplugin.Register(); err != nil {
		log.Fatalf("Failed to register WeatherPlugin: %v", err)
	}
	if err := databaseplugin.Register(); err != nil {
		log.Fatalf("Failed to register DatabasePlugin: %v", err)
	}
}

func main() {
	cli.InitLogger()

	_, svc, err := cli.Setup()
	if err != nil {
		log.Fatalf("Failed to configure service: %v", err)
	}

	registerPlugins()
	k := kernel.New(svc)

	settings := &service.ExecutionSettings{
		Temperature: service.Float(0.7),
		MaxTokens:   service.Int(1000),
	}

	history := chat.NewHistory()
	history.AddSystemMessage(
		"You are a helpful AI assistant with access to math, weather, and database functions. " +
			"Use these functions when needed to answer user questions accurately. " +
			"Always explain what you're doing and show your work.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	questions := []string{
		"I need to calculate: (15 + 25) * 3, then find the square root of the result.",
		"What's the weather like in London? Should I bring an umbrella?",
		"Find user Alice and show me her orders.",
		"Search for electronics products, calculate the total value of laptops in stock, " +
			"and tell me what percentage of total inventory value that represents.",
	}

	for _, question := range questions {
		history.AddUserMessage(question)

		result, err := k.Chat(ctx, history, settings, kernel.WithFunctionChoiceAuto())
		if err != nil {
			log.Fatalf("Chat failed: %v", err)
		}

		fmt.Printf("User: %s\n", question)
		fmt.Printf("Assistant: %s\n", result.Message)

		if len(result.FunctionCalls) > 0 {
			fmt.Println("Function calls:")
			for _, call := range result.FunctionCalls {
				fmt.Printf("  %s(%s)\n", call.Name, call.Arguments)
				line := call.Result
				if idx := strings.IndexByte(line, '\n'); idx >= 0 {
					line = line[:idx] + "..."
				}
				if call.IsError {
					fmt.Printf("    error: %s\n", line)
				} else {
					fmt.Printf("    -> %s\n", line)
				}
			}
		}
		fmt.Println()
	}
}
