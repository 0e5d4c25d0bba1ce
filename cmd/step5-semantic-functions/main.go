// Step 5: semantic functions loaded from config.json + skprompt.txt
// folders, including chained pipelines.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/stepwise-ai/semkernel/cmd/internal/cli"
	"github.com/stepwise-ai/semkernel/kernel"
)

const sampleText = `Artificial Intelligence is revolutionizing the way we work and live.
Machine learning algorithms can now process vast amounts of data,
identify patterns, and make predictions with remarkable accuracy.
From healthcare to finance, AI is transforming industries and creating
new opportunities. However, it also raises important questions about
privacy, ethics, and the future of work. As we continue to develop
these powerful technologies, we must ensure they benefit all of humanity.`

func main() {
	cli.InitLogger()

	_, svc, err := cli.Setup()
	if err != nil {
		log.Fatalf("Failed to configure service: %v", err)
	}

	k := kernel.New(svc)

	root := filepath.Join("cmd", "step5-semantic-functions", "semantic_functions")
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	for _, plugin := range []string{"TextAnalysis", "Translation", "Creative"} {
		fns, err := k.AddSemanticPlugin(root, plugin)
		if err != nil {
			log.Fatalf("Failed to load plugin %s: %v", plugin, err)
		}
		fmt.Printf("Loaded plugin %s with %d function(s)\n", plugin, len(fns))
	}
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	invoke := func(plugin, name string, args map[string]string) string {
		fn, ok := k.Function(plugin, name)
		if !ok {
			log.Fatalf("Function %s.%s not loaded", plugin, name)
		}
		result, err := k.Invoke(ctx, fn, args)
		if err != nil {
			log.Fatalf("Invoke %s.%s failed: %v", plugin, name, err)
		}
		return result.Text
	}

	summary := invoke("TextAnalysis", "Summarize", map[string]string{
		"input": sampleText, "max_words": "30",
	})
	fmt.Printf("Summary (30 words max):\n%s\n\n", summary)

	sentiment := invoke("TextAnalysis", "SentimentAnalysis", map[string]string{
		"input": sampleText,
	})
	fmt.Printf("Sentiment Analysis:\n%s\n\n", sentiment)

	keywords := invoke("TextAnalysis", "ExtractKeywords", map[string]string{
		"input": sampleText, "count": "7",
	})
	fmt.Printf("Extracted Keywords:\n%s\n\n", keywords)

	english := "Hello! How are you today? I hope you're having a wonderful day."
	french := invoke("Translation", "Translate", map[string]string{
		"input": english, "target_language": "French",
	})
	fmt.Printf("English: %s\nFrench: %s\n\n", english, french)

	poem := invoke("Creative", "WritePoem", map[string]string{
		"input": "artificial intelligence", "style": "haiku", "length": "3",
	})
	fmt.Printf("Haiku about AI:\n%s\n\n", poem)

	// Pipeline: extract keywords, generate ideas from them, translate.
	fmt.Println("Pipeline: Extract Keywords -> Generate Ideas -> Translate to Spanish")
	pipelineKeywords := invoke("TextAnalysis", "ExtractKeywords", map[string]string{
		"input": sampleText, "count": "3",
	})
	fmt.Printf("Step 1 - Keywords: %s\n", pipelineKeywords)

	ideas := invoke("Creative", "GenerateIdeas", map[string]string{
		"input": pipelineKeywords, "count": "2",
	})
	fmt.Printf("Step 2 - Ideas:\n%s\n", ideas)

	spanish := invoke("Translation", "Translate", map[string]string{
		"input": ideas, "target_language": "Spanish",
	})
	fmt.Printf("Step 3 - Spanish:\n%s\n", spanish)
}
