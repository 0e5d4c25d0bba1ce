package semantic

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFunction(t *testing.T, root, plugin, name, config, prompt string) {
	t.Helper()
	dir := filepath.Join(root, plugin, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(config), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skprompt.txt"), []byte(prompt), 0o644); err != nil {
		t.Fatalf("write prompt failed: %v", err)
	}
}

func TestLoadFunction(t *testing.T) {
	root := t.TempDir()
	writeFunction(t, root, "Translation", "Translate",
		`{
			"description": "Translates text to a target language.",
			"input_variables": [
				{"name": "input", "description": "Text to translate", "required": true},
				{"name": "target_language", "description": "Target language", "required": true}
			],
			"execution_settings": {"temperature": 0.3, "max_tokens": 100}
		}`,
		"Translate to {{$target_language}}: {{$input}}",
	)

	def, err := LoadFunction(root, "Translation", "Translate")
	if err != nil {
		t.Fatalf("LoadFunction failed: %v", err)
	}

	if def.Plugin != "Translation" || def.Name != "Translate" {
		t.Errorf("got %s.%s, want Translation.Translate", def.Plugin, def.Name)
	}
	if def.Config.Description != "Translates text to a target language." {
		t.Errorf("got description %q", def.Config.Description)
	}

	// Settings must survive loading unmodified.
	settings := def.Config.ExecutionSettings
	if settings == nil {
		t.Fatal("execution settings missing")
	}
	if *settings.MaxTokens != 100 {
		t.Errorf("got max_tokens %d, want 100", *settings.MaxTokens)
	}
	if *settings.Temperature != 0.3 {
		t.Errorf("got temperature %v, want 0.3", *settings.Temperature)
	}
	if settings.TopP != nil {
		t.Error("unset top_p should stay nil")
	}

	if got := def.Variables(); !reflect.DeepEqual(got, []string{"target_language", "input"}) {
		t.Errorf("got variables %v", got)
	}
}

func TestLoadPlugin(t *testing.T) {
	root := t.TempDir()
	writeFunction(t, root, "TextAnalysis", "Summarize",
		`{"description": "Summarizes text.", "execution_settings": {"max_tokens": 150}}`,
		"Summarize in {{$max_words}} words:\n{{$input}}")
	writeFunction(t, root, "TextAnalysis", "ExtractKeywords",
		`{"description": "Extracts keywords."}`,
		"Extract {{$count}} keywords from:\n{{$input}}")

	defs, err := LoadPlugin(root, "TextAnalysis")
	if err != nil {
		t.Fatalf("LoadPlugin failed: %v", err)
	}

	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}
	// Sorted by function name.
	if defs[0].Name != "ExtractKeywords" || defs[1].Name != "Summarize" {
		t.Errorf("got order %s, %s", defs[0].Name, defs[1].Name)
	}
}

func TestLoadPlugin_Empty(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "Empty"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	_, err := LoadPlugin(root, "Empty")
	if !errors.Is(err, ErrNoFunctions) {
		t.Errorf("got %v, want ErrNoFunctions", err)
	}
}

func TestLoadFunction_MissingPrompt(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Broken", "NoPrompt")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	if _, err := LoadFunction(root, "Broken", "NoPrompt"); err == nil {
		t.Fatal("expected error for missing skprompt.txt")
	}
}
