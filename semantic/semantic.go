// Package semantic loads prompt-defined functions from disk. Each
// function is a folder holding a prompt template (skprompt.txt) and its
// configuration (config.json):
//
//	<root>/<Plugin>/<Function>/config.json
//	<root>/<Plugin>/<Function>/skprompt.txt
//
// Definitions are read once and treated as immutable input.
package semantic

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/stepwise-ai/semkernel/service"
	"github.com/stepwise-ai/semkernel/template"
)

const (
	configFile = "config.json"
	promptFile = "skprompt.txt"
)

// ErrNoFunctions is returned when a plugin folder contains no function
// directories.
var ErrNoFunctions = errors.New("plugin folder contains no functions")

// InputVariable documents one template variable of a semantic function.
type InputVariable struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Config is the parsed config.json of a semantic function.
type Config struct {
	Description       string                     `json:"description,omitempty"`
	InputVariables    []InputVariable            `json:"input_variables,omitempty"`
	ExecutionSettings *service.ExecutionSettings `json:"execution_settings,omitempty"`
}

// Definition is a loaded semantic function: prompt template plus config.
type Definition struct {
	Plugin string
	Name   string
	Config Config
	Prompt string
}

// Variables returns the placeholder names used by the prompt template.
func (d *Definition) Variables() []string {
	return template.Variables(d.Prompt)
}

// LoadFunction reads a single function folder.
func LoadFunction(dir, plugin, name string) (*Definition, error) {
	fnDir := filepath.Join(dir, plugin, name)

	data, err := os.ReadFile(filepath.Join(fnDir, configFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s for %s.%s: %w", configFile, plugin, name, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s for %s.%s: %w", configFile, plugin, name, err)
	}

	prompt, err := os.ReadFile(filepath.Join(fnDir, promptFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s for %s.%s: %w", promptFile, plugin, name, err)
	}

	return &Definition{
		Plugin: plugin,
		Name:   name,
		Config: cfg,
		Prompt: string(prompt),
	}, nil
}

// LoadPlugin reads every function folder under <root>/<plugin>,
// returning definitions sorted by function name.
func LoadPlugin(root, plugin string) ([]*Definition, error) {
	pluginDir := filepath.Join(root, plugin)

	entries, err := os.ReadDir(pluginDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read plugin folder %s: %w", pluginDir, err)
	}

	var defs []*Definition
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		def, err := LoadFunction(root, plugin, entry.Name())
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFunctions, pluginDir)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs, nil
}
