// Package functions implements the native-function registry: plain Go
// functions exposed to the model through metadata so it can invoke them
// during the function-calling loop.
//
// Functions register under a qualified "Plugin-function" name. The
// separator is a hyphen because the provider restricts function names
// to [a-zA-Z0-9_-]. The metadata (description, JSON Schema parameters)
// is stored verbatim and returned unchanged by Describe and List.
package functions

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/stepwise-ai/semkernel/core/protocol"
)

// Handler is the signature for native function implementations.
// Handlers receive the request context and JSON-encoded arguments from
// the model.
type Handler func(ctx context.Context, args json.RawMessage) (Result, error)

// Result is the function output fed back to the model on the next turn.
// IsError signals that the invocation failed in a way the model should
// see (bad arguments, domain errors) rather than aborting the loop.
type Result struct {
	Content string
	IsError bool
}

type entry struct {
	tool    protocol.Tool
	handler Handler
}

type registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var global = &registry{
	entries: make(map[string]entry),
}

// Qualify joins a plugin and function name into the registry key. The
// result is sent as the provider's function name, which only allows
// letters, digits, underscores, and hyphens.
func Qualify(plugin, name string) string {
	if plugin == "" {
		return name
	}
	return plugin + "-" + name
}

// Register adds a function to the registry under its metadata name.
// Returns ErrAlreadyExists for duplicate names; use Replace to update.
func Register(tool protocol.Tool, handler Handler) error {
	if tool.Name == "" {
		return ErrEmptyName
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	if _, exists := global.entries[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, tool.Name)
	}

	global.entries[tool.Name] = entry{tool: tool, handler: handler}
	return nil
}

// Replace updates an existing function's metadata and handler.
func Replace(tool protocol.Tool, handler Handler) error {
	if tool.Name == "" {
		return ErrEmptyName
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	if _, exists := global.entries[tool.Name]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, tool.Name)
	}

	global.entries[tool.Name] = entry{tool: tool, handler: handler}
	return nil
}

// Unregister removes a function from the registry. Missing names are
// ignored.
func Unregister(name string) {
	global.mu.Lock()
	defer global.mu.Unlock()
	delete(global.entries, name)
}

// Describe returns the registered metadata for a function name.
func Describe(name string) (protocol.Tool, bool) {
	global.mu.RLock()
	defer global.mu.RUnlock()

	e, exists := global.entries[name]
	if !exists {
		return protocol.Tool{}, false
	}
	return e.tool, true
}

// List returns the metadata of all registered functions, sorted by name.
func List() []protocol.Tool {
	global.mu.RLock()
	defer global.mu.RUnlock()

	tools := make([]protocol.Tool, 0, len(global.entries))
	for _, e := range global.entries {
		tools = append(tools, e.tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})
	return tools
}

// Execute dispatches a call to the registered handler by name.
// Handler errors are wrapped with the function name for context.
func Execute(ctx context.Context, name string, args json.RawMessage) (Result, error) {
	global.mu.RLock()
	e, exists := global.entries[name]
	global.mu.RUnlock()

	if !exists {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	result, err := e.handler(ctx, args)
	if err != nil {
		return Result{}, fmt.Errorf("function %s execution failed: %w", name, err)
	}

	return result, nil
}
