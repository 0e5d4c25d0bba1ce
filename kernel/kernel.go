// Package kernel binds one AI service to registered functions and runs
// the invocation entry points: prompt-function invocation, multi-turn
// chat, the auto function-calling loop, and their streaming variants.
//
//	svc := service.NewChatService(cfg)
//	k := kernel.New(svc)
//	fn, _ := k.AddFunction("ChatPlugin", "chat", "What is AI/ML?", nil)
//	result, _ := k.Invoke(ctx, fn, nil)
package kernel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/stepwise-ai/semkernel/core/protocol"
	"github.com/stepwise-ai/semkernel/core/response"
	"github.com/stepwise-ai/semkernel/functions"
	"github.com/stepwise-ai/semkernel/observability"
	"github.com/stepwise-ai/semkernel/semantic"
	"github.com/stepwise-ai/semkernel/service"
	"github.com/stepwise-ai/semkernel/template"
)

const defaultMaxIterations = 10

// ChatService abstracts the AI service for testability. Implemented by
// *service.ChatService.
type ChatService interface {
	Complete(ctx context.Context, messages []protocol.Message, settings *service.ExecutionSettings) (*response.ChatResponse, error)
	CompleteTools(ctx context.Context, messages []protocol.Message, tools []protocol.Tool, settings *service.ExecutionSettings) (*response.ChatResponse, error)
	Stream(ctx context.Context, messages []protocol.Message, settings *service.ExecutionSettings) (service.Stream, error)
	StreamTools(ctx context.Context, messages []protocol.Message, tools []protocol.Tool, settings *service.ExecutionSettings) (service.Stream, error)
}

// FunctionExecutor abstracts native-function listing and execution.
// The default implementation delegates to the global functions registry.
type FunctionExecutor interface {
	List() []protocol.Tool
	Execute(ctx context.Context, name string, args json.RawMessage) (functions.Result, error)
}

type globalFunctionExecutor struct{}

func (globalFunctionExecutor) List() []protocol.Tool {
	return functions.List()
}

func (globalFunctionExecutor) Execute(ctx context.Context, name string, args json.RawMessage) (functions.Result, error) {
	return functions.Execute(ctx, name, args)
}

// Function is a prompt-defined callable held by the kernel: a template
// plus optional execution settings. Created by AddFunction or loaded
// from a semantic plugin folder.
type Function struct {
	Plugin      string
	Name        string
	Description string
	Prompt      string
	Settings    *service.ExecutionSettings
}

// QualifiedName returns the hyphenated Plugin-Name registry form.
func (f *Function) QualifiedName() string {
	return functions.Qualify(f.Plugin, f.Name)
}

// Option configures a Kernel at construction.
type Option func(*Kernel)

// WithObserver overrides the default SlogObserver.
func WithObserver(o observability.Observer) Option {
	return func(k *Kernel) { k.observer = o }
}

// WithMaxIterations bounds the auto function-calling loop.
func WithMaxIterations(n int) Option {
	return func(k *Kernel) { k.maxIterations = n }
}

// WithFunctionExecutor overrides the default global registry executor.
func WithFunctionExecutor(e FunctionExecutor) Option {
	return func(k *Kernel) { k.executor = e }
}

// Kernel is the process-local orchestration handle: one chat service,
// the prompt functions added to it, and the native-function executor
// used by the auto function-calling loop.
type Kernel struct {
	service       ChatService
	executor      FunctionExecutor
	observer      observability.Observer
	maxIterations int

	mu        sync.RWMutex
	functions map[string]*Function
}

// New creates a Kernel bound to the given chat service.
func New(svc ChatService, opts ...Option) *Kernel {
	k := &Kernel{
		service:       svc,
		executor:      globalFunctionExecutor{},
		observer:      observability.NewSlogObserver(slog.Default()),
		maxIterations: defaultMaxIterations,
		functions:     make(map[string]*Function),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// AddFunction adds an inline prompt function under its qualified name.
func (k *Kernel) AddFunction(plugin, name, prompt string, settings *service.ExecutionSettings) (*Function, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	fn := &Function{
		Plugin:   plugin,
		Name:     name,
		Prompt:   prompt,
		Settings: settings,
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	qualified := fn.QualifiedName()
	if _, exists := k.functions[qualified]; exists {
		return nil, fmt.Errorf("%w: %s", ErrFunctionExists, qualified)
	}
	k.functions[qualified] = fn
	return fn, nil
}

// AddSemanticPlugin loads every function folder under <root>/<plugin>
// and adds the resulting prompt functions.
func (k *Kernel) AddSemanticPlugin(root, plugin string) ([]*Function, error) {
	defs, err := semantic.LoadPlugin(root, plugin)
	if err != nil {
		return nil, err
	}

	fns := make([]*Function, 0, len(defs))
	for _, def := range defs {
		fn, err := k.AddFunction(def.Plugin, def.Name, def.Prompt, def.Config.ExecutionSettings)
		if err != nil {
			return nil, err
		}
		fn.Description = def.Config.Description
		fns = append(fns, fn)
	}
	return fns, nil
}

// Function retrieves a previously added prompt function.
func (k *Kernel) Function(plugin, name string) (*Function, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	fn, ok := k.functions[functions.Qualify(plugin, name)]
	return fn, ok
}

func (k *Kernel) emit(ctx context.Context, typ observability.EventType, level slog.Level, source string, data map[string]any) {
	k.observer.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	})
}

// Result is the outcome of invoking a prompt function.
type Result struct {
	// Text is the model's reply.
	Text string
	// Rendered is the prompt after template substitution.
	Rendered string
	// Usage reports token counts when the provider returned them.
	Usage *response.TokenUsage
}

// String returns the reply text, letting results print directly.
func (r *Result) String() string { return r.Text }

type invokeConfig struct {
	settings *service.ExecutionSettings
}

// InvokeOption adjusts a single invocation.
type InvokeOption func(*invokeConfig)

// WithSettings overrides the function's own execution settings for one
// invocation. Set fields win over the function's config.
func WithSettings(s *service.ExecutionSettings) InvokeOption {
	return func(c *invokeConfig) { c.settings = s }
}

// Invoke renders the function's template with args and sends the result
// as a single user prompt.
func (k *Kernel) Invoke(ctx context.Context, fn *Function, args map[string]string, opts ...InvokeOption) (*Result, error) {
	rendered, settings := k.prepare(fn, args, opts)

	k.emit(ctx, EventInvokeStart, slog.LevelDebug, "kernel.Invoke", map[string]any{
		"function":      fn.QualifiedName(),
		"prompt_length": len(rendered),
	})

	resp, err := k.service.Complete(ctx, promptMessages(rendered), settings)
	if err != nil {
		return nil, fmt.Errorf("invoke %s failed: %w", fn.QualifiedName(), err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("invoke %s: %w", fn.QualifiedName(), ErrEmptyResponse)
	}

	k.emit(ctx, EventInvokeComplete, slog.LevelInfo, "kernel.Invoke", map[string]any{
		"function":        fn.QualifiedName(),
		"response_length": len(resp.Text()),
	})

	return &Result{Text: resp.Text(), Rendered: rendered, Usage: resp.Usage}, nil
}

// InvokeStream is the streaming variant of Invoke. Each text delta is
// passed to onDelta as it arrives; the returned Result carries the
// complete text.
func (k *Kernel) InvokeStream(ctx context.Context, fn *Function, args map[string]string, onDelta func(delta string), opts ...InvokeOption) (*Result, error) {
	rendered, settings := k.prepare(fn, args, opts)

	k.emit(ctx, EventInvokeStart, slog.LevelDebug, "kernel.InvokeStream", map[string]any{
		"function": fn.QualifiedName(),
	})

	stream, err := k.service.Stream(ctx, promptMessages(rendered), settings)
	if err != nil {
		return nil, fmt.Errorf("invoke %s failed: %w", fn.QualifiedName(), err)
	}

	acc, err := drainWith(stream, onDelta)
	if err != nil {
		return nil, fmt.Errorf("invoke %s failed: %w", fn.QualifiedName(), err)
	}

	k.emit(ctx, EventInvokeComplete, slog.LevelInfo, "kernel.InvokeStream", map[string]any{
		"function":        fn.QualifiedName(),
		"response_length": len(acc.Text()),
	})

	return &Result{Text: acc.Text(), Rendered: rendered, Usage: acc.Usage()}, nil
}

func (k *Kernel) prepare(fn *Function, args map[string]string, opts []InvokeOption) (string, *service.ExecutionSettings) {
	var cfg invokeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return template.Render(fn.Prompt, args), fn.Settings.Merge(cfg.settings)
}

func promptMessages(rendered string) []protocol.Message {
	return []protocol.Message{protocol.NewMessage(protocol.RoleUser, rendered)}
}

// drainWith consumes the stream, forwarding text deltas to onDelta.
func drainWith(stream service.Stream, onDelta func(string)) (*service.Accumulator, error) {
	defer stream.Close()

	var acc service.Accumulator
	for {
		event, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return &acc, nil
			}
			return nil, err
		}
		acc.Apply(event)
		if event.Delta != "" && onDelta != nil {
			onDelta(event.Delta)
		}
	}
}
