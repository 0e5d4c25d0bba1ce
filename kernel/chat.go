package kernel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stepwise-ai/semkernel/chat"
	"github.com/stepwise-ai/semkernel/core/protocol"
	"github.com/stepwise-ai/semkernel/core/response"
	"github.com/stepwise-ai/semkernel/service"
)

// FunctionCallRecord logs one native-function invocation made during a
// chat turn.
type FunctionCallRecord struct {
	protocol.ToolCall
	Iteration int    // Loop cycle in which the call occurred.
	Result    string // Function execution output.
	IsError   bool   // Whether execution returned an error result.
}

// ChatResult is the outcome of one chat turn.
type ChatResult struct {
	Message       string               // Final assistant text, appended to the history.
	Iterations    int                  // Function-calling loop cycles completed.
	FunctionCalls []FunctionCallRecord // Log of native-function invocations.
	Usage         *response.TokenUsage // Usage of the final completion, when reported.
}

type chatConfig struct {
	autoFunctions bool
}

// ChatOption adjusts one chat turn.
type ChatOption func(*chatConfig)

// WithFunctionChoiceAuto lets the model call any registered native
// function during the turn. Without it the turn is a plain completion.
func WithFunctionChoiceAuto() ChatOption {
	return func(c *chatConfig) { c.autoFunctions = true }
}

// Chat runs one conversation turn over the accumulated history. The
// caller appends the user message first; Chat appends the assistant
// reply (and any intermediate tool traffic) before returning.
//
// With WithFunctionChoiceAuto the turn loops: registered function
// metadata is sent with the request, returned calls are executed
// through the registry, results are appended to the history, and the
// exchange repeats until the model produces a plain reply or the
// iteration budget is exhausted (ErrMaxIterations).
func (k *Kernel) Chat(ctx context.Context, history *chat.History, settings *service.ExecutionSettings, opts ...ChatOption) (*ChatResult, error) {
	return k.chat(ctx, history, settings, nil, opts)
}

// ChatStream is the streaming variant of Chat: assistant text deltas
// are forwarded to onDelta as they arrive. Function-calling iterations
// stream too; only text deltas reach onDelta, never tool fragments.
func (k *Kernel) ChatStream(ctx context.Context, history *chat.History, settings *service.ExecutionSettings, onDelta func(delta string), opts ...ChatOption) (*ChatResult, error) {
	if onDelta == nil {
		onDelta = func(string) {}
	}
	return k.chat(ctx, history, settings, onDelta, opts)
}

// chat implements both variants; onDelta == nil selects blocking
// completions.
func (k *Kernel) chat(ctx context.Context, history *chat.History, settings *service.ExecutionSettings, onDelta func(string), opts []ChatOption) (*ChatResult, error) {
	var cfg chatConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var tools []protocol.Tool
	if cfg.autoFunctions {
		tools = k.executor.List()
	}

	k.emit(ctx, EventChatStart, slog.LevelInfo, "kernel.Chat", map[string]any{
		"history":        history.Len(),
		"functions":      len(tools),
		"max_iterations": k.maxIterations,
	})

	result := &ChatResult{}

	for iteration := 0; k.maxIterations == 0 || iteration < k.maxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		k.emit(ctx, EventIterationStart, slog.LevelDebug, "kernel.Chat", map[string]any{
			"iteration": iteration + 1,
		})

		text, calls, usage, err := k.exchange(ctx, history.Messages(), tools, settings, onDelta)
		if err != nil {
			return result, fmt.Errorf("chat turn failed: %w", err)
		}

		if len(calls) == 0 {
			history.AddAssistantMessage(text)
			result.Message = text
			result.Iterations = iteration + 1
			result.Usage = usage

			k.emit(ctx, EventResponse, slog.LevelInfo, "kernel.Chat", map[string]any{
				"iteration":       iteration + 1,
				"response_length": len(text),
			})
			return result, nil
		}

		history.AddAssistantToolCalls(text, calls)

		for _, call := range calls {
			k.emit(ctx, EventFunctionCall, slog.LevelDebug, "kernel.Chat", map[string]any{
				"iteration": iteration + 1,
				"name":      call.Name,
			})

			record := FunctionCallRecord{ToolCall: call, Iteration: iteration + 1}

			fnResult, fnErr := k.executor.Execute(ctx, call.Name, json.RawMessage(call.Arguments))
			if fnErr != nil {
				record.Result = fmt.Sprintf("error: %s", fnErr)
				record.IsError = true
			} else {
				record.Result = fnResult.Content
				record.IsError = fnResult.IsError
			}

			history.AddToolMessage(call.ID, record.Result)

			k.emit(ctx, EventFunctionComplete, slog.LevelDebug, "kernel.Chat", map[string]any{
				"iteration": iteration + 1,
				"name":      call.Name,
				"error":     record.IsError,
			})

			result.FunctionCalls = append(result.FunctionCalls, record)
		}

		result.Iterations = iteration + 1
	}

	k.emit(ctx, EventError, slog.LevelWarn, "kernel.Chat", map[string]any{
		"error":      "max iterations reached",
		"iterations": k.maxIterations,
	})

	return result, ErrMaxIterations
}

// exchange performs one model round trip, blocking or streaming.
func (k *Kernel) exchange(ctx context.Context, messages []protocol.Message, tools []protocol.Tool, settings *service.ExecutionSettings, onDelta func(string)) (string, []protocol.ToolCall, *response.TokenUsage, error) {
	if onDelta == nil {
		var (
			resp *response.ChatResponse
			err  error
		)
		if len(tools) > 0 {
			resp, err = k.service.CompleteTools(ctx, messages, tools, settings)
		} else {
			resp, err = k.service.Complete(ctx, messages, settings)
		}
		if err != nil {
			return "", nil, nil, err
		}
		if len(resp.Choices) == 0 {
			return "", nil, nil, ErrEmptyResponse
		}
		return resp.Text(), resp.ToolCalls(), resp.Usage, nil
	}

	var (
		stream service.Stream
		err    error
	)
	if len(tools) > 0 {
		stream, err = k.service.StreamTools(ctx, messages, tools, settings)
	} else {
		stream, err = k.service.Stream(ctx, messages, settings)
	}
	if err != nil {
		return "", nil, nil, err
	}

	acc, err := drainWith(stream, onDelta)
	if err != nil {
		return "", nil, nil, err
	}
	return acc.Text(), acc.ToolCalls(), acc.Usage(), nil
}
