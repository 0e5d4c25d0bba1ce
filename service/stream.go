package service

import (
	"io"
	"strings"

	"github.com/stepwise-ai/semkernel/core/protocol"
	"github.com/stepwise-ai/semkernel/core/response"
)

// StreamEvent is one incremental delivery from a streaming response.
type StreamEvent struct {
	// Delta is the text fragment, possibly empty on tool-call or
	// bookkeeping events.
	Delta string
	// ToolCalls holds partial tool-call fragments; feed them to an
	// Accumulator to assemble complete calls.
	ToolCalls []response.ToolCallDelta
	// FinishReason is set on the final event of a choice.
	FinishReason string
	// Usage arrives on the last chunk when the provider reports it.
	Usage *response.TokenUsage
}

// Stream yields StreamEvent values until io.EOF.
type Stream interface {
	Recv() (StreamEvent, error)
	Close() error
}

type sseStream struct {
	body   io.ReadCloser
	dec    *sseDecoder
	done   bool
	closed bool
}

func newSSEStream(body io.ReadCloser) *sseStream {
	return &sseStream{body: body, dec: newSSEDecoder(body)}
}

func (s *sseStream) Recv() (StreamEvent, error) {
	for {
		if s.done {
			return StreamEvent{}, io.EOF
		}

		data, err := s.dec.NextData()
		if err != nil {
			return StreamEvent{}, err
		}

		if data == "[DONE]" {
			s.done = true
			return StreamEvent{}, io.EOF
		}

		chunk, err := response.ParseChunk([]byte(data))
		if err != nil {
			return StreamEvent{}, err
		}

		event := StreamEvent{Usage: chunk.Usage}
		for _, c := range chunk.Choices {
			event.Delta += c.Delta.Content
			event.ToolCalls = append(event.ToolCalls, c.Delta.ToolCalls...)
			if c.FinishReason != "" {
				event.FinishReason = c.FinishReason
			}
		}

		// Skip chunks that carry nothing observable (role prologues).
		if event.Delta == "" && len(event.ToolCalls) == 0 && event.FinishReason == "" && event.Usage == nil {
			continue
		}

		return event, nil
	}
}

// Close releases the response body. Exhausting the stream does not
// close it, so callers must Close even after io.EOF.
func (s *sseStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.body.Close()
}

// Accumulator assembles a complete assistant message from stream
// events, including tool calls spread over multiple fragments.
type Accumulator struct {
	text         strings.Builder
	toolCalls    []protocol.ToolCall
	finishReason string
	usage        *response.TokenUsage
}

// Apply folds one event into the accumulator.
func (a *Accumulator) Apply(event StreamEvent) {
	a.text.WriteString(event.Delta)

	for _, tc := range event.ToolCalls {
		for len(a.toolCalls) <= tc.Index {
			a.toolCalls = append(a.toolCalls, protocol.ToolCall{})
		}
		call := &a.toolCalls[tc.Index]
		if tc.ID != "" {
			call.ID = tc.ID
		}
		if tc.Function.Name != "" {
			call.Name = tc.Function.Name
		}
		call.Arguments += tc.Function.Arguments
	}

	if event.FinishReason != "" {
		a.finishReason = event.FinishReason
	}
	if event.Usage != nil {
		u := *event.Usage
		a.usage = &u
	}
}

// Text returns the accumulated assistant text.
func (a *Accumulator) Text() string { return a.text.String() }

// ToolCalls returns the assembled tool calls, nil when none arrived.
func (a *Accumulator) ToolCalls() []protocol.ToolCall {
	if len(a.toolCalls) == 0 {
		return nil
	}
	return a.toolCalls
}

// FinishReason returns the last finish reason seen.
func (a *Accumulator) FinishReason() string { return a.finishReason }

// Usage returns the token usage if the provider reported it.
func (a *Accumulator) Usage() *response.TokenUsage { return a.usage }

// Drain consumes the stream to completion through an Accumulator and
// closes it.
func Drain(stream Stream) (*Accumulator, error) {
	defer stream.Close()

	var acc Accumulator
	for {
		event, err := stream.Recv()
		if err == io.EOF {
			return &acc, nil
		}
		if err != nil {
			return nil, err
		}
		acc.Apply(event)
	}
}
