// Package chat maintains the ordered conversation history that is
// resent in full on every turn to preserve context.
package chat

import (
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/stepwise-ai/semkernel/core/protocol"
)

// History is an append-only sequence of role-tagged messages. Safe for
// concurrent use.
type History struct {
	id       string
	mu       sync.RWMutex
	messages []protocol.Message
}

// NewHistory creates an empty History with a unique UUIDv7 identifier.
func NewHistory() *History {
	return &History{
		id: uuid.Must(uuid.NewV7()).String(),
	}
}

// ID returns the unique history identifier.
func (h *History) ID() string {
	return h.id
}

// Add appends a message to the history.
func (h *History) Add(msg protocol.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, msg)
}

// AddSystemMessage appends a system message.
func (h *History) AddSystemMessage(content string) {
	h.Add(protocol.NewMessage(protocol.RoleSystem, content))
}

// AddUserMessage appends a user message.
func (h *History) AddUserMessage(content string) {
	h.Add(protocol.NewMessage(protocol.RoleUser, content))
}

// AddAssistantMessage appends an assistant message.
func (h *History) AddAssistantMessage(content string) {
	h.Add(protocol.NewMessage(protocol.RoleAssistant, content))
}

// AddAssistantToolCalls appends an assistant message carrying the tool
// calls the model requested.
func (h *History) AddAssistantToolCalls(content string, calls []protocol.ToolCall) {
	h.Add(protocol.Message{
		Role:      protocol.RoleAssistant,
		Content:   content,
		ToolCalls: slices.Clone(calls),
	})
}

// AddToolMessage appends a tool result message correlated to a tool call.
func (h *History) AddToolMessage(toolCallID, content string) {
	h.Add(protocol.Message{
		Role:       protocol.RoleTool,
		Content:    content,
		ToolCallID: toolCallID,
	})
}

// Messages returns a defensive copy of the conversation history.
func (h *History) Messages() []protocol.Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	copied := make([]protocol.Message, len(h.messages))
	for i, msg := range h.messages {
		copied[i] = msg
		copied[i].ToolCalls = slices.Clone(msg.ToolCalls)
	}
	return copied
}

// Len returns the number of messages in the history.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.messages)
}

// Clear resets the conversation history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
