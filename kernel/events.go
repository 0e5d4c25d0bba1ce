package kernel

import "github.com/stepwise-ai/semkernel/observability"

// Kernel event types emitted during invocation and the chat loop.
const (
	EventInvokeStart      observability.EventType = "kernel.invoke.start"
	EventInvokeComplete   observability.EventType = "kernel.invoke.complete"
	EventChatStart        observability.EventType = "kernel.chat.start"
	EventIterationStart   observability.EventType = "kernel.chat.iteration"
	EventFunctionCall     observability.EventType = "kernel.function.call"
	EventFunctionComplete observability.EventType = "kernel.function.complete"
	EventResponse         observability.EventType = "kernel.chat.response"
	EventError            observability.EventType = "kernel.error"
)
