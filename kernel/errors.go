package kernel

import "errors"

// Sentinel errors for kernel operations.
var (
	// ErrMaxIterations is returned by Chat when the function-calling
	// loop exhausts its iteration budget without a final response.
	ErrMaxIterations = errors.New("max iterations reached")

	ErrFunctionExists = errors.New("prompt function already added")
	ErrEmptyName      = errors.New("function name is empty")
	ErrEmptyPrompt    = errors.New("prompt is empty")
	ErrEmptyResponse  = errors.New("service returned empty response")
)
