package service

// ExecutionSettings are the model parameters attached to a request.
// Nil fields are omitted from the request body so the provider applies
// its own defaults; set fields are passed through unmodified.
type ExecutionSettings struct {
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
}

// Float returns a pointer to v for use in ExecutionSettings literals.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v for use in ExecutionSettings literals.
func Int(v int) *int { return &v }

// Merge returns s overlaid with the non-nil fields of override. Either
// receiver may be nil.
func (s *ExecutionSettings) Merge(override *ExecutionSettings) *ExecutionSettings {
	if s == nil {
		return override
	}
	if override == nil {
		return s
	}

	merged := *s
	if override.Temperature != nil {
		merged.Temperature = override.Temperature
	}
	if override.MaxTokens != nil {
		merged.MaxTokens = override.MaxTokens
	}
	if override.TopP != nil {
		merged.TopP = override.TopP
	}
	return &merged
}
