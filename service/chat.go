// Package service implements the Azure OpenAI chat-completions and
// embeddings clients the kernel binds to. Requests go to the
// deployment's HTTPS endpoint with either api-key or Entra ID bearer
// authentication.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stepwise-ai/semkernel/core/config"
	"github.com/stepwise-ai/semkernel/core/protocol"
	"github.com/stepwise-ai/semkernel/core/response"
)

// tokenScope is the Entra ID scope for Azure OpenAI resources.
const tokenScope = "https://cognitiveservices.azure.com/.default"

// ChatService is a chat-completions client bound to one deployment.
type ChatService struct {
	endpoint   string
	deployment string
	apiVersion string
	apiKey     string
	credential azcore.TokenCredential
	httpClient *http.Client
}

// Option configures a ChatService.
type Option func(*ChatService)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *ChatService) { s.httpClient = c }
}

// WithTokenCredential enables Entra ID bearer authentication, used when
// no API key is configured.
func WithTokenCredential(cred azcore.TokenCredential) Option {
	return func(s *ChatService) { s.credential = cred }
}

// WithDeployment overrides the configured deployment name, for pointing
// a second service at an embeddings deployment.
func WithDeployment(deployment string) Option {
	return func(s *ChatService) { s.deployment = deployment }
}

// NewChatService creates a ChatService from connection settings.
func NewChatService(cfg *config.Settings, opts ...Option) *ChatService {
	s := &ChatService{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		deployment: cfg.Deployment,
		apiVersion: cfg.APIVersion,
		apiKey:     cfg.APIKey,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// toolDef is the provider's wrapper around a tool definition.
type toolDef struct {
	Type     string        `json:"type"`
	Function protocol.Tool `json:"function"`
}

type chatRequest struct {
	Messages    []protocol.Message `json:"messages"`
	Tools       []toolDef          `json:"tools,omitempty"`
	ToolChoice  string             `json:"tool_choice,omitempty"`
	Stream      bool               `json:"stream,omitempty"`
	Temperature *float64           `json:"temperature,omitempty"`
	MaxTokens   *int               `json:"max_tokens,omitempty"`
	TopP        *float64           `json:"top_p,omitempty"`
}

func buildChatRequest(messages []protocol.Message, tools []protocol.Tool, settings *ExecutionSettings, stream bool) chatRequest {
	req := chatRequest{Messages: messages, Stream: stream}
	if settings != nil {
		req.Temperature = settings.Temperature
		req.MaxTokens = settings.MaxTokens
		req.TopP = settings.TopP
	}
	for _, t := range tools {
		req.Tools = append(req.Tools, toolDef{Type: "function", Function: t})
	}
	if len(req.Tools) > 0 {
		req.ToolChoice = "auto"
	}
	return req
}

// Complete sends the messages and returns the model's reply.
func (s *ChatService) Complete(ctx context.Context, messages []protocol.Message, settings *ExecutionSettings) (*response.ChatResponse, error) {
	return s.complete(ctx, buildChatRequest(messages, nil, settings, false))
}

// CompleteTools sends the messages along with tool definitions the
// model may choose to call.
func (s *ChatService) CompleteTools(ctx context.Context, messages []protocol.Message, tools []protocol.Tool, settings *ExecutionSettings) (*response.ChatResponse, error) {
	return s.complete(ctx, buildChatRequest(messages, tools, settings, false))
}

func (s *ChatService) complete(ctx context.Context, req chatRequest) (*response.ChatResponse, error) {
	resp, err := s.post(ctx, s.chatURL(), req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return response.ParseChat(body)
}

// Stream sends the messages with streaming enabled and returns a Stream
// of incremental deltas. The caller must Close the stream.
func (s *ChatService) Stream(ctx context.Context, messages []protocol.Message, settings *ExecutionSettings) (Stream, error) {
	return s.stream(ctx, buildChatRequest(messages, nil, settings, true))
}

// StreamTools is the streaming variant of CompleteTools.
func (s *ChatService) StreamTools(ctx context.Context, messages []protocol.Message, tools []protocol.Tool, settings *ExecutionSettings) (Stream, error) {
	return s.stream(ctx, buildChatRequest(messages, tools, settings, true))
}

func (s *ChatService) stream(ctx context.Context, req chatRequest) (Stream, error) {
	resp, err := s.post(ctx, s.chatURL(), req)
	if err != nil {
		return nil, err
	}
	return newSSEStream(resp.Body), nil
}

func (s *ChatService) chatURL() string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		s.endpoint, s.deployment, s.apiVersion)
}

// post marshals payload and issues an authenticated POST. Non-2xx
// responses are drained and returned as *APIError.
func (s *ChatService) post(ctx context.Context, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := s.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, newAPIError(resp.StatusCode, errBody)
	}

	return resp, nil
}

// authorize sets the api-key header, or a bearer token when a
// credential is configured and no key is present.
func (s *ChatService) authorize(ctx context.Context, req *http.Request) error {
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
		return nil
	}
	if s.credential == nil {
		return fmt.Errorf("no api key or token credential configured")
	}

	token, err := s.credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{tokenScope},
	})
	if err != nil {
		return fmt.Errorf("failed to acquire token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.Token)
	return nil
}
