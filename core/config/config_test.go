package config

import (
	"errors"
	"strings"
	"testing"
)

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvEndpoint, "https://example.openai.azure.com")
	t.Setenv(EnvDeployment, "gpt-4o")
	t.Setenv(EnvAPIVersion, "")
	t.Setenv(EnvEmbeddingDeployment, "text-embedding-3-small")

	s, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if s.APIKey != "secret" {
		t.Errorf("got api key %q, want secret", s.APIKey)
	}
	if s.Endpoint != "https://example.openai.azure.com" {
		t.Errorf("got endpoint %q", s.Endpoint)
	}
	if s.Deployment != "gpt-4o" {
		t.Errorf("got deployment %q, want gpt-4o", s.Deployment)
	}
	if s.APIVersion == "" {
		t.Error("expected default api version")
	}
	if s.EmbeddingDeployment != "text-embedding-3-small" {
		t.Errorf("got embedding deployment %q", s.EmbeddingDeployment)
	}
}

func TestFromEnv_MissingEndpoint(t *testing.T) {
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvDeployment, "gpt-4o")

	_, err := FromEnv()
	if !errors.Is(err, ErrMissingEnv) {
		t.Fatalf("got %v, want ErrMissingEnv", err)
	}
	if !strings.Contains(err.Error(), EnvEndpoint) {
		t.Errorf("error %q does not name the missing variable", err)
	}
}

func TestFromEnv_MissingDeployment(t *testing.T) {
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvEndpoint, "https://example.openai.azure.com")
	t.Setenv(EnvDeployment, "")

	_, err := FromEnv()
	if !errors.Is(err, ErrMissingEnv) {
		t.Fatalf("got %v, want ErrMissingEnv", err)
	}
}

func TestFromEnv_EmptyKeyAllowed(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvEndpoint, "https://example.openai.azure.com")
	t.Setenv(EnvDeployment, "gpt-4o")

	s, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if s.APIKey != "" {
		t.Errorf("got api key %q, want empty", s.APIKey)
	}
}
