// Package config reads the Azure OpenAI connection settings from the
// process environment, with optional .env file support.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names consumed by Load.
const (
	EnvAPIKey              = "AZURE_OPENAI_API_KEY"
	EnvEndpoint            = "AZURE_OPENAI_ENDPOINT"
	EnvDeployment          = "AZURE_OPENAI_DEPLOYMENT_NAME"
	EnvAPIVersion          = "AZURE_OPENAI_API_VERSION"
	EnvEmbeddingDeployment = "AZURE_OPENAI_EMBEDDING_DEPLOYMENT"
)

const defaultAPIVersion = "2024-06-01"

// ErrMissingEnv is wrapped by FromEnv when a required variable is unset.
var ErrMissingEnv = errors.New("missing environment variable")

// Settings holds the connection parameters for one Azure OpenAI resource.
// An empty APIKey selects Entra ID token authentication.
type Settings struct {
	APIKey              string
	Endpoint            string
	Deployment          string
	APIVersion          string
	EmbeddingDeployment string
}

// Load reads a .env file from the working directory when present, then
// resolves settings from the environment. A missing .env is not an error.
func Load() (*Settings, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv resolves settings from the current environment. Endpoint and
// deployment are required; the API key may be empty when a token
// credential will be used instead.
func FromEnv() (*Settings, error) {
	s := &Settings{
		APIKey:              os.Getenv(EnvAPIKey),
		Endpoint:            os.Getenv(EnvEndpoint),
		Deployment:          os.Getenv(EnvDeployment),
		APIVersion:          os.Getenv(EnvAPIVersion),
		EmbeddingDeployment: os.Getenv(EnvEmbeddingDeployment),
	}

	if s.Endpoint == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, EnvEndpoint)
	}
	if s.Deployment == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, EnvDeployment)
	}
	if s.APIVersion == "" {
		s.APIVersion = defaultAPIVersion
	}

	return s, nil
}
