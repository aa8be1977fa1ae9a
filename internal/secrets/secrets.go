// Package secrets resolves named secrets (connection string, API key) at
// startup. Production reads from Azure Key Vault; development falls back to
// environment variables. A missing secret is fatal to process start, so
// providers report it distinctly from transport errors.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// ErrNotFound reports that the secret store has no secret with that name.
var ErrNotFound = errors.New("secret not found")

// Provider resolves a named secret.
type Provider interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// EnvProvider resolves secrets from environment variables. A secret named
// "DefaultConnection" is looked up as DEFAULT_CONNECTION.
type EnvProvider struct{}

func (EnvProvider) GetSecret(_ context.Context, name string) (string, error) {
	value, ok := os.LookupEnv(envKey(name))
	if !ok || value == "" {
		return "", fmt.Errorf("environment variable %s: %w", envKey(name), ErrNotFound)
	}
	return value, nil
}

// envKey converts a secret name to SCREAMING_SNAKE_CASE.
func envKey(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '-' || r == '.':
			b.WriteRune('_')
		case unicode.IsUpper(r) && i > 0:
			b.WriteRune('_')
			b.WriteRune(r)
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// StaticProvider serves secrets from a fixed map. Test helper.
type StaticProvider map[string]string

func (p StaticProvider) GetSecret(_ context.Context, name string) (string, error) {
	value, ok := p[name]
	if !ok {
		return "", fmt.Errorf("secret %q: %w", name, ErrNotFound)
	}
	return value, nil
}
