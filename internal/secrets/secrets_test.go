package secrets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a set variable", func(t *testing.T) {
		t.Setenv("DEFAULT_CONNECTION", "postgres://localhost/backlog")

		value, err := EnvProvider{}.GetSecret(ctx, "DefaultConnection")
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost/backlog", value)
	})

	t.Run("missing variable reports not found", func(t *testing.T) {
		_, err := EnvProvider{}.GetSecret(ctx, "DoesNotExist")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty value counts as missing", func(t *testing.T) {
		t.Setenv("API_KEY", "")
		_, err := EnvProvider{}.GetSecret(ctx, "ApiKey")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"DefaultConnection": "DEFAULT_CONNECTION",
		"ApiKey":            "API_KEY",
		"api-key":           "API_KEY",
		"db.password":       "DB_PASSWORD",
	}
	for name, want := range cases {
		assert.Equal(t, want, envKey(name), name)
	}
}

func TestStaticProvider(t *testing.T) {
	p := StaticProvider{"ApiKey": "s3cret"}

	value, err := p.GetSecret(context.Background(), "ApiKey")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", value)

	_, err = p.GetSecret(context.Background(), "Other")
	assert.ErrorIs(t, err, ErrNotFound)
}
