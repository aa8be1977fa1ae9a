package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := NotFound("game", 42)
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, "game 42 not found", err.Error())
	})

	t.Run("conflict", func(t *testing.T) {
		err := Conflict("game", 42)
		assert.True(t, errors.Is(err, ErrConflict))
	})

	t.Run("storage fault keeps the cause on the chain", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := Storage(cause)
		assert.True(t, errors.Is(err, ErrStorage))
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, "storage operation failed", err.Error())
	})

	t.Run("matching survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("updating game: %w", NotFound("game", 7))
		assert.True(t, errors.Is(err, ErrNotFound))

		var appErr *AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "game 7 not found", appErr.Message)
	})
}
