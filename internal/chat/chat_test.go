package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewService(t *testing.T) {
	t.Run("requires an api key", func(t *testing.T) {
		_, err := NewService("", "", zap.NewNop())
		assert.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("empty model falls back to default", func(t *testing.T) {
		svc, err := NewService("test-key", "", zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, defaultModel, string(svc.model))
	})

	t.Run("explicit model is kept", func(t *testing.T) {
		svc, err := NewService("test-key", "claude-haiku-4-5", nil)
		require.NoError(t, err)
		assert.Equal(t, "claude-haiku-4-5", string(svc.model))
	})
}
