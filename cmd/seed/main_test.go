package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/core/apperror"
	"puntoventa/pkg/logger"
)

func TestCreateIfMissing(t *testing.T) {
	log := logger.Default()

	t.Run("creates when lookup reports not found", func(t *testing.T) {
		created := false
		err := createIfMissing(log, "store", "MAIN",
			func() error { return apperror.NewNotFound("store", "MAIN") },
			func() error { created = true; return nil },
		)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("skips when already present", func(t *testing.T) {
		created := false
		err := createIfMissing(log, "store", "MAIN",
			func() error { return nil },
			func() error { created = true; return nil },
		)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("propagates unexpected lookup errors", func(t *testing.T) {
		boom := errors.New("connection reset")
		err := createIfMissing(log, "store", "MAIN",
			func() error { return boom },
			func() error { return nil },
		)
		assert.ErrorIs(t, err, boom)
	})
}
