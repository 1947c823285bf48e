package datastore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")

	t.Run("StorageError", func(t *testing.T) {
		err := fmt.Errorf("op failed: %w", &StorageError{Op: "upload file", Err: cause})

		var storageErr *StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "upload file", storageErr.Op)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("ParseError", func(t *testing.T) {
		err := &ParseError{Key: "data.csv", Err: cause}

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "data.csv")
	})

	t.Run("NotFoundError", func(t *testing.T) {
		err := &NotFoundError{Bucket: "b", Key: "model.keras"}
		assert.Contains(t, err.Error(), "model.keras")
		assert.Contains(t, err.Error(), "b")
	})
}
