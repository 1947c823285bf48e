package model

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArchive builds a minimal .keras zip at a temp path.
func writeArchive(t *testing.T, entries map[string][]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.keras")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return path
}

func TestLoad(t *testing.T) {
	config := []byte(`{
		"class_name": "Sequential",
		"config": {
			"name": "sentiment_lstm",
			"layers": [
				{"class_name": "Embedding", "config": {"name": "embedding"}},
				{"class_name": "LSTM", "config": {"name": "lstm"}},
				{"class_name": "Dense", "config": {"name": "dense"}}
			]
		}
	}`)
	metadata := []byte(`{"keras_version": "3.4.1", "date_saved": "2024-07-01@12:00:00"}`)
	weights := []byte("not real hdf5 but bytes all the same")

	t.Run("Full Archive", func(t *testing.T) {
		path := writeArchive(t, map[string][]byte{
			"config.json":      config,
			"metadata.json":    metadata,
			"model.weights.h5": weights,
		})

		m, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "sentiment_lstm", m.Name)
		assert.Equal(t, "Sequential", m.ClassName)
		assert.Equal(t, "3.4.1", m.KerasVersion)
		assert.Equal(t, int64(len(weights)), m.WeightsSize)
		require.Len(t, m.Layers, 3)
		assert.Equal(t, Layer{ClassName: "LSTM", Name: "lstm"}, m.Layers[1])
	})

	t.Run("Missing Config", func(t *testing.T) {
		path := writeArchive(t, map[string][]byte{
			"metadata.json": metadata,
		})

		m, err := Load(path)
		assert.Nil(t, m)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config.json")
	})

	t.Run("Malformed Config", func(t *testing.T) {
		path := writeArchive(t, map[string][]byte{
			"config.json": []byte("{not json"),
		})

		m, err := Load(path)
		assert.Nil(t, m)
		assert.Error(t, err)
	})

	t.Run("Not An Archive", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bogus.keras")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

		m, err := Load(path)
		assert.Nil(t, m)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open model archive")
	})
}
