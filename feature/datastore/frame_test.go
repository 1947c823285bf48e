package datastore

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFrame(t *testing.T) {
	t.Run("Missing Markers", func(t *testing.T) {
		f, err := ReadFrame(strings.NewReader("a,b,c\n1,na,\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "c"}, f.Columns)
		require.Len(t, f.Rows, 1)
		assert.Equal(t, []Cell{Val("1"), NA(), NA()}, f.Rows[0])
	})

	t.Run("Empty Input", func(t *testing.T) {
		f, err := ReadFrame(strings.NewReader(""))
		assert.Nil(t, f)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read header")
	})

	t.Run("Ragged Record", func(t *testing.T) {
		f, err := ReadFrame(strings.NewReader("a,b\n1\n"))
		assert.Nil(t, f)
		assert.Error(t, err)
	})

	t.Run("Header Only", func(t *testing.T) {
		f, err := ReadFrame(strings.NewReader("a,b\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, f.Columns)
		assert.Empty(t, f.Rows)
	})
}

func TestWriteCSV(t *testing.T) {
	f := &Frame{
		Columns: []string{"a", "b"},
		Rows: [][]Cell{
			{Val("1"), NA()},
			{Val("2"), Val("3")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, f.WriteCSV(&buf))

	assert.Equal(t, "a,b\n1,\n2,3\n", buf.String())
}

func TestFrameRoundTrip(t *testing.T) {
	original := &Frame{
		Columns: []string{"comment", "sentiment", "score"},
		Rows: [][]Cell{
			{Val("great video"), Val("positive"), Val("0.92")},
			{Val("meh"), NA(), NA()},
			{Val("terrible"), Val("negative"), Val("0.11")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, original.WriteCSV(&buf))

	parsed, err := ReadFrame(&buf)
	require.NoError(t, err)

	assert.Equal(t, original, parsed)
}
