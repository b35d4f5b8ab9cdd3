package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/colonyops/scopepad/pkg/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	t.Run("writes indented json", func(t *testing.T) {
		var out, errOut bytes.Buffer

		err := WriteWith(&out, &errOut, map[string]string{"name": "Todos"})
		require.NoError(t, err)
		assert.Empty(t, errOut.String())

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "Todos", decoded["name"])
		assert.Contains(t, out.String(), "\n  ", "output should be indented")
	})

	t.Run("marshal failure goes to error writer", func(t *testing.T) {
		var out, errOut bytes.Buffer

		_ = WriteWith(&out, &errOut, func() {})
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "json_error")
	})
}

func TestWriteResultFailure(t *testing.T) {
	res := result.Errf[string]("scope not found")

	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, res))
	assert.Contains(t, out.String(), "scope not found")
	assert.Error(t, res.Err())
}
