package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("prod logs json at info", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter("prod", &buf)
		log.Debug("hidden")
		log.Info("shown", "id", 1)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "shown", line["msg"])
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("staging logs json at debug", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter("staging", &buf).Debug("visible")
		assert.Contains(t, buf.String(), `"msg":"visible"`)
	})

	t.Run("dev logs text at debug", func(t *testing.T) {
		var buf bytes.Buffer
		NewWithWriter("dev", &buf).Debug("visible")
		assert.Contains(t, buf.String(), "msg=visible")
	})
}
