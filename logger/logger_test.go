package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterWithField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf).WithField("store", "Loja Top")

	l.Warn("generation failed")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "generation failed", line["message"])
	assert.Equal(t, "Loja Top", line["store"])
	assert.Contains(t, line, "time")
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	assert.NotPanics(t, func() {
		l.WithField("k", "v").Error("ignored")
	})
}
