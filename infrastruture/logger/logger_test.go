package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("SESSION-MANAGER", config.ColorCyan, &buf)
	require.NoError(t, err)

	tests := []struct {
		log   func(string)
		level string
	}{
		{l.Info, "[INFO]"},
		{l.Warning, "[WARNING]"},
		{l.Error, "[ERROR]"},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.log("started editor session")
			line := buf.String()
			assert.True(t, strings.HasPrefix(line, config.ColorCyan+"[SESSION-MANAGER]"))
			assert.Contains(t, line, tt.level)
			assert.Contains(t, line, "started editor session")
			assert.True(t, strings.HasSuffix(line, "\n"))
		})
	}

	t.Run("fields", func(t *testing.T) {
		buf.Reset()
		l.With("session", "abc").Info("closed")
		assert.Contains(t, buf.String(), "closed session=abc")
	})
}

func TestNewRejectsEmptyName(t *testing.T) {
	_, err := New("  ", config.ColorGreen, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrEmptyName)
}
