package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		level     string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "JSON default level", format: "json", wantLevel: zapcore.InfoLevel},
		{name: "Console debug", format: "console", level: "debug", wantLevel: zapcore.DebugLevel},
		{name: "Empty format is JSON", format: "", level: "warn", wantLevel: zapcore.WarnLevel},
		{name: "Unknown format", format: "xml", wantErr: true},
		{name: "Invalid level", format: "json", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.format, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			assert.False(t, l.Core().Enabled(tt.wantLevel-1))
		})
	}
}
