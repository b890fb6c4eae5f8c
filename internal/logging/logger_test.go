package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		logger, err := New(in)
		require.NoError(t, err, in)
		require.True(t, logger.Core().Enabled(want), in)
		if want > zapcore.DebugLevel {
			require.False(t, logger.Core().Enabled(want-1), in)
		}
	}
}
