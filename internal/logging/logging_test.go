package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesToFileAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "inspector.log")
	logger, closer, err := New("warn", path)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("unknown style", "style", "heaedr")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hidden")
	require.Contains(t, string(data), "style=heaedr")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New("loud", "")
	require.Error(t, err)
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closer, err := New("debug", "")
	require.NoError(t, err)
	require.Same(t, Discard, logger)
	require.NoError(t, closer.Close())
}
