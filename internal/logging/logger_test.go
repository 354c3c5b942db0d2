package logging_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/preflight/internal/logging"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

// captureStdout captures stdout output produced by fn.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

// captureStderr captures stderr output produced by fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestInfoWritesToStdout(t *testing.T) {
	out := captureStdout(t, func() {
		logging.Info("test message")
	})
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "test message")
}

func TestSuccessWritesToStdout(t *testing.T) {
	out := captureStdout(t, func() {
		logging.Success("done")
	})
	assert.Contains(t, out, "[SUCCESS]")
	assert.Contains(t, out, "done")
}

func TestWarnWritesToStdout(t *testing.T) {
	out := captureStdout(t, func() {
		logging.Warn("caution")
	})
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "caution")
}

func TestErrorWritesToStderr(t *testing.T) {
	out := captureStderr(t, func() {
		logging.Error("failure")
	})
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "failure")
}

func TestPhaseWritesToStdout(t *testing.T) {
	out := captureStdout(t, func() {
		logging.Phase("audit")
	})
	assert.Contains(t, out, "[PHASE]")
	assert.Contains(t, out, "audit")
	// Phase output includes separator lines.
	assert.Contains(t, out, "━━━━")
}

func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	logging.SetVerbose(false)
	out := captureStdout(t, func() {
		logging.Debug("hidden")
	})
	assert.Empty(t, out)
}

func TestDebugShownWhenVerbose(t *testing.T) {
	logging.SetVerbose(true)
	defer logging.SetVerbose(false)

	out := captureStdout(t, func() {
		logging.Debug("visible")
	})
	assert.Contains(t, out, "[DEBUG]")
	assert.Contains(t, out, "visible")
}
