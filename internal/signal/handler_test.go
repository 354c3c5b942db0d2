package signal

import (
	"context"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetupSignalHandler_SIGINTCallsCallback verifies that SIGINT triggers the onInterrupt callback
func TestSetupSignalHandler_SIGINTCallsCallback(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	callbackCalled := false
	var mu sync.Mutex
	onInterrupt := func() {
		mu.Lock()
		callbackCalled = true
		mu.Unlock()
	}

	SetupSignalHandler(ctx, cancel, onInterrupt)

	// Give handler time to install signal channel
	time.Sleep(50 * time.Millisecond)

	// Send SIGINT to self
	err := syscall.Kill(os.Getpid(), syscall.SIGINT)
	require.NoError(t, err, "failed to send SIGINT")

	// Wait for callback to be called
	deadline := time.After(1 * time.Second)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mu.Lock()
			if callbackCalled {
				mu.Unlock()
				return // Test passes
			}
			mu.Unlock()
		case <-deadline:
			t.Fatal("onInterrupt callback was not called within timeout")
		}
	}
}

// TestSetupSignalHandler_CancelFunctionCalled verifies that cancel() is invoked on signal
func TestSetupSignalHandler_CancelFunctionCalled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	SetupSignalHandler(ctx, cancel, nil)

	// Give handler time to install signal channel
	time.Sleep(50 * time.Millisecond)

	err := syscall.Kill(os.Getpid(), syscall.SIGINT)
	require.NoError(t, err, "failed to send SIGINT")

	// Wait for context to be cancelled
	select {
	case <-ctx.Done():
		assert.Equal(t, context.Canceled, ctx.Err())
	case <-time.After(1 * time.Second):
		t.Fatal("context was not cancelled within timeout")
	}
}

// TestSetupSignalHandler_ContextCancellation verifies the goroutine exits quietly
// when the context is cancelled without a signal.
func TestSetupSignalHandler_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	callbackCalled := false
	var mu sync.Mutex
	onInterrupt := func() {
		mu.Lock()
		callbackCalled = true
		mu.Unlock()
	}

	SetupSignalHandler(ctx, cancel, onInterrupt)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(100 * time.Millisecond)

	// Callback should NOT have been called for context cancellation
	mu.Lock()
	assert.False(t, callbackCalled, "onInterrupt should not be called for context cancellation")
	mu.Unlock()
}
