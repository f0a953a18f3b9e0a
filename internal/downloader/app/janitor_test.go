package app

import (
	"context"
	"testing"
	"time"

	"media_download_service/pkg/logger"

	"github.com/stretchr/testify/assert"
)

// 測試 Janitor
func TestJanitorSweepLoop(t *testing.T) {
	logger.SetNewNop()

	mockStaging := new(MockStagingRepo)
	mockStaging.On("Sweep", time.Hour).Return(2, nil)

	janitor := NewJanitor(mockStaging, 10*time.Millisecond, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		janitor.Start(ctx)
		close(done)
	}()

	// 等幾個 tick 再停止
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after context cancel")
	}

	mockStaging.AssertCalled(t, "Sweep", time.Hour)
	assert.GreaterOrEqual(t, len(mockStaging.Calls), 1)
}
