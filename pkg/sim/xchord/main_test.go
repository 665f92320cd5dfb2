package xchord

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain 在所有测试完成后检测 goroutine 泄漏（SampleParallel 启动 worker）。
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
