package xrun

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrSignal 所有信号退出错误的哨兵，可用 errors.Is 判断。
	ErrSignal = errors.New("received signal")

	// ErrNilFunc 任务函数为 nil。
	ErrNilFunc = errors.New("xrun: nil task func")
)

// SignalError 记录导致退出的信号。
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	if e.Signal == nil {
		return "received signal <nil>"
	}
	return fmt.Sprintf("received signal %s", e.Signal)
}

// Unwrap 返回 [ErrSignal]。
func (e *SignalError) Unwrap() error {
	return ErrSignal
}
