package main

import (
	"errors"
	"strings"

	"github.com/omeyang/xviz/pkg/config/xconf"
	"github.com/omeyang/xviz/pkg/observability/xlog"
	"github.com/omeyang/xviz/pkg/observability/xrotate"
	"github.com/omeyang/xviz/pkg/sim/xchord"
	"github.com/omeyang/xviz/pkg/util/xfile"
	"github.com/omeyang/xviz/pkg/viz/xplot"
)

// usageError 参数错误，退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

// argumentErrors 由用户输入直接导致的错误。
var argumentErrors = []error{
	xchord.ErrInvalidCount,
	xchord.ErrUnknownMethod,
	xconf.ErrEmptyPath,
	xconf.ErrUnsupportedFormat,
	xconf.ErrParseFailed,
	xconf.ErrUnmarshalFailed,
	xconf.ErrInvalidSettings,
	xlog.ErrUnknownLevel,
	xlog.ErrUnknownFormat,
	xplot.ErrInvalidColor,
	xrotate.ErrEmptyFilename,
	xrotate.ErrInvalidMaxSize,
	xfile.ErrPathTraversal,
	xfile.ErrNullByte,
	xfile.ErrInvalidPath,
}

// classify 把参数类错误包装为 usageError，其余原样返回。
func classify(err error) error {
	for _, target := range argumentErrors {
		if errors.Is(err, target) {
			return usage(err)
		}
	}
	return err
}

// cliUsageMessages urfave/cli 参数解析错误的特征消息。
var cliUsageMessages = []string{
	"flag provided but not defined",
	"flag needs an argument",
	"invalid value",
	"Required flag",
	"No help topic",
}

// isCLIUsageError 判断错误是否来自 CLI 框架的参数解析。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, m := range cliUsageMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
