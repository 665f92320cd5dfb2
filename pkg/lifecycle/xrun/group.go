package xrun

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xviz/pkg/observability/xlog"
)

// Group 管理多个任务的并发运行和协调取消。
//
// Go、Cancel 可并发调用；Wait 只应调用一次。
type Group struct {
	eg       *errgroup.Group
	ctx      context.Context
	causeCtx context.Context
	cancel   context.CancelCauseFunc
	opts     *groupOptions
}

// NewGroup 创建 Group，返回的 context 在任一任务出错或 Cancel 后被取消。
func NewGroup(ctx context.Context, opts ...Option) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	causeCtx, cancel := context.WithCancelCause(ctx)
	eg, egCtx := errgroup.WithContext(causeCtx)
	if options.limit > 0 {
		eg.SetLimit(options.limit)
	}
	return &Group{
		eg:       eg,
		ctx:      egCtx,
		causeCtx: causeCtx,
		cancel:   cancel,
		opts:     options,
	}, egCtx
}

// Go 启动名为 name 的任务。fn 应在 ctx 取消后尽快返回。
func (g *Group) Go(name string, fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		log := g.opts.logger
		attrs := []slog.Attr{slog.String("group", g.opts.name), slog.String("task", name)}

		log.Debug(g.ctx, "task starting", attrs...)
		err := fn(g.ctx)
		switch {
		case err == nil:
			log.Debug(g.ctx, "task done", attrs...)
		case errors.Is(err, context.Canceled):
			log.Debug(g.ctx, "task canceled", attrs...)
		default:
			log.Warn(g.ctx, "task failed", append(attrs, xlog.Err(err))...)
		}
		return err
	})
}

// Wait 等待所有任务结束并返回第一个错误。
//
// 取消导致的 context.Canceled 被过滤；通过 Cancel(cause) 或信号设置的
// 原因会被返回，即使所有任务都返回 nil。
func (g *Group) Wait() error {
	defer g.cancel(nil)

	err := g.eg.Wait()
	if errors.Is(err, context.Canceled) && g.causeCtx.Err() == nil {
		// 任务自身返回的 Canceled，不是 Group 取消
		return err
	}
	if err == nil || errors.Is(err, context.Canceled) {
		if g.causeCtx.Err() != nil {
			if cause := context.Cause(g.causeCtx); cause != nil && !errors.Is(cause, context.Canceled) {
				return cause
			}
		}
		return nil
	}
	return err
}

// Cancel 取消所有任务，cause 会由 Wait 返回。
func (g *Group) Cancel(cause error) {
	g.cancel(cause)
}

// Context 返回 Group 的 context。
func (g *Group) Context() context.Context {
	return g.ctx
}

// watchSignals 在后台监听信号，收到后以 *SignalError 取消 Group。
// 返回的 stop 停止监听并等待监听 goroutine 退出。
func (g *Group) watchSignals() (stop func()) {
	if g.opts.noSignalHandler {
		return func() {}
	}
	signals := g.opts.signals
	if len(signals) == 0 {
		signals = DefaultSignals()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, signals...)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case sig := <-sigCh:
			g.opts.logger.Info(g.ctx, "received signal",
				slog.String("group", g.opts.name),
				slog.String("signal", sig.String()),
			)
			g.cancel(&SignalError{Signal: sig})
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
		wg.Wait()
	}
}

// Task 一个具名任务。
type Task struct {
	Name string
	Fn   func(ctx context.Context) error
}

// Run 并发运行 tasks 并监听退出信号，所有任务结束后返回。
// 被信号中断时返回 *SignalError（errors.Is(err, ErrSignal) 为 true）。
func Run(ctx context.Context, tasks []Task, opts ...Option) error {
	g, _ := NewGroup(ctx, opts...)
	stop := g.watchSignals()
	defer stop()

	for _, t := range tasks {
		g.Go(t.Name, t.Fn)
	}
	return g.Wait()
}
