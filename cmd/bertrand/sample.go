package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/plot"

	"github.com/omeyang/xviz/pkg/config/xconf"
	"github.com/omeyang/xviz/pkg/lifecycle/xrun"
	"github.com/omeyang/xviz/pkg/observability/xlog"
	"github.com/omeyang/xviz/pkg/observability/xmetrics"
	"github.com/omeyang/xviz/pkg/sim/xchord"
	"github.com/omeyang/xviz/pkg/viz/xplot"
)

// sampler 一次 bertrand 运行的共享状态。
type sampler struct {
	settings xconf.Settings
	n        int
	plots    bool
	colors   map[xchord.Method]color.NRGBA
	logger   xlog.Logger
	obs      xmetrics.Observer

	mu      sync.Mutex
	bar     *pb.ProgressBar
	results map[xchord.Method]xchord.Summary
	written []string
}

func sampleAction(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return classify(err)
	}
	n, err := parseCount(cmd, s.Samples)
	if err != nil {
		return err
	}
	s.Samples = n

	methods, err := parseMethods(cmd.StringSlice("method"))
	if err != nil {
		return classify(err)
	}
	colors, err := resolveColors(s)
	if err != nil {
		return classify(err)
	}
	logger, cleanup, err := newLogger(s, stderr)
	if err != nil {
		return classify(err)
	}
	defer func() { _ = cleanup() }()

	obs, err := xmetrics.NewOTelObserver()
	if err != nil {
		return err
	}

	smp := &sampler{
		settings: s,
		n:        n,
		plots:    !cmd.Bool("no-plots"),
		colors:   colors,
		logger:   logger,
		obs:      obs,
		results:  make(map[xchord.Method]xchord.Summary, len(methods)),
	}
	if cmd.Bool("progress") {
		smp.bar = pb.New64(progressTotal(n, len(methods))).SetWriter(stderr)
		smp.bar.Start()
	}

	ctx = xlog.WithRunID(ctx, xlog.NewRunID())
	logger.Info(ctx, "run starting",
		xlog.Samples(n),
		xlog.Seed(s.Seed),
		xlog.Path(s.OutDir),
	)

	tasks := make([]xrun.Task, 0, len(methods))
	for _, m := range methods {
		tasks = append(tasks, xrun.Task{
			Name: m.String(),
			Fn:   func(ctx context.Context) error { return smp.runMethod(ctx, m) },
		})
	}
	err = xrun.Run(ctx, tasks, xrun.WithName("bertrand"), xrun.WithLogger(logger))
	if smp.bar != nil {
		smp.bar.Finish()
	}
	if err != nil {
		return err
	}

	smp.report(stdout, methods)
	return nil
}

// progressTotal 返回进度条总量，按 int64 计算避免溢出。
func progressTotal(n, methods int) int64 {
	return int64(n) * int64(methods)
}

// methodSeed 为每种方法派生独立的种子，方法之间互不影响。
func methodSeed(seed int64, m xchord.Method) int64 {
	return xchord.DeriveRand(xchord.NewRand(seed), uint64(m.Index())).Int63()
}

// runMethod 采样、估计并渲染一种方法。
func (s *sampler) runMethod(ctx context.Context, m xchord.Method) (err error) {
	ctx = xlog.WithMethod(ctx, m.String())
	ctx, span := xmetrics.Start(ctx, s.obs, xmetrics.SpanOptions{
		Component: "bertrand",
		Operation: "sample",
		Attrs: []xmetrics.Attr{
			{Key: "method", Value: m.String()},
			{Key: "samples", Value: s.n},
		},
	})
	var sum xchord.Summary
	defer func() {
		span.End(xmetrics.Result{
			Err:   err,
			Attrs: []xmetrics.Attr{{Key: "estimate", Value: sum.P}},
		})
	}()

	start := time.Now()
	impl, err := xchord.NewSampler(m)
	if err != nil {
		return err
	}
	set, err := xchord.SampleParallel(ctx, methodSeed(s.settings.Seed, m), impl, s.n,
		xchord.WithWorkers(s.settings.Workers),
		xchord.WithProgress(func(k int) {
			s.obs.AddChords(ctx, m.String(), int64(k))
			if s.bar != nil {
				s.bar.Add(k)
			}
		}),
	)
	if err != nil {
		return err
	}

	sum, err = xchord.Summarize(set)
	if err != nil {
		return err
	}
	s.obs.RecordEstimate(ctx, m.String(), sum.P)
	s.logger.Info(ctx, "estimate",
		xlog.Samples(sum.N),
		xlog.Estimate(sum.P),
		xlog.Theory(sum.Theory),
		xlog.StdErr(sum.StdErr),
		xlog.Duration(time.Since(start)),
	)

	s.mu.Lock()
	s.results[m] = sum
	s.mu.Unlock()

	if !s.plots {
		return nil
	}
	return s.render(ctx, sum, set)
}

// render 写出一种方法的三张图。
func (s *sampler) render(ctx context.Context, sum xchord.Summary, set xchord.SampleSet) error {
	c := s.colors[sum.Method]
	figures := []struct {
		kind string
		draw func() (*plot.Plot, error)
	}{
		{"chords", func() (*plot.Plot, error) {
			return xplot.Chords(sum, set, c, xplot.WithCircle(s.settings.Circle))
		}},
		{"midpoints", func() (*plot.Plot, error) {
			return xplot.Midpoints(sum, set, c, xplot.WithCircle(s.settings.Circle))
		}},
		{"lengths", func() (*plot.Plot, error) {
			return xplot.Lengths(sum, set, c)
		}},
	}

	for _, f := range figures {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := f.draw()
		if err != nil {
			return fmt.Errorf("render %s %s: %w", sum.Method, f.kind, err)
		}
		path, err := xplot.Save(p, s.settings.OutDir, xplot.FileName(sum.Method.String(), f.kind), xplot.DefaultSize)
		if err != nil {
			return err
		}
		s.logger.Debug(ctx, "figure written", xlog.Path(path))

		s.mu.Lock()
		s.written = append(s.written, path)
		s.mu.Unlock()
	}
	return nil
}

// report 按方法顺序输出汇总表和写出的文件。
func (s *sampler) report(w io.Writer, methods []xchord.Method) {
	for _, m := range methods {
		sum := s.results[m]
		fmt.Fprintf(w, "%s  (%-9s N=%d, theory %.3f, stderr %.4f)\n",
			sum.Title(), sum.Method, sum.N, sum.Theory, sum.StdErr)
	}
	slices.Sort(s.written)
	for _, path := range s.written {
		fmt.Fprintf(w, "wrote %s\n", path)
	}
}
