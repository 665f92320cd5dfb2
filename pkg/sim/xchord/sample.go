package xchord

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SampleSet 一次采样运行产生的有序弦序列。
type SampleSet struct {
	Method Method
	Chords []Chord
}

// Len 返回弦数量。
func (s SampleSet) Len() int {
	return len(s.Chords)
}

// Lengths 返回每条弦的长度。
func (s SampleSet) Lengths() []float64 {
	out := make([]float64, len(s.Chords))
	for i, c := range s.Chords {
		out[i] = c.Length()
	}
	return out
}

// Midpoints 返回每条弦的中点。
func (s SampleSet) Midpoints() []Point {
	out := make([]Point, len(s.Chords))
	for i, c := range s.Chords {
		out[i] = c.Midpoint()
	}
	return out
}

// Endpoints 以 N×2×2 的平行数组布局返回端点坐标。
func (s SampleSet) Endpoints() [][2][2]float64 {
	out := make([][2][2]float64, len(s.Chords))
	for i, c := range s.Chords {
		out[i] = c.Endpoints()
	}
	return out
}

// Sample 顺序采样 n 条弦，每条弦调用一次 s.Sample。
func Sample(r *rand.Rand, s Sampler, n int) (SampleSet, error) {
	if r == nil {
		return SampleSet{}, ErrNilRand
	}
	if s == nil {
		return SampleSet{}, ErrNilSampler
	}
	if n < 1 {
		return SampleSet{}, fmt.Errorf("%w: got %d, want >= 1", ErrInvalidCount, n)
	}

	chords := make([]Chord, n)
	for i := range chords {
		chords[i] = s.Sample(r)
	}
	return SampleSet{Method: s.Method(), Chords: chords}, nil
}

// blockSize 并行采样的块大小。每块使用独立随机流，也是检查取消和上报进度的粒度。
const blockSize = 4096

// Option 定义并行采样的配置选项。
type Option func(*options)

type options struct {
	workers  int
	progress func(n int)
}

// WithWorkers 设置 worker 数量。小于 1 时使用 runtime.NumCPU()。
// worker 数量只影响速度，不影响结果。
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithProgress 设置进度回调，参数为本批新增的弦数量。
// 回调会被多个 worker 并发调用，实现方需自行保证并发安全。
func WithProgress(fn func(n int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// SampleParallel 使用多个 worker 并行采样 n 条弦。
//
// n 被切分为大小为 blockSize 的连续块（最后一块可能不满），第 b 块使用
// 与 DeriveRand(NewRand(seed), b) 相同的随机流。worker 依次领取块并写入
// 对应位置，因此结果只由 seed 与 n 决定，与 worker 数量和调度顺序无关。
//
// ctx 取消时返回 ctx.Err()。
func SampleParallel(ctx context.Context, seed int64, s Sampler, n int, opts ...Option) (SampleSet, error) {
	if s == nil {
		return SampleSet{}, ErrNilSampler
	}
	if n < 1 {
		return SampleSet{}, fmt.Errorf("%w: got %d, want >= 1", ErrInvalidCount, n)
	}

	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	blocks := (n + blockSize - 1) / blockSize
	workers := o.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, blocks)

	parent := NewRand(seed).Int63()
	chords := make([]Chord, n)
	var next atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			r := rand.New(rand.NewSource(0))
			for {
				b := int(next.Add(1) - 1)
				if b >= blocks {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				lo := b * blockSize
				hi := min(lo+blockSize, n)
				r.Seed(deriveSeed(parent, uint64(b)))
				for i := lo; i < hi; i++ {
					chords[i] = s.Sample(r)
				}
				if o.progress != nil {
					o.progress(hi - lo)
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return SampleSet{}, err
	}
	return SampleSet{Method: s.Method(), Chords: chords}, nil
}
