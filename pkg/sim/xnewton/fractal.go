package xnewton

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Limits 复平面上的矩形视窗。
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultLimits 返回以原点为中心、覆盖全部根的对称视窗，
// 边长为根实部/虚部绝对值最大者的 1.15 倍。
func DefaultLimits(roots []complex128) Limits {
	lim := 0.0
	for _, r := range roots {
		lim = math.Max(lim, math.Max(math.Abs(real(r)), math.Abs(imag(r))))
	}
	lim *= 1.15
	if lim == 0 {
		lim = 1
	}
	return Limits{XMin: -lim, XMax: lim, YMin: -lim, YMax: lim}
}

// Frames 在 start 与 end 之间线性插值生成 n 个视窗（含首尾）。
// n < 2 时仅返回 start。
func Frames(start, end Limits, n int) []Limits {
	if n < 2 {
		return []Limits{start}
	}
	out := make([]Limits, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = Limits{
			XMin: lerp(start.XMin, end.XMin, t),
			XMax: lerp(start.XMax, end.XMax, t),
			YMin: lerp(start.YMin, end.YMin, t),
			YMax: lerp(start.YMax, end.YMax, t),
		}
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// linspace 返回 [lo, hi] 上 n 个等距点（含端点）。
func linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// Grid 返回 n×n 的起点网格，按行优先排列：
// 第 i 行虚部为 YMin..YMax 的第 i 个值，第 j 列实部为 XMin..XMax 的第 j 个值。
func Grid(n int, lim Limits) ([]complex128, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, n)
	}
	xs := linspace(lim.XMin, lim.XMax, n)
	ys := linspace(lim.YMin, lim.YMax, n)
	out := make([]complex128, 0, n*n)
	for _, y := range ys {
		for _, x := range xs {
			out = append(out, complex(x, y))
		}
	}
	return out, nil
}

// ClosestRoot 返回距 z 最近的根的下标。roots 为空时返回 -1。
func ClosestRoot(z complex128, roots []complex128) int {
	best, idx := math.Inf(1), -1
	for i, r := range roots {
		if d := cmplx.Abs(r - z); d < best {
			best, idx = d, i
		}
	}
	return idx
}

// Basins 对网格上每个起点执行 iterations 步 Newton 迭代，
// 返回每个点收敛到的最近根下标。结果与 grid 一一对应。
//
// 网格按块并行处理，ctx 取消时返回 ctx.Err()。
func Basins(ctx context.Context, p Polynomial, grid []complex128, iterations int, roots []complex128) ([]int, error) {
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}
	out := make([]int, len(grid))
	if len(grid) == 0 {
		return out, nil
	}

	dp := p.Derivative()
	workers := min(runtime.NumCPU(), len(grid))
	per := (len(grid) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(grid); lo += per {
		hi := min(lo+per, len(grid))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				z := iterate(p, dp, grid[i], iterations)
				out[i] = ClosestRoot(z, roots)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
