package xnewton

import (
	"context"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLimits(t *testing.T) {
	lim := DefaultLimits([]complex128{1, -2 + 0.5i, 0.3 - 1i})
	assert.InDelta(t, -2.3, lim.XMin, 1e-12)
	assert.InDelta(t, 2.3, lim.XMax, 1e-12)
	assert.InDelta(t, -2.3, lim.YMin, 1e-12)
	assert.InDelta(t, 2.3, lim.YMax, 1e-12)

	assert.Equal(t, Limits{XMin: -1, XMax: 1, YMin: -1, YMax: 1}, DefaultLimits(nil))
}

func TestFrames(t *testing.T) {
	start := Limits{XMin: -2, XMax: 2, YMin: -2, YMax: 2}
	end := Limits{XMin: -1, XMax: 0, YMin: 0, YMax: 1}

	frames := Frames(start, end, 5)
	require.Len(t, frames, 5)
	assert.Equal(t, start, frames[0])
	assert.Equal(t, end, frames[4])
	assert.InDelta(t, -1.5, frames[2].XMin, 1e-12)
	assert.InDelta(t, 1.0, frames[2].XMax, 1e-12)

	assert.Equal(t, []Limits{start}, Frames(start, end, 1))
}

func TestGrid(t *testing.T) {
	grid, err := Grid(3, Limits{XMin: -1, XMax: 1, YMin: -2, YMax: 2})
	require.NoError(t, err)
	require.Len(t, grid, 9)
	assert.Equal(t, complex(-1, -2), grid[0])
	assert.Equal(t, complex(1, -2), grid[2])
	assert.Equal(t, complex(0, 0), grid[4])
	assert.Equal(t, complex(1, 2), grid[8])

	one, err := Grid(1, Limits{XMin: 5, XMax: 6, YMin: 7, YMax: 8})
	require.NoError(t, err)
	assert.Equal(t, []complex128{complex(5, 7)}, one)

	_, err = Grid(0, Limits{})
	assert.ErrorIs(t, err, ErrGridSize)
}

func TestClosestRoot(t *testing.T) {
	roots := []complex128{1, -1, 1i}
	assert.Equal(t, 0, ClosestRoot(0.9, roots))
	assert.Equal(t, 1, ClosestRoot(-3, roots))
	assert.Equal(t, 2, ClosestRoot(0.1+2i, roots))
	assert.Equal(t, -1, ClosestRoot(0, nil))
}

func TestBasins(t *testing.T) {
	// z² - 1：右半平面收敛到 1，左半平面收敛到 -1
	p, err := FromReal(1, 0, -1)
	require.NoError(t, err)
	roots, err := p.Roots()
	require.NoError(t, err)

	grid := []complex128{2, 0.5 + 0.3i, -2, -0.5 - 0.3i}
	basins, err := Basins(context.Background(), p, grid, 40, roots)
	require.NoError(t, err)
	require.Len(t, basins, 4)

	for i, z := range grid {
		target := roots[basins[i]]
		if real(z) > 0 {
			assert.InDelta(t, 1, real(target), 1e-9)
		} else {
			assert.InDelta(t, -1, real(target), 1e-9)
		}
	}
}

func TestBasins_AllConverge(t *testing.T) {
	p := DemoComplex()
	roots, err := p.Roots()
	require.NoError(t, err)
	grid, err := Grid(40, DefaultLimits(roots))
	require.NoError(t, err)

	basins, err := Basins(context.Background(), p, grid, 50, roots)
	require.NoError(t, err)
	require.Len(t, basins, len(grid))

	seen := map[int]bool{}
	for _, b := range basins {
		require.GreaterOrEqual(t, b, 0)
		require.Less(t, b, len(roots))
		seen[b] = true
	}
	assert.GreaterOrEqual(t, len(seen), 3)
	for _, r := range roots {
		assert.InDelta(t, 0, cmplx.Abs(p.Eval(r)), 1e-8)
	}
}

func TestBasins_Errors(t *testing.T) {
	_, err := Basins(context.Background(), DemoReal(), []complex128{1}, 5, nil)
	assert.ErrorIs(t, err, ErrNoRoots)

	out, err := Basins(context.Background(), DemoReal(), nil, 5, []complex128{1})
	require.NoError(t, err)
	assert.Empty(t, out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Basins(ctx, DemoReal(), make([]complex128, 10), 5, []complex128{1})
	assert.ErrorIs(t, err, context.Canceled)
}
