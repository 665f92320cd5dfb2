package xchord

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_Errors(t *testing.T) {
	r := NewRand(1)

	_, err := Sample(nil, Endpoints{}, 10)
	assert.ErrorIs(t, err, ErrNilRand)

	_, err = Sample(r, nil, 10)
	assert.ErrorIs(t, err, ErrNilSampler)

	_, err = Sample(r, Endpoints{}, 0)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = Sample(r, Endpoints{}, -5)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestSample_SingleChord(t *testing.T) {
	for _, m := range Methods() {
		t.Run(string(m), func(t *testing.T) {
			s, err := NewSampler(m)
			require.NoError(t, err)

			set, err := Sample(NewRand(3), s, 1)
			require.NoError(t, err)
			require.Equal(t, 1, set.Len())
			assert.Equal(t, m, set.Method)

			p, err := Estimate(set.Chords)
			require.NoError(t, err)
			assert.Contains(t, []float64{0, 1}, p)
		})
	}
}

func TestSample_Deterministic(t *testing.T) {
	a, err := Sample(NewRand(99), Midpoint{}, 500)
	require.NoError(t, err)
	b, err := Sample(NewRand(99), Midpoint{}, 500)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Sample(NewRand(100), Midpoint{}, 500)
	require.NoError(t, err)
	assert.NotEqual(t, a.Chords, c.Chords)
}

func TestNewRand_ZeroSeed(t *testing.T) {
	assert.Equal(t, NewRand(defaultSeed).Int63(), NewRand(0).Int63())
}

func TestDeriveRand(t *testing.T) {
	// 相同父流 + 相同 stream -> 相同子流
	a := DeriveRand(NewRand(5), 1)
	b := DeriveRand(NewRand(5), 1)
	assert.Equal(t, a.Int63(), b.Int63())

	// 不同 stream -> 不同子流
	c := DeriveRand(NewRand(5), 2)
	assert.NotEqual(t, DeriveRand(NewRand(5), 1).Int63(), c.Int63())

	// 同一 base 连续派生会消耗父流，即使 stream 相同也不同
	base := NewRand(5)
	d1 := DeriveRand(base, 0)
	d2 := DeriveRand(base, 0)
	assert.NotEqual(t, d1.Int63(), d2.Int63())

	// nil base 使用默认父种子
	assert.Equal(t, DeriveRand(nil, 4).Int63(), DeriveRand(nil, 4).Int63())
}

func TestSampleParallel_Deterministic(t *testing.T) {
	ctx := context.Background()
	a, err := SampleParallel(ctx, 11, Radial{}, 10001, WithWorkers(4))
	require.NoError(t, err)
	b, err := SampleParallel(ctx, 11, Radial{}, 10001, WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, 10001, a.Len())
	assert.Equal(t, MethodRadial, a.Method)
	assert.Equal(t, a.Chords, b.Chords)
}

func TestSampleParallel_IndependentOfWorkers(t *testing.T) {
	ctx := context.Background()
	n := 3*blockSize + 17

	want, err := SampleParallel(ctx, 42, Endpoints{}, n, WithWorkers(1))
	require.NoError(t, err)
	require.Equal(t, n, want.Len())

	for _, w := range []int{0, 2, 3, 8, 64} {
		got, err := SampleParallel(ctx, 42, Endpoints{}, n, WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, want.Chords, got.Chords, "workers=%d", w)
	}

	other, err := SampleParallel(ctx, 43, Endpoints{}, n, WithWorkers(3))
	require.NoError(t, err)
	assert.NotEqual(t, want.Chords, other.Chords)
}

func TestSampleParallel_BlockStreams(t *testing.T) {
	ctx := context.Background()
	n := blockSize + 10
	set, err := SampleParallel(ctx, 7, Midpoint{}, n, WithWorkers(2))
	require.NoError(t, err)

	// 每块与 DeriveRand(NewRand(seed), 块号) 的顺序采样一致
	first, err := Sample(DeriveRand(NewRand(7), 0), Midpoint{}, blockSize)
	require.NoError(t, err)
	second, err := Sample(DeriveRand(NewRand(7), 1), Midpoint{}, 10)
	require.NoError(t, err)

	assert.Equal(t, first.Chords, set.Chords[:blockSize])
	assert.Equal(t, second.Chords, set.Chords[blockSize:])
}

func TestSampleParallel_MoreWorkersThanChords(t *testing.T) {
	set, err := SampleParallel(context.Background(), 1, Endpoints{}, 3, WithWorkers(16))
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	for _, c := range set.Chords {
		assert.InDelta(t, 1.0, c.A.Norm(), unitTol)
	}
}

func TestSampleParallel_Progress(t *testing.T) {
	var total atomic.Int64
	_, err := SampleParallel(context.Background(), 2, Endpoints{}, 20000,
		WithWorkers(3),
		WithProgress(func(n int) { total.Add(int64(n)) }),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), total.Load())
}

func TestSampleParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SampleParallel(ctx, 1, Endpoints{}, 1000, WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSampleParallel_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := SampleParallel(ctx, 1, nil, 10)
	assert.ErrorIs(t, err, ErrNilSampler)

	_, err = SampleParallel(ctx, 1, Endpoints{}, 0)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestSampleSet_Views(t *testing.T) {
	set := SampleSet{
		Method: MethodEndpoints,
		Chords: []Chord{
			{A: Point{X: 0, Y: 1}, B: Point{X: 0, Y: -1}},
			{A: Point{X: 1, Y: 0}, B: Point{X: 0, Y: 1}},
		},
	}

	lengths := set.Lengths()
	require.Len(t, lengths, 2)
	assert.InDelta(t, 2.0, lengths[0], unitTol)
	assert.InDelta(t, 1.4142135623, lengths[1], 1e-9)

	assert.Equal(t, []Point{{X: 0, Y: 0}, {X: 0.5, Y: 0.5}}, set.Midpoints())
	assert.Equal(t, [][2][2]float64{{{0, 1}, {0, -1}}, {{1, 0}, {0, 1}}}, set.Endpoints())
}
