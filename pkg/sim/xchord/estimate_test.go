package xchord

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_Empty(t *testing.T) {
	_, err := Estimate(nil)
	assert.ErrorIs(t, err, ErrEmptySample)

	_, err = EstimateEndpoints(nil)
	assert.ErrorIs(t, err, ErrEmptySample)

	_, err = Summarize(SampleSet{Method: MethodRadial})
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestEstimate_Fixed(t *testing.T) {
	chords := []Chord{
		chordFromAngles(0, math.Pi),       // 直径，长弦
		chordFromAngles(0, 0.1),           // 短弦
		chordFromAngles(1, 1+math.Pi*0.9), // 长弦
		chordFromAngles(2, 2.5),           // 短弦
	}
	snapshot := append([]Chord(nil), chords...)

	p1, err := Estimate(chords)
	require.NoError(t, err)
	p2, err := Estimate(chords)
	require.NoError(t, err)

	assert.Equal(t, 0.5, p1)
	assert.Equal(t, p1, p2, "estimator must be idempotent")
	assert.Equal(t, snapshot, chords, "estimator must not mutate input")
}

func TestEstimateEndpoints_MatchesEstimate(t *testing.T) {
	set, err := Sample(NewRand(8), Endpoints{}, 2000)
	require.NoError(t, err)

	p, err := Estimate(set.Chords)
	require.NoError(t, err)
	q, err := EstimateEndpoints(set.Endpoints())
	require.NoError(t, err)
	assert.Equal(t, p, q)
}

func TestEstimate_Range(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100, 1000} {
		for _, m := range Methods() {
			s, err := NewSampler(m)
			require.NoError(t, err)
			set, err := Sample(NewRand(int64(n)), s, n)
			require.NoError(t, err)
			p, err := Estimate(set.Chords)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
	}
}

func TestEstimate_Convergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical test in short mode")
	}
	const n = 20000
	for _, m := range Methods() {
		t.Run(string(m), func(t *testing.T) {
			s, err := NewSampler(m)
			require.NoError(t, err)
			set, err := Sample(NewRand(2024), s, n)
			require.NoError(t, err)
			p, err := Estimate(set.Chords)
			require.NoError(t, err)
			assert.InDelta(t, Theoretical(m), p, 0.05)
		})
	}
}

func TestEstimate_EndpointsSeeded(t *testing.T) {
	set, err := Sample(NewRand(12345), Endpoints{}, 100000)
	require.NoError(t, err)
	p, err := Estimate(set.Chords)
	require.NoError(t, err)
	assert.InDelta(t, 0.333, p, 0.01)
}

func TestEstimate_ParallelConvergence(t *testing.T) {
	set, err := SampleParallel(context.Background(), 77, Midpoint{}, 40000, WithWorkers(4))
	require.NoError(t, err)
	sum, err := Summarize(set)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, sum.P, 0.05)
}

func TestTheoretical(t *testing.T) {
	assert.InDelta(t, 1.0/3, Theoretical(MethodEndpoints), 1e-15)
	assert.Equal(t, 0.5, Theoretical(MethodRadial))
	assert.Equal(t, 0.25, Theoretical(MethodMidpoint))
	assert.True(t, math.IsNaN(Theoretical("bogus")))
}

func TestSummarize(t *testing.T) {
	set := SampleSet{
		Method: MethodEndpoints,
		Chords: []Chord{
			chordFromAngles(0, math.Pi),
			chordFromAngles(0, 0.1),
			chordFromAngles(0, 0.2),
			chordFromAngles(0, 0.3),
		},
	}
	sum, err := Summarize(set)
	require.NoError(t, err)

	assert.Equal(t, MethodEndpoints, sum.Method)
	assert.Equal(t, 4, sum.N)
	assert.Equal(t, 1, sum.Long)
	assert.Equal(t, 0.25, sum.P)
	assert.InDelta(t, math.Sqrt(0.25*0.75/4), sum.StdErr, 1e-15)
	assert.InDelta(t, 0.25-1.0/3, sum.Deviation(), 1e-15)
	assert.Equal(t, "Method #1 | P = 0.250", sum.Title())
}
