package xchord

import (
	"fmt"
	"math"
)

// Estimate 返回弦长严格大于 √3 的弦所占比例，结果位于 [0, 1]。
// chords 为空时返回 [ErrEmptySample]。不修改输入。
func Estimate(chords []Chord) (float64, error) {
	if len(chords) == 0 {
		return 0, ErrEmptySample
	}
	return float64(countLong(chords)) / float64(len(chords)), nil
}

// EstimateEndpoints 与 [Estimate] 相同，但接收 N×2×2 平行数组布局：
// ends[i][j] 为第 i 条弦第 j 个端点的 (x, y)。
func EstimateEndpoints(ends [][2][2]float64) (float64, error) {
	if len(ends) == 0 {
		return 0, ErrEmptySample
	}
	long := 0
	for _, e := range ends {
		if math.Hypot(e[1][0]-e[0][0], e[1][1]-e[0][1]) > Threshold {
			long++
		}
	}
	return float64(long) / float64(len(ends)), nil
}

func countLong(chords []Chord) int {
	long := 0
	for _, c := range chords {
		if c.Long() {
			long++
		}
	}
	return long
}

// Theoretical 返回方法对应的经典理论概率；未知方法返回 NaN。
func Theoretical(m Method) float64 {
	switch m {
	case MethodEndpoints:
		return 1.0 / 3
	case MethodRadial:
		return 1.0 / 2
	case MethodMidpoint:
		return 1.0 / 4
	default:
		return math.NaN()
	}
}

// Summary 一次采样运行的估计结果。
type Summary struct {
	Method Method
	N      int
	Long   int
	P      float64
	Theory float64

	// StdErr 二项分布标准误差 √(P(1-P)/N)。
	StdErr float64
}

// Summarize 计算样本集的估计摘要。
func Summarize(set SampleSet) (Summary, error) {
	n := set.Len()
	if n == 0 {
		return Summary{}, fmt.Errorf("%w: method %s", ErrEmptySample, set.Method)
	}
	long := countLong(set.Chords)
	p := float64(long) / float64(n)
	return Summary{
		Method: set.Method,
		N:      n,
		Long:   long,
		P:      p,
		Theory: Theoretical(set.Method),
		StdErr: math.Sqrt(p * (1 - p) / float64(n)),
	}, nil
}

// Deviation 返回估计值与理论值之差。
func (s Summary) Deviation() float64 {
	return s.P - s.Theory
}

// Title 返回图表标题，如 "Method #1 | P = 0.333"。
func (s Summary) Title() string {
	return fmt.Sprintf("Method #%d | P = %.3f", s.Method.Index(), s.P)
}
