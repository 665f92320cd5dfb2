package xchord

import "math"

// Threshold 单位圆内接正三角形的边长 √3，弦长严格大于此值视为"长弦"。
var Threshold = math.Sqrt(3)

// Point 二维笛卡尔坐标点。
type Point struct {
	X float64
	Y float64
}

// OnCircle 返回角度 theta（弧度）对应的单位圆上的点 (sin θ, cos θ)。
func OnCircle(theta float64) Point {
	s, c := math.Sincos(theta)
	return Point{X: s, Y: c}
}

// Norm 返回点到原点的距离。
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Chord 单位圆上的一条弦，由两个端点确定。
type Chord struct {
	A Point
	B Point
}

// chordFromAngles 由两个端点角度构造弦。
func chordFromAngles(a, b float64) Chord {
	return Chord{A: OnCircle(a), B: OnCircle(b)}
}

// Length 返回弦长（两端点的欧氏距离）。
func (c Chord) Length() float64 {
	return math.Hypot(c.B.X-c.A.X, c.B.Y-c.A.Y)
}

// Midpoint 返回弦的中点。
func (c Chord) Midpoint() Point {
	return Point{X: (c.A.X + c.B.X) / 2, Y: (c.A.Y + c.B.Y) / 2}
}

// Long 报告弦长是否严格大于 [Threshold]。
func (c Chord) Long() bool {
	return c.Length() > Threshold
}

// Endpoints 以 [2][2]float64 形式返回两个端点坐标。
func (c Chord) Endpoints() [2][2]float64 {
	return [2][2]float64{{c.A.X, c.A.Y}, {c.B.X, c.B.Y}}
}
