package xchord

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Method 采样方法标识，同时用作输出文件名前缀。
type Method string

// 支持的采样方法。
const (
	// MethodEndpoints 随机端点法（方法 1）。
	MethodEndpoints Method = "endpoints"

	// MethodRadial 随机半径点法（方法 2）。
	MethodRadial Method = "radial"

	// MethodMidpoint 随机中点法（方法 3）。
	MethodMidpoint Method = "midpoint"
)

// Methods 按规范顺序返回全部采样方法。
func Methods() []Method {
	return []Method{MethodEndpoints, MethodRadial, MethodMidpoint}
}

// Index 返回方法编号（1~3），未知方法返回 0。
func (m Method) Index() int {
	switch m {
	case MethodEndpoints:
		return 1
	case MethodRadial:
		return 2
	case MethodMidpoint:
		return 3
	default:
		return 0
	}
}

// IsValid 报告方法是否受支持。
func (m Method) IsValid() bool {
	return m.Index() != 0
}

// String 实现 fmt.Stringer。
func (m Method) String() string {
	return string(m)
}

// ParseMethod 解析方法名称，大小写不敏感。
// 支持 endpoints/radial/midpoint 以及数字别名 1/2/3。
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "endpoints", "1":
		return MethodEndpoints, nil
	case "radial", "2":
		return MethodRadial, nil
	case "midpoint", "3":
		return MethodMidpoint, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Sampler 采样策略：每次调用产生一条弦。
//
// 实现必须只通过参数 r 获取随机数，不持有可变状态，
// 因此同一个 Sampler 值可以被多个 goroutine 并发使用（各自持有独立的 r）。
type Sampler interface {
	// Method 返回策略对应的方法标识。
	Method() Method

	// Sample 使用 r 产生一条弦。
	Sample(r *rand.Rand) Chord
}

// 编译时接口检查
var (
	_ Sampler = Endpoints{}
	_ Sampler = Radial{}
	_ Sampler = Midpoint{}
)

// NewSampler 根据方法标识构建采样器。
func NewSampler(m Method) (Sampler, error) {
	switch m {
	case MethodEndpoints:
		return Endpoints{}, nil
	case MethodRadial:
		return Radial{}, nil
	case MethodMidpoint:
		return Midpoint{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(m))
	}
}

// Endpoints 随机端点法：两个端点角度在 [0, 2π) 上独立均匀分布。
type Endpoints struct{}

// Method 实现 Sampler。
func (Endpoints) Method() Method { return MethodEndpoints }

// Sample 实现 Sampler。
func (Endpoints) Sample(r *rand.Rand) Chord {
	a := 2 * math.Pi * r.Float64()
	b := 2 * math.Pi * r.Float64()
	return chordFromAngles(a, b)
}

// Radial 随机半径点法：随机方向 φ 上距圆心 m（[0,1) 均匀）处作垂线，
// 端点位于 φ ± arccos(m)。
//
// m = 0 时为直径；m 趋近 1 时弦长趋近 0。
type Radial struct{}

// Method 实现 Sampler。
func (Radial) Method() Method { return MethodRadial }

// Sample 实现 Sampler。
func (Radial) Sample(r *rand.Rand) Chord {
	phi := 2 * math.Pi * r.Float64()
	return chordAt(phi, r.Float64())
}

// Midpoint 随机中点法：与 [Radial] 相同，但 m 取均匀变量的平方根，
// 使弦中点在圆盘面积上均匀分布。
type Midpoint struct{}

// Method 实现 Sampler。
func (Midpoint) Method() Method { return MethodMidpoint }

// Sample 实现 Sampler。
func (Midpoint) Sample(r *rand.Rand) Chord {
	phi := 2 * math.Pi * r.Float64()
	return chordAt(phi, math.Sqrt(r.Float64()))
}

// chordAt 返回垂直于方向 phi、距圆心 m 的弦。
func chordAt(phi, m float64) Chord {
	half := math.Acos(m)
	return chordFromAngles(phi+half, phi-half)
}
