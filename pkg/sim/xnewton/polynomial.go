package xnewton

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Polynomial 复系数多项式，Coeffs 按降幂排列：
// Coeffs[0]·z^n + Coeffs[1]·z^(n-1) + ... + Coeffs[n]。
type Polynomial struct {
	Coeffs []complex128
}

// New 创建多项式，去掉前导零系数。次数小于 1 返回 [ErrDegree]。
func New(coeffs ...complex128) (Polynomial, error) {
	i := 0
	for i < len(coeffs) && coeffs[i] == 0 {
		i++
	}
	trimmed := append([]complex128(nil), coeffs[i:]...)
	if len(trimmed) < 2 {
		return Polynomial{}, fmt.Errorf("%w: got %d coefficients", ErrDegree, len(trimmed))
	}
	return Polynomial{Coeffs: trimmed}, nil
}

// FromReal 用实系数创建多项式。
func FromReal(coeffs ...float64) (Polynomial, error) {
	c := make([]complex128, len(coeffs))
	for i, v := range coeffs {
		c[i] = complex(v, 0)
	}
	return New(c...)
}

// DemoReal 2x³ + 5x² − 14x − 2，三个实根。
func DemoReal() Polynomial {
	return Polynomial{Coeffs: []complex128{2, 5, -14, -2}}
}

// DemoComplex z⁵ + z² − z + 1，兼有实根和复根。
func DemoComplex() Polynomial {
	return Polynomial{Coeffs: []complex128{1, 0, 0, 1, -1, 1}}
}

// Degree 返回多项式次数。
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Eval 用 Horner 法计算 p(z)。
func (p Polynomial) Eval(z complex128) complex128 {
	var acc complex128
	for _, c := range p.Coeffs {
		acc = acc*z + c
	}
	return acc
}

// Derivative 返回导数多项式。常数多项式的导数为零多项式（Coeffs 为 [0]）。
func (p Polynomial) Derivative() Polynomial {
	n := p.Degree()
	if n < 1 {
		return Polynomial{Coeffs: []complex128{0}}
	}
	d := make([]complex128, n)
	for i := 0; i < n; i++ {
		d[i] = p.Coeffs[i] * complex(float64(n-i), 0)
	}
	return Polynomial{Coeffs: d}
}

// Step 执行一步 Newton 迭代 z − p(z)/p'(z)。
// 导数为零时返回 z 本身，ok 为 false。
func (p Polynomial) Step(z complex128) (next complex128, ok bool) {
	return step(p, p.Derivative(), z)
}

func step(p, dp Polynomial, z complex128) (complex128, bool) {
	d := dp.Eval(z)
	if d == 0 {
		return z, false
	}
	next := z - p.Eval(z)/d
	if cmplx.IsNaN(next) || cmplx.IsInf(next) {
		return z, false
	}
	return next, true
}

// Iterate 从 z 开始执行 n 步 Newton 迭代。遇到零导数时提前停止。
func (p Polynomial) Iterate(z complex128, n int) complex128 {
	return iterate(p, p.Derivative(), z, n)
}

func iterate(p, dp Polynomial, z complex128, n int) complex128 {
	for i := 0; i < n; i++ {
		next, ok := step(p, dp, z)
		if !ok {
			return z
		}
		z = next
	}
	return z
}

// TangentLine 返回实数 x 处切线 y = m·x + b 的斜率与截距（取实部）。
func (p Polynomial) TangentLine(x float64) (m, b float64) {
	z := complex(x, 0)
	m = real(p.Derivative().Eval(z))
	b = real(p.Eval(z)) - m*x
	return m, b
}

// Roots 求全部复根。
//
// 先按 New 的规则去掉前导零系数，次数小于 1 返回 [ErrDegree]。
// 实系数多项式取伴随矩阵的特征值；含复系数时用 Durand-Kerner 迭代。
func (p Polynomial) Roots() ([]complex128, error) {
	q, err := New(p.Coeffs...)
	if err != nil {
		return nil, err
	}
	n := q.Degree()
	if n == 1 {
		return []complex128{-q.Coeffs[1] / q.Coeffs[0]}, nil
	}
	if !isReal(q.Coeffs) {
		return durandKerner(q)
	}

	// 首一化后构造伴随矩阵：第一行为 -a_i/a_0，次对角线为 1
	lead := real(q.Coeffs[0])
	companion := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		companion.Set(0, j, -real(q.Coeffs[j+1])/lead)
	}
	for i := 1; i < n; i++ {
		companion.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil, ErrEigen
	}
	return eig.Values(nil), nil
}

func isReal(coeffs []complex128) bool {
	for _, c := range coeffs {
		if imag(c) != 0 {
			return false
		}
	}
	return true
}

const (
	rootMaxIter = 1000
	rootTol     = 1e-14
)

// durandKerner 同时迭代全部根。初值分布在 Cauchy 上界半径的圆上，
// 相位错开以避免与实轴对称。q 的次数至少为 1。
func durandKerner(q Polynomial) ([]complex128, error) {
	n := q.Degree()
	lead := q.Coeffs[0]
	monic := make([]complex128, len(q.Coeffs))
	bound := 0.0
	for i, c := range q.Coeffs {
		monic[i] = c / lead
		if i > 0 {
			bound = math.Max(bound, cmplx.Abs(monic[i]))
		}
	}
	m := Polynomial{Coeffs: monic}
	radius := 1 + bound

	z := make([]complex128, n)
	for k := range z {
		z[k] = cmplx.Rect(radius, 2*math.Pi*float64(k)/float64(n)+0.4)
	}

	for iter := 0; iter < rootMaxIter; iter++ {
		delta := 0.0
		for i := range z {
			den := complex(1, 0)
			for j := range z {
				if j != i {
					den *= z[i] - z[j]
				}
			}
			if den == 0 {
				// 两个近似根重合，轻微扰动后继续
				z[i] += complex(rootTol*radius, rootTol*radius)
				delta = math.Inf(1)
				continue
			}
			d := m.Eval(z[i]) / den
			z[i] -= d
			delta = math.Max(delta, cmplx.Abs(d))
		}
		if delta <= rootTol*radius {
			return z, nil
		}
	}
	return nil, fmt.Errorf("%w: after %d iterations", ErrNoConvergence, rootMaxIter)
}
