package xnewton

import "errors"

var (
	// ErrDegree 表示多项式次数小于 1（去掉前导零后）。
	ErrDegree = errors.New("xnewton: polynomial degree must be >= 1")

	// ErrEigen 表示伴随矩阵特征值分解失败。
	ErrEigen = errors.New("xnewton: eigen decomposition failed")

	// ErrNoConvergence 表示复系数求根迭代未收敛。
	ErrNoConvergence = errors.New("xnewton: root iteration did not converge")

	// ErrGridSize 表示网格边长无效。
	ErrGridSize = errors.New("xnewton: invalid grid size")

	// ErrNoRoots 表示根列表为空。
	ErrNoRoots = errors.New("xnewton: no roots")
)
