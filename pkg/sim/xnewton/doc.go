// Package xnewton 提供 Newton-Raphson 迭代与 Newton 分形（吸引域）计算。
//
// 多项式用显式结构 [Polynomial] 表示（系数按降幂排列），
// 求值、求导、迭代均为纯函数，不依赖任何附加在函数对象上的状态。
//
// 实系数多项式的根通过伴随矩阵的特征值求得（gonum mat.Eigen），
// 含复系数时用 Durand-Kerner 迭代。
//
//	p := xnewton.DemoComplex()
//	roots, _ := p.Roots()
//	grid, _ := xnewton.Grid(400, xnewton.DefaultLimits(roots))
//	basins, _ := xnewton.Basins(ctx, p, grid, 30, roots)
package xnewton
