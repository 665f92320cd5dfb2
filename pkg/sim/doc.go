// Package sim 提供数值模拟相关的子包。
//
// 子包列表：
//   - xchord: Bertrand 悖论的三种随机弦采样与概率估计
//   - xnewton: 多项式 Newton-Raphson 迭代与吸引域分形
package sim
