// Package viz 提供可视化相关的子包。
//
// 子包列表：
//   - xplot: 基于 gonum/plot 与 go-hep/hplot 的弦图、直方图与分形渲染
package viz
