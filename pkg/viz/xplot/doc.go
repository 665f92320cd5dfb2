// Package xplot 把采样结果渲染为 PNG 图像，基于 gonum/plot 与 go-hep hplot。
//
// 每种图都返回 *plot.Plot，由 [Save] 统一落盘：
//
//   - [Chords]：单位圆轮廓 + 全部弦
//   - [Midpoints]：单位圆轮廓 + 弦中点散点
//   - [Lengths]：弦长直方图，并在 √3 处画竖线
//   - [Fractal]：Newton 吸引域图像
//
// 标题沿用 "Method #k | P = 0.333" 的格式，坐标轴隐藏，画布为正方形。
package xplot
