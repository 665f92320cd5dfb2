// Package xchord 实现 Bertrand 悖论的随机弦采样与概率估计。
//
// # 概述
//
// 在单位圆上"随机取一条弦"，弦长超过内接正三角形边长 √3 的概率
// 取决于"随机"的定义。本包提供三种采样策略：
//
//   - [Endpoints]（方法 1）：两个端点角度独立均匀分布，理论值 1/3
//   - [Radial]（方法 2）：随机半径上的随机点作为弦中点，理论值 1/2
//   - [Midpoint]（方法 3）：弦中点在圆盘面积上均匀分布，理论值 1/4
//
// 端点表示为 (sin θ, cos θ)，所有端点满足 |p| = 1（浮点误差 1e-9 以内）。
//
// # 随机源
//
// 所有采样函数显式接收 *rand.Rand，不使用进程级全局随机源。
// 相同 seed 产生相同结果，便于测试复现。
//
// *rand.Rand 不是并发安全的，不要在多个 goroutine 间共享。
// 并行采样通过 [DeriveRand] 为每个 worker 派生独立的随机流，
// 参见 [SampleParallel]。
//
// # 估计
//
// [Estimate] 返回弦长严格大于 √3 的比例。空样本返回 [ErrEmptySample]，
// 不会静默产生 NaN。
//
// # 快速开始
//
//	r := xchord.NewRand(42)
//	set, err := xchord.Sample(r, xchord.Endpoints{}, 10000)
//	if err != nil {
//	    return err
//	}
//	p, _ := xchord.Estimate(set.Chords) // ≈ 0.333
package xchord
