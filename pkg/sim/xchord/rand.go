package xchord

import "math/rand"

// defaultSeed seed 为 0 时使用的固定种子。
const defaultSeed int64 = 1

// NewRand 返回确定性的随机源。seed 为 0 时使用固定的默认种子。
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed 以 SplitMix64 终结函数混合父种子与流编号。
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand 基于 base 和流编号派生独立的随机流。
//
// base 为 nil 时以默认种子为父种子；否则消耗 base 的一次 Int63，
// 因此即使误用相同 stream 也不会得到相同的子流。
// 应在准备阶段调用，而不是在热循环中。
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
