package xchord

import "errors"

var (
	// ErrEmptySample 表示样本为空，无法计算比例。
	ErrEmptySample = errors.New("xchord: empty sample")

	// ErrInvalidCount 表示采样数量无效（必须 >= 1）。
	ErrInvalidCount = errors.New("xchord: invalid sample count")

	// ErrUnknownMethod 表示未知的采样方法名称。
	ErrUnknownMethod = errors.New("xchord: unknown method")

	// ErrNilRand 表示随机源为 nil。
	ErrNilRand = errors.New("xchord: nil random source")

	// ErrNilSampler 表示采样器为 nil。
	ErrNilSampler = errors.New("xchord: nil sampler")
)
