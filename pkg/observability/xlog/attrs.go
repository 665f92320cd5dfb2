package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 key
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeySamples   = "samples"
	KeyEstimate  = "estimate"
	KeyTheory    = "theory"
	KeyStdErr    = "stderr"
	KeySeed      = "seed"
	KeyPath      = "path"
	KeyComponent = "component"
)

// Err 创建错误属性，err 为 nil 时返回空属性（会被忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Method 创建采样方法属性。通常已由 EnrichHandler 从 context 注入。
func Method(m string) slog.Attr {
	return slog.String(KeyMethod, m)
}

// Samples 创建样本数属性
func Samples(n int) slog.Attr {
	return slog.Int(KeySamples, n)
}

// Estimate 创建概率估计属性
func Estimate(p float64) slog.Attr {
	return slog.Float64(KeyEstimate, p)
}

// Theory 创建理论概率属性
func Theory(p float64) slog.Attr {
	return slog.Float64(KeyTheory, p)
}

// StdErr 创建标准误属性
func StdErr(se float64) slog.Attr {
	return slog.Float64(KeyStdErr, se)
}

// Seed 创建随机种子属性
func Seed(seed int64) slog.Attr {
	return slog.Int64(KeySeed, seed)
}

// Path 创建文件路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}
