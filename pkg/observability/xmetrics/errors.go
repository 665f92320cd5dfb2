package xmetrics

import "errors"

// ErrInstrument 创建 OTel 指标仪表失败。
var ErrInstrument = errors.New("xmetrics: create instrument failed")
