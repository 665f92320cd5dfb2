package xplot

import "errors"

var (
	// ErrInvalidColor 表示颜色字符串不是 #RRGGBB 或 #RRGGBBAA 格式。
	ErrInvalidColor = errors.New("xplot: invalid hex color")

	// ErrSave 表示图像写入失败。
	ErrSave = errors.New("xplot: save failed")

	// ErrBasinSize 表示吸引域数据与图像尺寸不匹配。
	ErrBasinSize = errors.New("xplot: basin size mismatch")
)
