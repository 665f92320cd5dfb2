package xplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/omeyang/xviz/pkg/sim/xchord"
)

// 各采样方法的默认颜色。
const (
	ColorEndpoints = "#99004D"
	ColorRadial    = "#003CB3"
	ColorMidpoint  = "#226600"
)

// DefaultColor 返回方法的默认颜色；未知方法返回黑色。
func DefaultColor(m xchord.Method) color.NRGBA {
	var hex string
	switch m {
	case xchord.MethodEndpoints:
		hex = ColorEndpoints
	case xchord.MethodRadial:
		hex = ColorRadial
	case xchord.MethodMidpoint:
		hex = ColorMidpoint
	default:
		return color.NRGBA{A: 255}
	}
	c, _ := ParseHexColor(hex)
	return c
}

// ParseHexColor 解析 #RRGGBB 或 #RRGGBBAA（# 可省略）。
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// withAlpha 返回透明度为 alpha（0~1）的颜色。
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(alpha*255 + 0.5)
	return c
}
