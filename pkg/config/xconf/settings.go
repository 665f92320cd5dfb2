package xconf

import (
	"fmt"
	"strings"
)

// 运行参数默认值
const (
	DefaultOutDir = "out"
	DefaultCircle = 100
	minCircle     = 3
)

// Settings bertrand 的运行参数。
type Settings struct {
	// Samples 每种方法的弦数量，0 表示由命令行给出。
	Samples int `koanf:"samples"`

	// Seed 随机种子，0 使用固定默认种子。
	Seed int64 `koanf:"seed"`

	// Workers 采样并发数，0 表示 runtime.NumCPU()。只影响速度，不影响结果。
	Workers int `koanf:"workers"`

	// OutDir 图片输出目录。
	OutDir string `koanf:"out_dir"`

	// Circle 绘制单位圆所用的点数。
	Circle int `koanf:"circle"`

	// Colors 方法名到十六进制颜色（#RRGGBB）的映射，缺省使用内置配色。
	Colors map[string]string `koanf:"colors"`

	Log LogSettings `koanf:"log"`
}

// LogSettings 日志参数。
type LogSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// File 非空时写入该文件并轮转。
	File string `koanf:"file"`
}

// DefaultSettings 返回默认运行参数。
func DefaultSettings() Settings {
	return Settings{
		OutDir: DefaultOutDir,
		Circle: DefaultCircle,
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadSettings 在默认值之上叠加配置文件。path 为空时直接返回默认值。
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	cfg, err := New(path)
	if err != nil {
		return s, err
	}
	if err := cfg.Unmarshal("", &s); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// Validate 校验取值范围。Samples 的下限由调用方在合并命令行后检查。
func (s Settings) Validate() error {
	switch {
	case s.Samples < 0:
		return fmt.Errorf("%w: samples %d < 0", ErrInvalidSettings, s.Samples)
	case s.Workers < 0:
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidSettings, s.Workers)
	case strings.TrimSpace(s.OutDir) == "":
		return fmt.Errorf("%w: out_dir is empty", ErrInvalidSettings)
	case s.Circle < minCircle:
		return fmt.Errorf("%w: circle %d < %d", ErrInvalidSettings, s.Circle, minCircle)
	}
	switch strings.ToLower(strings.TrimSpace(s.Log.Format)) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidSettings, s.Log.Format)
	}
	return nil
}
