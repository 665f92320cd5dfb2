package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Options 配置加载选项。
type Options struct {
	// Delim 配置键的分隔符，默认为 "."。
	Delim string

	// Tag 结构体标签名，默认为 "koanf"。
	Tag string
}

// Option 配置选项函数。
type Option func(*Options)

// WithDelim 设置配置键分隔符。
func WithDelim(delim string) Option {
	return func(o *Options) { o.Delim = delim }
}

// WithTag 设置 Unmarshal 使用的结构体标签名。
func WithTag(tag string) Option {
	return func(o *Options) { o.Tag = tag }
}

// Config 一份已加载的配置。
type Config struct {
	k      *koanf.Koanf
	path   string
	format Format
	opts   Options
}

// New 从文件创建配置，按扩展名识别格式（.yaml/.yml/.json）。
func New(path string, opts ...Option) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // 路径来自命令行参数
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	c, err := NewFromBytes(data, format, opts...)
	if err != nil {
		return nil, err
	}
	c.path = path
	return c, nil
}

// NewFromBytes 从字节数据创建配置，空数据得到空配置。
func NewFromBytes(data []byte, format Format, opts ...Option) (*Config, error) {
	if format != FormatYAML && format != FormatJSON {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	o := Options{Delim: ".", Tag: "koanf"}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	k := koanf.New(o.Delim)
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parserFor(format)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}
	return &Config{k: k, format: format, opts: o}, nil
}

// Client 返回底层的 koanf 实例。
func (c *Config) Client() *koanf.Koanf {
	return c.k
}

// Unmarshal 将 path 下的配置反序列化到 target，path 为空表示整个配置。
// target 中已有的值在配置缺失对应键时保持不变。
func (c *Config) Unmarshal(path string, target any) error {
	if err := c.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{Tag: c.opts.Tag}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// Path 返回配置文件路径，从字节创建时为空。
func (c *Config) Path() string {
	return c.path
}

// Format 返回配置格式。
func (c *Config) Format() Format {
	return c.format
}

func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

func parserFor(format Format) koanf.Parser {
	if format == FormatJSON {
		return json.Parser()
	}
	return yaml.Parser()
}
