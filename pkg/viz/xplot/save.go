package xplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/omeyang/xviz/pkg/util/xfile"
)

// DefaultSize 默认画布边长（10 英寸，与原始脚本的 figsize 一致）。
const DefaultSize = 10 * vg.Inch

// FileName 返回 "<prefix>-<kind>.png"。
func FileName(prefix, kind string) string {
	return prefix + "-" + kind + ".png"
}

// Save 把 p 写入 dir 下的 name，目录不存在时以 0750 创建。
// 返回写入文件的绝对路径。name 必须是不含 ".." 的相对路径。
func Save(p *plot.Plot, dir, name string, size vg.Length) (string, error) {
	if size <= 0 {
		size = DefaultSize
	}
	path, err := xfile.OutputPath(dir, name)
	if err != nil {
		return "", err
	}
	if err := p.Save(size, size, path); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrSave, path, err)
	}
	return path, nil
}
