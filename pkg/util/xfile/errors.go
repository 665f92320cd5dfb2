package xfile

import "errors"

var (
	// ErrEmptyPath 表示必需的路径参数为空。
	ErrEmptyPath = errors.New("xfile: path is required")

	// ErrInvalidPath 表示路径格式无效（如目录路径、绝对路径作为文件名等）。
	ErrInvalidPath = errors.New("xfile: invalid path")

	// ErrPathTraversal 表示路径中含有 ".." 路径段。
	ErrPathTraversal = errors.New("xfile: path traversal detected")

	// ErrPathEscaped 表示拼接结果超出了基准目录。
	ErrPathEscaped = errors.New("xfile: path escapes base directory")

	// ErrNullByte 表示路径中包含空字节（\x00）。
	ErrNullByte = errors.New("xfile: path contains null byte")

	// ErrInvalidPerm 表示目录权限缺少所有者执行位。
	ErrInvalidPerm = errors.New("xfile: invalid directory permission")

	// ErrCreateDir 表示创建目录失败（权限不足、磁盘满、路径被普通文件占用等）。
	ErrCreateDir = errors.New("xfile: create directory failed")
)
