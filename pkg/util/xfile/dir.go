package xfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDirPerm 默认目录权限（所有者 rwx，组 r-x，其他无权限）。
const DefaultDirPerm = 0750

// EnsureDir 以 [DefaultDirPerm] 确保 filename 的父目录存在。
func EnsureDir(filename string) error {
	return EnsureDirWithPerm(filename, DefaultDirPerm)
}

// EnsureDirWithPerm 确保 filename 的父目录存在。目录已存在时不修改其权限。
//
// perm 必须包含所有者执行位（0100），否则目录无法进入。
// 创建失败时返回包装了 [ErrCreateDir] 的错误。
func EnsureDirWithPerm(filename string, perm os.FileMode) error {
	if filename == "" {
		return fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}
	if containsNullByte(filename) {
		return fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}
	if perm&0100 == 0 {
		return fmt.Errorf("directory permission %04o missing owner execute bit: %w", perm, ErrInvalidPerm)
	}
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreateDir, dir, err)
	}
	return nil
}

// OutputPath 返回 dir 下名为 name 的输出文件路径，并确保目录存在。
func OutputPath(dir, name string) (string, error) {
	path, err := SafeJoin(dir, name)
	if err != nil {
		return "", err
	}
	if err := EnsureDir(path); err != nil {
		return "", err
	}
	return path, nil
}
