package xfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

func containsNullByte(path string) bool {
	return strings.IndexByte(path, 0) >= 0
}

// hasDotDotSegment 按路径段精确判断是否含有 ".."。
// 不能用 strings.Contains(path, "..")，否则会误伤 "app..2024.log" 这类合法文件名。
func hasDotDotSegment(path string) bool {
	for _, seg := range strings.FieldsFunc(path, isSeparator) {
		if seg == ".." {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// SanitizePath 校验并规范化文件路径。
//
// 拒绝空路径、含空字节的路径、以分隔符结尾的目录路径，
// 以及规范化后仍含 ".." 路径段的路径。
func SanitizePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename is required: %w", ErrEmptyPath)
	}
	if containsNullByte(filename) {
		return "", fmt.Errorf("filename contains null byte: %w", ErrNullByte)
	}
	// 必须在 Clean 之前检查，Clean 会去掉尾部分隔符
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, "\\") {
		return "", fmt.Errorf("path is a directory: %w", ErrInvalidPath)
	}

	cleaned := filepath.Clean(filename)
	if hasDotDotSegment(cleaned) {
		return "", fmt.Errorf("path traversal in filename: %w", ErrPathTraversal)
	}
	if base := filepath.Base(cleaned); base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("no file name specified: %w", ErrInvalidPath)
	}
	return cleaned, nil
}

// SafeJoin 把相对路径 path 拼接到 base 下，并保证结果仍位于 base 内。
//
// base 为相对路径时先转为绝对路径。path 必须是相对路径且不含 ".."。
// 不解析符号链接。
func SafeJoin(base, path string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("base directory is required: %w", ErrEmptyPath)
	}
	if containsNullByte(base) {
		return "", fmt.Errorf("base contains null byte: %w", ErrNullByte)
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", fmt.Errorf("resolve base %q: %w", base, ErrInvalidPath)
	}

	if path == "" {
		return "", fmt.Errorf("path is required: %w", ErrEmptyPath)
	}
	if containsNullByte(path) {
		return "", fmt.Errorf("path contains null byte: %w", ErrNullByte)
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("path must be relative: %w", ErrInvalidPath)
	}
	cleanPath := filepath.Clean(path)
	if hasDotDotSegment(cleanPath) {
		return "", fmt.Errorf("path traversal in path: %w", ErrPathTraversal)
	}

	joined := filepath.Join(absBase, cleanPath)
	rel, err := filepath.Rel(absBase, joined)
	if err != nil || hasDotDotSegment(rel) {
		return "", ErrPathEscaped
	}
	return joined, nil
}
