// Package xfile 提供输出文件的路径校验与目录创建。
//
// 图像和日志文件都经过本包落盘：
//
//   - [SanitizePath]：格式净化（空路径、空字节、".." 穿越、目录路径）
//   - [SafeJoin]：把相对文件名拼接到基准目录，结果保证不逃逸出基准目录
//   - [EnsureDir]：确保文件的父目录存在（默认权限 0750）
//   - [OutputPath]：以上两步的组合，供渲染器使用
//
// 本包只返回经过校验的路径字符串，不负责打开文件。
package xfile
