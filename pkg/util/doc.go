// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 路径校验、安全拼接与输出目录创建
package util
