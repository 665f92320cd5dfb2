// Package xconf 基于 koanf 加载 YAML/JSON 配置，并定义 bertrand 的运行参数。
//
// 通用加载：
//
//	cfg, err := xconf.New("bertrand.yaml")
//	if err != nil {
//	    return err
//	}
//	var s xconf.Settings
//	err = cfg.Unmarshal("", &s)
//
// 运行参数：
//
//	s, err := xconf.LoadSettings("bertrand.yaml") // 空路径返回默认值
//
// 配置文件中缺失的字段保留 [DefaultSettings] 的值，命令行参数在其后覆盖。
// Unmarshal 使用 mapstructure，允许弱类型转换（字符串 "100" 可转为 int）。
package xconf
