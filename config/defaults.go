// =============================================================================
// 📦 WordCount 默认配置
// =============================================================================
// 提供所有配置项的合理默认值
// =============================================================================
package config

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Input:  DefaultInputConfig(),
		Report: DefaultReportConfig(),
		Log:    DefaultLogConfig(),
	}
}

// DefaultInputConfig 返回默认输入配置
func DefaultInputConfig() InputConfig {
	return InputConfig{
		Path:   "",
		Output: "",
	}
}

// DefaultReportConfig 返回默认报告配置
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Title: "",
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "info",
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		EnableCaller:     false,
		EnableStacktrace: false,
	}
}
