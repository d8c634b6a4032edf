// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

/*
Package config 提供 wordcount 的配置管理功能。

# 概述

包含配置结构定义、默认值与加载器。支持从 YAML 文件和环境变量
加载配置，优先级为 默认值 → YAML 文件 → 环境变量，并可附加
自定义验证器。配置文件不存在时静默回退到默认值。

# 核心类型

  - Config       — 完整配置（Input / Report / Log 三段）
  - Loader       — Builder 模式加载器（WithConfigPath / WithEnvPrefix /
    WithValidator / Load）
  - DefaultConfig — 各段默认值构造

# 主要能力

  - 环境变量覆盖：按 env tag 递归映射，如 WORDCOUNT_LOG_LEVEL
  - 验证：Validate 校验日志级别与格式的取值范围
  - MustLoad：加载失败直接 panic 的便捷入口
*/
package config
