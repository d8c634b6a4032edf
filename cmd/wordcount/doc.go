// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

/*
Package main 提供 wordcount 命令行程序入口。

# 概述

cmd/wordcount 是单词统计工具的可执行入口，提供 run、version、help
三个子命令。程序支持 YAML 配置文件与环境变量加载、结构化日志（zap），
输入/输出文件名可通过命令行参数、配置文件指定，缺省时按原始交互
方式在标准输入上询问。

# 主要能力

  - 子命令：run（执行统计）、version、help
  - 管线：打开输入 → 分词统计 → 大小写不敏感排序 → HTML 渲染 → 写出
  - 运行标识：每次运行生成 run_id 并附加到所有日志条目
  - 构建注入：Version、BuildTime、GitCommit 通过 ldflags 设置
  - 错误语义：文件打开/写出失败记录日志后以退出码 1 终止，
    不保证部分输出
*/
package main
