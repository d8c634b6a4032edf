// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

/*
Package counter 提供单词出现次数统计。

# 概述

counter 驱动 tokenizer 对行输入做一次线性扫描：分隔符串直接跳过，
单词（区分大小写，不做任何规范化）累加计数，首次出现的单词按顺序
记入 Order 列表。扫描结束后 Tally 只读，供报告层消费。

# 核心类型

  - LineSource — 行输入接口（Scan / Text / Err），由调用方实现
  - Tally      — 统计结果：Counts 计数表 + Order 首现顺序列表
  - Counter    — 统计器，可通过 WithLogger 附加 zap 日志

# 主要能力

  - 单遍扫描：每行从位置 0 起反复取最大 token，按长度推进
  - 不变式：Counts 的每个键在 Order 中恰好出现一次；
    所有计数之和等于提取到的单词 token 总数
  - 错误语义：仅透传行输入的读取错误；空输入得到空结果
*/
package counter
