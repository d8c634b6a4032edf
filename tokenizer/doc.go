// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

/*
Package tokenizer 提供基于固定分隔符集合的最大运行（maximal run）分词。

# 概述

tokenizer 是整个统计管线的最底层包，不依赖任何内部包。它将一行文本
切分为交替出现的"分隔符串"与"单词"两类 token：从给定位置开始，
沿同一类别尽可能向后扩展，直到行尾或类别切换为止。

# 核心类型

  - Set        — 不可变的 ASCII 分隔符集合（NewSet 构造，Contains 查询）
  - Separators — 管线使用的固定分隔符集合（逗号、空格、句号等九个字符）
  - Next       — 纯函数，返回从指定位置开始的最大同质 token

# 主要能力

  - 重构保证：从位置 0 依次调用 Next 并按 token 长度推进，
    拼接结果与原始行逐字节一致。
  - 非空保证：返回的 token 永远非空且类别同质。
  - 契约检查：越界位置触发 panic（调用方编程错误，不可恢复）。
*/
package tokenizer
