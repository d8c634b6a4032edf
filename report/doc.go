// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

/*
Package report 提供统计结果的排序与 HTML 报告渲染。

# 概述

report 消费 counter 产出的只读统计结果：先对单词列表做稳定的
大小写不敏感排序（仅大小写不同的单词保持输入相对顺序），再渲染
为固定结构的 HTML 行序列，由驱动层逐行写入输出。

# 主要能力

  - SortWords — 原地稳定排序，比较键为小写形式，不修改存储的单词
  - Render    — 纯渲染：标题/表头/逐词数据行，单词原样输出不做转义
*/
package report
