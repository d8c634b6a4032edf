// 版权所有 WordCount Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
Package testutil 提供 wordcount 测试的共享工具。

# 概述

testutil 包为各包的单元测试与属性测试提供统一的内存 I/O 实现，
避免测试直接依赖文件系统。所有实现均与生产接口结构兼容
（counter.LineSource、textio.LineSink），无需类型断言即可注入。

# 核心能力

  - 行输入: LinesOf 构造切片支撑的 SliceSource，
    FailWith 可注入耗尽后的读取错误
  - 行输出: CollectSink 将写入的行收集到内存切片供断言
*/
package testutil
