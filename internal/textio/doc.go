// 版权所有 WordCount Authors. 版权所有。
// 此源代码的使用由 MIT 许可规范,该许可可以是
// 在LICENSE文件中找到。

/*
包 textio 提供统计管线与文件系统之间的行级 I/O 胶水层。

# 概述

核心统计逻辑只消费"行序列"并产出"行序列"，不直接接触文件。
本包以 bufio.Scanner 的形状提供输入（ReaderSource），以逐行写入
的形状抽象输出（LineSink），并提供文件实现。打开失败与写入失败
以包装错误向上传播，由调用方决定终止流程。

# 核心类型

  - ReaderSource：行输入（Scan / Text / Err，bufio.Scanner 形状）
  - LineSink：行输出接口（WriteLine）
  - WriterSink / FileSink：无缓冲与带缓冲的行输出实现，
    FileSink 在 Close 时刷新缓冲并关闭文件

# 主要能力

  - NewReaderSource / OpenFileSource：从任意 io.Reader 或文件构造行输入
  - NewWriterSink / CreateFileSink：向任意 io.Writer 或文件逐行输出
  - 错误语义：文件不存在、不可写等驱动层错误一次性上报并终止运行
*/
package textio
