// =============================================================================
// 🧪 测试辅助函数
// =============================================================================
// 提供内存行输入/行输出实现，供各包测试复用
//
// 使用方法:
//
//	src := testutil.LinesOf("the cat", "sat on the mat.")
//	sink := &testutil.CollectSink{}
// =============================================================================
package testutil

import "github.com/textproc/wordcount/internal/textio"

var _ textio.LineSink = (*CollectSink)(nil)

// SliceSource 是由字符串切片支撑的内存行输入，满足 counter.LineSource。
// 所有行耗尽后 Err 返回 FailWith 预设的错误（默认 nil）。
type SliceSource struct {
	lines []string
	pos   int
	cur   string
	err   error
}

// LinesOf 构造内存行输入
func LinesOf(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

// FailWith 设置行耗尽后 Err 返回的错误，用于测试读取错误透传
func (s *SliceSource) FailWith(err error) *SliceSource {
	s.err = err
	return s
}

// Scan 推进到下一行
func (s *SliceSource) Scan() bool {
	if s.pos >= len(s.lines) {
		return false
	}
	s.cur = s.lines[s.pos]
	s.pos++
	return true
}

// Text 返回当前行
func (s *SliceSource) Text() string { return s.cur }

// Err 返回预设的读取错误
func (s *SliceSource) Err() error {
	if s.pos >= len(s.lines) {
		return s.err
	}
	return nil
}

// CollectSink 把写入的行收集到内存，满足 textio.LineSink
type CollectSink struct {
	Lines []string
}

// WriteLine 追加一行
func (c *CollectSink) WriteLine(line string) error {
	c.Lines = append(c.Lines, line)
	return nil
}
