// Copyright (c) WordCount Authors.
// Licensed under the MIT License.

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LineSink consumes formatted output lines one at a time.
type LineSink interface {
	WriteLine(line string) error
}

// ReaderSource yields the lines of an io.Reader one at a time, in the
// shape of bufio.Scanner: Scan advances to the next line, Text returns it,
// and Err reports the first read error after Scan returns false.
type ReaderSource struct {
	s *bufio.Scanner
}

// NewReaderSource wraps r as a line source splitting on newlines.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{s: bufio.NewScanner(r)}
}

func (s *ReaderSource) Scan() bool   { return s.s.Scan() }
func (s *ReaderSource) Text() string { return s.s.Text() }
func (s *ReaderSource) Err() error   { return s.s.Err() }

// OpenFileSource opens path for reading and returns a line source over it
// together with a closer for the underlying file.
func OpenFileSource(path string) (*ReaderSource, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input file: %w", err)
	}
	return NewReaderSource(f), f, nil
}

// WriterSink is an unbuffered LineSink appending a newline to every line.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as a LineSink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) WriteLine(line string) error {
	if _, err := io.WriteString(s.w, line+"\n"); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

// FileSink is a buffered LineSink backed by a file. Close flushes the
// buffer before releasing the file; until then output may be partial.
type FileSink struct {
	f *os.File
	w *bufio.Writer
}

// CreateFileSink creates (or truncates) path and returns a buffered sink
// over it.
func CreateFileSink(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return &FileSink{f: f, w: bufio.NewWriter(f)}, nil
}

// WriteLine appends line plus a newline to the buffer.
func (s *FileSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

// Close flushes buffered output and closes the underlying file.
func (s *FileSink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return fmt.Errorf("flush output file: %w", err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}
