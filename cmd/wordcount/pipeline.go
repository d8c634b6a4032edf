// =============================================================================
// 🔄 统计管线
// =============================================================================
// 读取全部行 → 分词统计 → 排序 → 渲染 → 写出
// =============================================================================
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/textproc/wordcount/config"
	"github.com/textproc/wordcount/counter"
	"github.com/textproc/wordcount/internal/textio"
	"github.com/textproc/wordcount/report"
)

// runPipeline 执行一次完整的统计运行
func runPipeline(cfg *config.Config, logger *zap.Logger) error {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	// 确定输入/输出文件（配置为空时交互式询问）
	stdin := bufio.NewReader(os.Stdin)

	inPath := cfg.Input.Path
	if inPath == "" {
		var err error
		inPath, err = promptLine(stdin, "name of an input file: ")
		if err != nil {
			return fmt.Errorf("read input file name: %w", err)
		}
	}

	outPath := cfg.Input.Output
	if outPath == "" {
		var err error
		outPath, err = promptLine(stdin, "name of an output file: ")
		if err != nil {
			return fmt.Errorf("read output file name: %w", err)
		}
	}

	displayName := cfg.Report.Title
	if displayName == "" {
		displayName = inPath
	}

	logger.Info("Counting words",
		zap.String("input", inPath),
		zap.String("output", outPath),
	)
	start := time.Now()

	// 打开输入
	src, closer, err := textio.OpenFileSource(inPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	// 分词统计
	tally, err := counter.New(counter.WithLogger(logger)).Count(src)
	if err != nil {
		return err
	}

	// 排序 + 渲染
	words := tally.Order
	report.SortWords(words)
	lines := report.Render(displayName, words, tally.Counts)

	// 写出报告
	sink, err := textio.CreateFileSink(outPath)
	if err != nil {
		return err
	}
	if err := writeReport(sink, lines); err != nil {
		sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}

	logger.Info("Report written",
		zap.String("output", outPath),
		zap.Int("distinct_words", tally.Distinct()),
		zap.Int("word_tokens", tally.Total()),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// writeReport 将渲染好的报告逐行写入输出
func writeReport(sink textio.LineSink, lines []string) error {
	for _, line := range lines {
		if err := sink.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}

// promptLine 输出提示并读取一行用户输入
func promptLine(r *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
