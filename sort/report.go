package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"sortbench/kvdb"
)

const (
	markdownFile = "benchmark_results.md"
	jsonFile     = "benchmark_results.json"
)

// summaryRow 크기 x 전략별 평균
type summaryRow struct {
	Algorithm   string
	DataSize    int
	Runs        int
	AvgDuration time.Duration
	AvgMemory   uint64
	OutputLen   int
	// Ratio 같은 크기의 기준 전략 평균 대비 비율 (기준이 없으면 0)
	Ratio float64
}

// summarize 결과 순서(크기, 전략 등장 순)를 유지하며 평균을 계산
func summarize(results []BenchmarkResult) []summaryRow {
	type groupKey struct {
		size      int
		algorithm string
	}

	var order []groupKey
	groups := make(map[groupKey]*summaryRow)
	totals := make(map[groupKey]time.Duration)
	memTotals := make(map[groupKey]uint64)

	for _, r := range results {
		k := groupKey{r.DataSize, r.Algorithm}
		row, ok := groups[k]
		if !ok {
			row = &summaryRow{Algorithm: r.Algorithm, DataSize: r.DataSize}
			groups[k] = row
			order = append(order, k)
		}
		row.Runs++
		row.OutputLen = r.OutputLen
		totals[k] += r.Duration
		memTotals[k] += r.MemoryUsage
	}

	rows := make([]summaryRow, 0, len(order))
	for _, k := range order {
		row := groups[k]
		row.AvgDuration = totals[k] / time.Duration(row.Runs)
		row.AvgMemory = memTotals[k] / uint64(row.Runs)
		rows = append(rows, *row)
	}

	baselines := make(map[int]time.Duration)
	for _, row := range rows {
		if row.Algorithm == baselineName() {
			baselines[row.DataSize] = row.AvgDuration
		}
	}
	for i := range rows {
		if base := baselines[rows[i].DataSize]; base > 0 {
			rows[i].Ratio = float64(rows[i].AvgDuration) / float64(base)
		}
	}
	return rows
}

func formatRatio(ratio float64) string {
	if ratio == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", ratio)
}

// writeMarkdown 마크다운 보고서
func writeMarkdown(w io.Writer, results []BenchmarkResult) error {
	var builder strings.Builder

	builder.WriteString("# 정렬 배열 생성 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0)))
	builder.WriteString(fmt.Sprintf("기준 전략: %s\n\n", baselineName()))

	rows := summarize(results)

	currentSize := -1
	for _, r := range results {
		if r.DataSize != currentSize {
			currentSize = r.DataSize
			builder.WriteString(fmt.Sprintf("\n## %s개 데이터\n\n", humanize.Comma(int64(r.DataSize))))
			builder.WriteString("| 알고리즘 | 테스트 | 실행시간 | 메모리사용량 | 고루틴수 | 결과길이 |\n")
			builder.WriteString("|----------|--------|----------|--------------|----------|----------|\n")
		}
		builder.WriteString(fmt.Sprintf("| %s | %d | %v | %s | %d | %s |\n",
			r.Algorithm, r.TestRun, r.Duration, humanize.IBytes(r.MemoryUsage),
			r.GoroutineNum, humanize.Comma(int64(r.OutputLen))))
	}

	builder.WriteString("\n## 요약 통계\n\n")
	builder.WriteString("| 데이터 | 알고리즘 | 평균 실행시간 | 평균 메모리사용량 | 비율 |\n")
	builder.WriteString("|--------|----------|---------------|-------------------|------|\n")
	for _, row := range rows {
		builder.WriteString(fmt.Sprintf("| %s | %s | %v | %s | %s |\n",
			humanize.Comma(int64(row.DataSize)), row.Algorithm, row.AvgDuration,
			humanize.IBytes(row.AvgMemory), formatRatio(row.Ratio)))
	}

	// ordered_map은 중복을 합치므로 결과 길이가 입력보다 짧을 수 있음
	for _, row := range rows {
		if row.OutputLen < row.DataSize {
			builder.WriteString(fmt.Sprintf("\n> %s (%s개): 중복 값이 합쳐져 결과 길이 %s\n",
				row.Algorithm, humanize.Comma(int64(row.DataSize)), humanize.Comma(int64(row.OutputLen))))
		}
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

// writeFile 버퍼링된 파일 쓰기
func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	if err := write(writer); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}
	return errors.Wrapf(file.Close(), "close %s", path)
}

// saveResultsToMarkdown outDir/benchmark_results.md
func saveResultsToMarkdown(outDir string, results []BenchmarkResult) (string, error) {
	path := filepath.Join(outDir, markdownFile)
	return path, writeFile(path, func(w io.Writer) error {
		return writeMarkdown(w, results)
	})
}

// saveResultsToJSON outDir/benchmark_results.json
func saveResultsToJSON(outDir string, results []BenchmarkResult) (string, error) {
	path := filepath.Join(outDir, jsonFile)
	return path, writeFile(path, func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	})
}

// printSummary 콘솔 요약 표
func printSummary(w io.Writer, results []BenchmarkResult) {
	fmt.Fprintln(w, strings.Repeat("=", 84))
	fmt.Fprintf(w, "%-12s | %-20s | %-16s | %-12s | %-8s\n", "데이터", "알고리즘", "평균 실행시간", "결과길이", "비율")
	fmt.Fprintln(w, strings.Repeat("-", 84))
	for _, row := range summarize(results) {
		fmt.Fprintf(w, "%-12s | %-20s | %-16v | %-12s | %-8s\n",
			humanize.Comma(int64(row.DataSize)), row.Algorithm, row.AvgDuration.Round(time.Microsecond),
			humanize.Comma(int64(row.OutputLen)), formatRatio(row.Ratio))
	}
	fmt.Fprintln(w, strings.Repeat("=", 84))
}

// storeResults 결과 이력을 KV 저장소에 JSON으로 저장
func storeResults(store kvdb.Store, results []BenchmarkResult) error {
	for _, r := range results {
		value, err := json.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "encode result")
		}
		key := kvdb.ResultKey(r.RunID, r.DataSize, r.Algorithm, r.TestRun)
		if err := store.Put(key, value); err != nil {
			return errors.Wrapf(err, "store %s", key)
		}
	}
	return nil
}

// loadResults runID의 결과 (빈 문자열이면 전체), 키 순서
func loadResults(store kvdb.Store, runID string) ([]BenchmarkResult, error) {
	var results []BenchmarkResult
	err := store.Scan(kvdb.RunPrefix(runID), func(key, value []byte) error {
		var r BenchmarkResult
		if err := json.Unmarshal(value, &r); err != nil {
			return errors.Wrapf(err, "decode %s", key)
		}
		results = append(results, r)
		return nil
	})
	return results, err
}

// groupByRun 같은 run id끼리 묶음 (run id 첫 등장 순서 유지)
func groupByRun(results []BenchmarkResult) [][]BenchmarkResult {
	var order []string
	groups := make(map[string][]BenchmarkResult)
	for _, r := range results {
		if _, ok := groups[r.RunID]; !ok {
			order = append(order, r.RunID)
		}
		groups[r.RunID] = append(groups[r.RunID], r)
	}

	runs := make([][]BenchmarkResult, 0, len(order))
	for _, id := range order {
		runs = append(runs, groups[id])
	}
	return runs
}
