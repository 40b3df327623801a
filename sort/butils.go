package main

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	psort "github.com/exascience/pargo/sort"
	"github.com/hashicorp/go-hclog"
)

// defaultSeed 고정 시드 (재현 가능한 벤치마크)
const defaultSeed = 42

// BenchmarkResult 벤치마크 결과를 저장하는 구조체
type BenchmarkResult struct {
	RunID        string        `json:"run_id"`
	Algorithm    string        `json:"algorithm"`
	Baseline     bool          `json:"baseline"`
	DataSize     int           `json:"data_size"`
	TestRun      int           `json:"test_run"`
	Duration     time.Duration `json:"duration"`
	MemoryUsage  uint64        `json:"memory_usage_bytes"`
	GoroutineNum int           `json:"goroutine_num"`
	OutputLen    int           `json:"output_len"`
	Sorted       bool          `json:"sorted"`
}

// SystemStats 시스템 통계를 위한 구조체
type SystemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
	endMem    runtime.MemStats
}

// generator 시드 고정 난수 배열 생성기
// 같은 시드, 같은 N이면 항상 같은 배열. 동시에 사용하지 않음.
type generator struct {
	rnd      *rand.Rand
	maxValue int
}

// newGenerator maxValue > 0이면 [0, maxValue) 범위, 아니면 rand.Int 전체 범위
func newGenerator(seed int64, maxValue int) *generator {
	return &generator{
		rnd:      rand.New(rand.NewSource(seed)),
		maxValue: maxValue,
	}
}

// generateRandomData size개 생성. 값마다 난수원을 순서대로 진행시키므로 이어서 호출하면 한 번에 생성한 것과 같다.
func (g *generator) generateRandomData(size int) []int {
	data := make([]int, size)
	for i := range data {
		if g.maxValue > 0 {
			data[i] = g.rnd.Intn(g.maxValue)
		} else {
			data[i] = g.rnd.Int()
		}
	}
	return data
}

// startStats 성능 측정 시작
func startStats() *SystemStats {
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemStats{
		startTime: time.Now(),
		startMem:  m,
	}
}

// endStats 경과 시간과 할당 바이트 수
func (s *SystemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)
	runtime.ReadMemStats(&s.endMem)

	return duration, s.endMem.TotalAlloc - s.startMem.TotalAlloc
}

// runBenchmark 생성+정렬 1회 측정. 결과 배열도 검증용으로 반환.
func runBenchmark(algo algorithm, gen *generator, size int) (BenchmarkResult, []int) {
	result := BenchmarkResult{
		Algorithm:    algo.name,
		Baseline:     algo.baseline,
		DataSize:     size,
		GoroutineNum: runtime.NumGoroutine(),
	}

	stats := startStats()
	sorted := generateSorted(gen, size, algo)
	result.Duration, result.MemoryUsage = stats.endStats()

	result.OutputLen = len(sorted)
	result.Sorted = psort.IntsAreSorted(sorted)

	return result, sorted
}

// verifyResult 정렬 결과 검증. 틀린 정렬은 조용히 넘기지 않음.
func verifyResult(algo algorithm, r BenchmarkResult) error {
	if !r.Sorted {
		return errors.Newf("%s: output of size %d is not sorted", algo.name, r.DataSize)
	}
	if algo.distinct {
		if r.OutputLen > r.DataSize {
			return errors.Newf("%s: %d distinct values from %d inputs", algo.name, r.OutputLen, r.DataSize)
		}
		return nil
	}
	if r.OutputLen != r.DataSize {
		return errors.Newf("%s: output length %d, want %d", algo.name, r.OutputLen, r.DataSize)
	}
	return nil
}

// runBatch 한 전략 x 한 크기. 배치마다 고정 시드로 다시 시드해서 모든 전략이 같은 입력을 받음.
func runBatch(logger hclog.Logger, cfg *config, algo algorithm, size int) ([]BenchmarkResult, error) {
	gen := newGenerator(cfg.seed, cfg.maxValue)
	results := make([]BenchmarkResult, 0, cfg.runs)

	for run := 1; run <= cfg.runs; run++ {
		result, _ := runBenchmark(algo, gen, size)
		result.TestRun = run
		if err := verifyResult(algo, result); err != nil {
			return nil, errors.Wrapf(err, "run %d", run)
		}

		logger.Debug("측정 완료", "size", size, "run", run,
			"duration", result.Duration, "output_len", result.OutputLen)
		results = append(results, result)
	}
	return results, nil
}

// runAll 크기 x 전략 전체 실행
func runAll(logger hclog.Logger, cfg *config, runID string) ([]BenchmarkResult, error) {
	var allResults []BenchmarkResult

	for _, size := range cfg.sizes {
		logger.Info("데이터 크기 테스트 중", "size", size)

		for _, name := range cfg.algorithms {
			algo, ok := lookupAlgorithm(name)
			if !ok {
				return nil, errors.Newf("unknown algorithm %q", name)
			}

			results, err := runBatch(logger.With("algorithm", name), cfg, algo, size)
			if err != nil {
				return nil, errors.Wrapf(err, "size %d", size)
			}
			for i := range results {
				results[i].RunID = runID
			}
			allResults = append(allResults, results...)
		}
	}
	return allResults, nil
}
