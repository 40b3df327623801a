package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/kvdb"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *config)
		wantErr string
	}{
		{"defaults", func(c *config) {}, ""},
		{"zero size", func(c *config) { c.sizes = []int{0} }, ""},
		{"no sizes", func(c *config) { c.sizes = nil }, "no sizes"},
		{"negative size", func(c *config) { c.sizes = []int{10, -1} }, "invalid size -1"},
		{"zero runs", func(c *config) { c.runs = 0 }, "runs must be positive"},
		{"negative max", func(c *config) { c.maxValue = -5 }, "max-value"},
		{"unknown algorithm", func(c *config) { c.algorithms = []string{"quicksort", "heapsort"} }, `unknown algorithm "heapsort"`},
		{"unknown store", func(c *config) { c.store = "leveldb" }, `unknown store "leveldb"`},
		{"pebble store", func(c *config) { c.store = "pebble" }, ""},
		{"debug log level", func(c *config) { c.logLevel = "debug" }, ""},
		{"unknown log level", func(c *config) { c.logLevel = "verbose" }, `unknown log level "verbose"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, []int{10, 1_000, 100_000, 1_000_000}, cfg.sizes)
	assert.Equal(t, int64(42), cfg.seed)
	assert.Contains(t, cfg.algorithms, baselineName())
	assert.Equal(t, "library_sort", baselineName())
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_RunAndHistory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")

	out, err := executeRoot(t,
		"--sizes", "10,1000",
		"--runs", "1",
		"--out", dir,
		"--store", "bbolt",
		"--store-path", dbPath,
		"--log-level", "error",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "parallel_quicksort")
	assert.FileExists(t, filepath.Join(dir, markdownFile))
	assert.FileExists(t, filepath.Join(dir, jsonFile))

	out, err = executeRoot(t, "history", "--store", "bbolt", "--store-path", dbPath, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "(bbolt): 8개 결과")
	assert.Contains(t, out, "ordered_map")
}

func TestRootCmd_Errors(t *testing.T) {
	_, err := executeRoot(t, "--sizes", "10", "--algorithms", "bogosort", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogosort")

	_, err = executeRoot(t, "--sizes", "10", "--log-level", "verbose", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")

	_, err = executeRoot(t, "history", "--store", "bbolt", "--store-path", filepath.Join(t.TempDir(), "h.db"), "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")

	_, err = executeRoot(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--store")

	_, err = executeRoot(t, "history", "--store", "rocksdb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rocksdb")
}

func TestHistoryCmd_SummaryPerRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := kvdb.Open(kvdb.EngineBbolt, dbPath)
	require.NoError(t, err)

	require.NoError(t, storeResults(store, []BenchmarkResult{
		{RunID: "run-1", Algorithm: "quicksort", DataSize: 1_000, TestRun: 1, Duration: 100 * time.Microsecond, OutputLen: 1_000, Sorted: true},
		{RunID: "run-2", Algorithm: "quicksort", DataSize: 1_000, TestRun: 1, Duration: 300 * time.Microsecond, OutputLen: 1_000, Sorted: true},
	}))
	require.NoError(t, store.Close())

	out, err := executeRoot(t, "history", "--store", "bbolt", "--store-path", dbPath)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "\n실행 "))
	assert.Contains(t, out, "실행 run-1")
	assert.Contains(t, out, "실행 run-2")
	// 두 실행을 섞은 평균(200µs)은 나오면 안 됨
	assert.NotContains(t, out, "200µs")

	out, err = executeRoot(t, "history", "--store", "bbolt", "--store-path", dbPath, "--run", "run-2")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n실행 "))
	assert.NotContains(t, out, "run-1")
}
