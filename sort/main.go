package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"sortbench/kvdb"
)

const storeNone = "none"

// config 명령행 설정
type config struct {
	sizes      []int
	algorithms []string
	runs       int
	seed       int64
	maxValue   int
	outDir     string
	store      string
	storePath  string
	runID      string
	logLevel   string
}

func defaultConfig() *config {
	return &config{
		sizes:      []int{10, 1_000, 100_000, 1_000_000},
		algorithms: []string{"library_sort", "ordered_map", "quicksort", "parallel_quicksort"},
		runs:       3,
		seed:       defaultSeed,
		outDir:     ".",
		store:      storeNone,
		storePath:  "benchmark_history",
		logLevel:   "info",
	}
}

func (c *config) validate() error {
	if len(c.sizes) == 0 {
		return errors.New("no sizes given")
	}
	for _, size := range c.sizes {
		if size < 0 {
			return errors.Newf("invalid size %d", size)
		}
	}
	if c.runs <= 0 {
		return errors.Newf("runs must be positive, got %d", c.runs)
	}
	if c.maxValue < 0 {
		return errors.Newf("max-value must not be negative, got %d", c.maxValue)
	}
	for _, name := range c.algorithms {
		if _, ok := lookupAlgorithm(name); !ok {
			return errors.Newf("unknown algorithm %q (want one of %v)", name, algorithmNames())
		}
	}
	return c.validateShared()
}

// validateShared 루트와 history가 함께 쓰는 플래그 검증
func (c *config) validateShared() error {
	if hclog.LevelFromString(c.logLevel) == hclog.NoLevel {
		return errors.Newf("unknown log level %q (want trace, debug, info, warn or error)", c.logLevel)
	}
	if c.store == storeNone {
		return nil
	}
	for _, engine := range kvdb.Engines() {
		if c.store == engine {
			return nil
		}
	}
	return errors.Newf("unknown store %q (want %s or one of %v)", c.store, storeNone, kvdb.Engines())
}

func newLogger(level string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "sortbench",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "정렬 배열 생성 전략 벤치마크",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.validateShared()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return runCommand(cmd, cfg)
		},
	}

	flags := root.Flags()
	flags.IntSliceVar(&cfg.sizes, "sizes", cfg.sizes, "array lengths to benchmark")
	flags.StringSliceVar(&cfg.algorithms, "algorithms", cfg.algorithms,
		fmt.Sprintf("strategies to run, any of %v", algorithmNames()))
	flags.IntVar(&cfg.runs, "runs", cfg.runs, "measured runs per strategy and size")
	flags.Int64Var(&cfg.seed, "seed", cfg.seed, "random seed, reset before every batch")
	flags.IntVar(&cfg.maxValue, "max-value", cfg.maxValue, "draw values from [0, max-value); 0 uses the full range")
	flags.StringVar(&cfg.outDir, "out", cfg.outDir, "directory for markdown and JSON reports")

	pflags := root.PersistentFlags()
	pflags.StringVar(&cfg.store, "store", cfg.store, fmt.Sprintf("result history engine: %s or one of %v", storeNone, kvdb.Engines()))
	pflags.StringVar(&cfg.storePath, "store-path", cfg.storePath, "result history file (bbolt) or directory")
	pflags.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "log level (trace, debug, info, warn, error)")

	root.AddCommand(newHistoryCmd(cfg))
	return root
}

func newHistoryCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "저장된 벤치마크 결과 출력",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.store == storeNone {
				return errors.New("history needs --store")
			}
			return historyCommand(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.runID, "run", "", "only show this run id")
	return cmd
}

func runCommand(cmd *cobra.Command, cfg *config) error {
	logger := newLogger(cfg.logLevel)
	logger.Info("정렬 알고리즘 벤치마크 시작", "cpus", runtime.NumCPU(), "gomaxprocs", runtime.GOMAXPROCS(0),
		"sizes", cfg.sizes, "algorithms", cfg.algorithms)

	runID := time.Now().UTC().Format("20060102T150405.000000000Z")
	results, err := runAll(logger, cfg, runID)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), results)

	for _, save := range []func(string, []BenchmarkResult) (string, error){saveResultsToMarkdown, saveResultsToJSON} {
		path, err := save(cfg.outDir, results)
		if err != nil {
			return err
		}
		logger.Info("보고서 저장", "path", path)
	}

	if cfg.store != storeNone {
		store, err := kvdb.Open(cfg.store, cfg.storePath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := storeResults(store, results); err != nil {
			return err
		}
		logger.Info("결과 이력 저장", "store", cfg.store, "run_id", runID, "count", len(results))
	}

	logger.Info("벤치마크 완료")
	return nil
}

func historyCommand(cmd *cobra.Command, cfg *config) error {
	store, err := kvdb.Open(cfg.store, cfg.storePath)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := loadResults(store, cfg.runID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	size, err := store.Size()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (%s): %d개 결과, %s\n", cfg.storePath, cfg.store, len(results), humanize.IBytes(uint64(size)))

	for _, r := range results {
		fmt.Fprintf(out, "%s  %-20s  %12s  #%d  %v\n",
			r.RunID, r.Algorithm, humanize.Comma(int64(r.DataSize)), r.TestRun, r.Duration)
	}
	// 실행(run id)이 다른 결과는 섞어서 평균내지 않음
	for _, run := range groupByRun(results) {
		fmt.Fprintf(out, "\n실행 %s\n", run[0].RunID)
		printSummary(out, run)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sortbench: %v\n", err)
		os.Exit(1)
	}
}
