package kvdb

import (
	"fmt"
	"path/filepath"
	"testing"
)

const benchRecords = 1_000

var benchValue = []byte(`{"run_id":"bench","algorithm":"parallel_quicksort","data_size":1000000,"duration":1234567}`)

// 엔진별 결과 기록 쓰기/스캔 비교
func BenchmarkStore_Put(b *testing.B) {
	for _, engine := range Engines() {
		b.Run(engine, func(b *testing.B) {
			s, err := Open(engine, filepath.Join(b.TempDir(), engine))
			if err != nil {
				b.Fatal(err)
			}
			defer s.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				key := ResultKey(fmt.Sprintf("run-%08d", i/benchRecords), 1_000_000, "quicksort", i%benchRecords)
				if err := s.Put(key, benchValue); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkStore_Scan(b *testing.B) {
	for _, engine := range Engines() {
		b.Run(engine, func(b *testing.B) {
			s, err := Open(engine, filepath.Join(b.TempDir(), engine))
			if err != nil {
				b.Fatal(err)
			}
			defer s.Close()

			for _, runID := range []string{"run-a", "run-b"} {
				for i := 0; i < benchRecords; i++ {
					if err := s.Put(ResultKey(runID, i, "quicksort", 1), benchValue); err != nil {
						b.Fatal(err)
					}
				}
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				count := 0
				err := s.Scan(RunPrefix("run-b"), func(_, _ []byte) error {
					count++
					return nil
				})
				if err != nil {
					b.Fatal(err)
				}
				if count != benchRecords {
					b.Fatalf("scanned %d records, want %d", count, benchRecords)
				}
			}
		})
	}
}
