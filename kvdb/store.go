// Package kvdb 벤치마크 결과 이력을 임베디드 KV 엔진(bbolt, BadgerDB, PebbleDB)에 저장한다.
// 세 엔진은 같은 Store 인터페이스 뒤에 있으며 키 순서대로 스캔된다.
package kvdb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

const (
	EngineBbolt  = "bbolt"
	EngineBadger = "badger"
	EnginePebble = "pebble"
)

// bucketName bbolt 버킷 이름
const bucketName = "results"

// Store 정렬된 키 공간을 가진 KV 저장소
type Store interface {
	// Put 키에 값을 저장 (같은 키는 덮어씀)
	Put(key, value []byte) error
	// Scan prefix로 시작하는 키를 오름차순으로 순회. fn에 넘기는 슬라이스는 복사본.
	Scan(prefix []byte, fn func(key, value []byte) error) error
	// Size 디스크 사용량 (바이트)
	Size() (int64, error)
	Close() error
}

// Engines 지원하는 엔진 이름
func Engines() []string {
	return []string{EngineBbolt, EngineBadger, EnginePebble}
}

// Open engine 이름으로 저장소 열기. bbolt는 파일, 나머지는 디렉터리 경로.
func Open(engine, path string) (Store, error) {
	if path == "" {
		return nil, errors.New("kvdb: empty store path")
	}

	switch engine {
	case EngineBbolt:
		return openBbolt(path)
	case EngineBadger:
		return openBadger(path)
	case EnginePebble:
		return openPebble(path)
	default:
		return nil, errors.Newf("kvdb: unknown engine %q (want one of %v)", engine, Engines())
	}
}

// ResultKey 결과 키: <runID>/<size>/<algorithm>/<run>
// size와 run은 0으로 채워서 사전순 == 숫자순.
func ResultKey(runID string, size int, algorithm string, run int) []byte {
	return []byte(fmt.Sprintf("%s/%012d/%s/%03d", runID, size, algorithm, run))
}

// RunPrefix 특정 실행의 키 prefix. runID가 비면 전체.
func RunPrefix(runID string) []byte {
	if runID == "" {
		return nil
	}
	return []byte(runID + "/")
}

// prefixUpperBound prefix 바로 다음 키 (prefix 범위의 배타적 상한). 상한이 없으면 nil.
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}

// getDirSize 디렉터리 안 파일 크기 합계
func getDirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "kvdb: walk %s", path)
	}
	return size, nil
}
