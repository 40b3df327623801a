package main

import (
	"github.com/exascience/pargo/parallel"
)

// parallelThreshold 이 크기(right-left) 이상이면 두 구간을 병렬로 포크
const parallelThreshold = 10_000

// parallelQuickSort 포크-조인 병렬 퀵소트
// 반환 시점에는 두 하위 작업이 모두 끝나 있으므로 호출자 입장에선 동기 정렬과 같다.
func parallelQuickSort(arr []int) {
	if len(arr) < 2 {
		return
	}
	parallelQuickSortHelper(arr, parallelThreshold)
}

func parallelQuickSortHelper(arr []int, threshold int) {
	if len(arr) < 2 {
		return
	}

	// 큰 구간: 중앙 위치에서 나눈 뒤 두 창을 병렬로 정렬
	if len(arr)-1 >= threshold {
		middle := (len(arr) - 1) / 2
		selectMiddle(arr, middle)

		lo, hi := splitWindows(arr, middle)
		forkJoin(
			func() { parallelQuickSortHelper(lo, threshold) },
			func() { parallelQuickSortHelper(hi, threshold) },
		)
		return
	}

	// 작은 구간: 왼쪽은 재귀, 오른쪽은 루프 (스택 깊이 제한)
	left, right := 0, len(arr)-1
	for left < right {
		i, j := hoarePartition(arr, left, right)

		if left < j {
			parallelQuickSortHelper(arr[left:j+1], threshold)
		}
		if i >= right {
			break
		}
		left = i
	}
}

// splitWindows arr을 [0, middle], [middle+1, len) 두 창으로 나눔
// 왼쪽 창은 cap을 잘라서 append로도 오른쪽 창을 건드릴 수 없음.
func splitWindows(arr []int, middle int) ([]int, []int) {
	return arr[: middle+1 : middle+1], arr[middle+1:]
}

// forkJoin 두 작업을 동시에 실행하고 둘 다 끝날 때까지 대기
// 하위 작업의 패닉은 이 지점에서 호출자에게 다시 발생한다.
// parallel.Do는 첫 작업을 호출자 고루틴에서 실행하므로, 그 패닉은 여기서 잡아 두었다가
// 두 작업이 모두 끝난 뒤에 다시 발생시킨다.
func forkJoin(left, right func()) {
	var leftPanic any
	parallel.Do(
		func() {
			defer func() { leftPanic = recover() }()
			left()
		},
		right,
	)
	if leftPanic != nil {
		panic(leftPanic)
	}
}
