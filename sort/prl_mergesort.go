package main

// parallelMergeSort 병렬 머지소트
// 임계값 이상인 구간은 두 반쪽을 forkJoin으로 동시에 정렬한 뒤 병합.
func parallelMergeSort(arr []int) []int {
	return parallelMergeSortHelper(arr, parallelThreshold)
}

func parallelMergeSortHelper(arr []int, threshold int) []int {
	if len(arr) <= insertionCutoff || len(arr) < threshold {
		return mergeSort(arr)
	}

	mid := len(arr) / 2
	var left, right []int

	// 각 작업은 자기 반쪽만 읽고, 결과는 각자의 변수에만 씀
	forkJoin(
		func() { left = parallelMergeSortHelper(arr[:mid], threshold) },
		func() { right = parallelMergeSortHelper(arr[mid:], threshold) },
	)

	return merge(left, right)
}
