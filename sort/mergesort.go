package main

// insertionCutoff 이 크기 이하는 삽입정렬
const insertionCutoff = 16

// mergeSort 머지소트 (새 슬라이스 반환, 입력은 건드리지 않음)
func mergeSort(arr []int) []int {
	if len(arr) <= insertionCutoff {
		result := make([]int, len(arr))
		copy(result, arr)
		insertionSort(result)
		return result
	}

	mid := len(arr) / 2
	left := mergeSort(arr[:mid])
	right := mergeSort(arr[mid:])

	return merge(left, right)
}

// merge 두 정렬된 슬라이스 병합 (같은 값은 왼쪽 먼저 - 안정 정렬)
func merge(left, right []int) []int {
	result := make([]int, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}

	result = append(result, left[i:]...)
	result = append(result, right[j:]...)

	return result
}

// insertionSort 삽입정렬
func insertionSort(arr []int) {
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1

		for j >= 0 && arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}
