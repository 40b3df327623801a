package main

// quickSort 순차 퀵소트 (제자리 정렬)
func quickSort(arr []int) {
	if len(arr) < 2 {
		return
	}
	quickSortHelper(arr, 0, len(arr)-1)
}

// quickSortHelper [low, high] 구간(양끝 포함)을 재귀적으로 정렬
func quickSortHelper(arr []int, low, high int) {
	i, j := hoarePartition(arr, low, high)

	if low < j {
		quickSortHelper(arr, low, j)
	}
	if i < high {
		quickSortHelper(arr, i, high)
	}
}

// hoarePartition Hoare 파티셔닝
// 피벗은 중앙 인덱스의 "값"으로 한 번만 읽음 (배열이 바뀌어도 다시 읽지 않음).
// 반환 후 arr[low..j] <= pivot <= arr[i..high], j < i.
func hoarePartition(arr []int, low, high int) (int, int) {
	pivot := arr[(low+high)/2]
	i, j := low, high

	for i <= j {
		for arr[i] < pivot {
			i++
		}
		for arr[j] > pivot {
			j--
		}
		if i <= j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			j--
		}
	}

	return i, j
}

// selectMiddle 구간을 k 위치에서 나눔 (Hoare 선택)
// 반환 후 arr[:k+1]의 모든 값 <= arr[k+1:]의 모든 값.
// 각 반복에서 k를 포함하는 쪽만 다시 파티셔닝하므로 기대 시간은 O(n).
func selectMiddle(arr []int, k int) {
	low, high := 0, len(arr)-1

	for low < high {
		i, j := hoarePartition(arr, low, high)
		if j < k {
			low = i
		}
		if k < i {
			high = j
		}
	}
}
