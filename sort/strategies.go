package main

// algorithm 생성된 배열을 정렬된 결과로 바꾸는 전략
type algorithm struct {
	name string
	// baseline 비율(ratio) 계산의 기준 전략
	baseline bool
	// distinct 결과가 서로 다른 값의 집합 (길이 <= 입력)
	distinct bool
	sort     func(arr []int) []int
}

// inPlace 제자리 정렬을 전략 형태로 감쌈
func inPlace(sortFn func([]int)) func([]int) []int {
	return func(arr []int) []int {
		sortFn(arr)
		return arr
	}
}

var algorithms = []algorithm{
	{name: "library_sort", baseline: true, sort: librarySort},
	{name: "ordered_map", distinct: true, sort: orderedMapSort},
	{name: "quicksort", sort: inPlace(quickSort)},
	{name: "parallel_quicksort", sort: inPlace(parallelQuickSort)},
	{name: "mergesort", sort: mergeSort},
	{name: "parallel_mergesort", sort: parallelMergeSort},
}

func lookupAlgorithm(name string) (algorithm, bool) {
	for _, a := range algorithms {
		if a.name == name {
			return a, true
		}
	}
	return algorithm{}, false
}

func algorithmNames() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.name
	}
	return names
}

func baselineName() string {
	for _, a := range algorithms {
		if a.baseline {
			return a.name
		}
	}
	return ""
}

// generateSorted 벤치마크 진입점: N개 생성 후 정렬된 결과 반환
func generateSorted(gen *generator, size int, algo algorithm) []int {
	return algo.sort(gen.generateRandomData(size))
}
