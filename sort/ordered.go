package main

import (
	"cmp"
	"slices"

	"github.com/google/btree"
)

// btreeDegree google/btree 노드 차수
const btreeDegree = 32

// valueCount 정렬 맵의 항목 (값 -> 등장 횟수)
type valueCount struct {
	value int
	count int
}

func lessValueCount(a, b *valueCount) bool {
	return a.value < b.value
}

// librarySort 기준(baseline) 전략: 복사본을 표준 안정 정렬로 정렬해 새 슬라이스 반환
func librarySort(arr []int) []int {
	sorted := slices.Clone(arr)
	slices.SortStableFunc(sorted, cmp.Compare[int])
	return sorted
}

// countValues 모든 값을 B-트리에 넣음. 중복은 덮어쓰지 않고 카운트만 증가.
func countValues(arr []int) *btree.BTreeG[*valueCount] {
	tree := btree.NewG[*valueCount](btreeDegree, lessValueCount)

	for _, v := range arr {
		if item, ok := tree.Get(&valueCount{value: v}); ok {
			item.count++
			continue
		}
		tree.ReplaceOrInsert(&valueCount{value: v, count: 1})
	}
	return tree
}

// orderedMapSort 정렬 맵 전략
// 주의: 키만 반환하므로 결과는 "서로 다른 값"의 정렬 집합이다.
// 중복이 있으면 결과 길이가 입력보다 짧다 (카운트는 복원하지 않음).
func orderedMapSort(arr []int) []int {
	tree := countValues(arr)

	keys := make([]int, 0, tree.Len())
	tree.Ascend(func(item *valueCount) bool {
		keys = append(keys, item.value)
		return true
	})
	return keys
}
