package main

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ordered_map은 중복 값을 카운트로 합치고 키만 반환한다.
// 다른 전략과 달리 결과는 "서로 다른 값"의 정렬 집합이며, 이 차이는 의도적으로 유지한다.
func TestOrderedMapSort_CollapsesDuplicates(t *testing.T) {
	got := orderedMapSort([]int{5, 3, 8, 3, 1})

	assert.Equal(t, []int{1, 3, 5, 8}, got)
	assert.Len(t, got, 4, "duplicates collapse: length 4, not 5")
}

func TestOrderedMapSort_CountsDuplicates(t *testing.T) {
	tree := countValues([]int{5, 3, 8, 3, 1, 3})

	item, ok := tree.Get(&valueCount{value: 3})
	require.True(t, ok)
	assert.Equal(t, 3, item.count)

	item, ok = tree.Get(&valueCount{value: 8})
	require.True(t, ok)
	assert.Equal(t, 1, item.count)

	_, ok = tree.Get(&valueCount{value: 4})
	assert.False(t, ok)
	assert.Equal(t, 4, tree.Len())
}

func TestOrderedMapSort_DistinctSortedValues(t *testing.T) {
	for _, maxValue := range []int{0, 10, 1_000} {
		input := newGenerator(defaultSeed, maxValue).generateRandomData(5_000)

		want := slices.Compact(sortedCopy(input))
		got := orderedMapSort(input)

		assert.Equal(t, want, got, "max=%d", maxValue)
		assert.LessOrEqual(t, len(got), len(input))
		if maxValue > 0 {
			assert.LessOrEqual(t, len(got), maxValue)
		}
	}
}

func TestOrderedMapSort_Boundaries(t *testing.T) {
	assert.Empty(t, orderedMapSort(nil))
	assert.Equal(t, []int{9}, orderedMapSort([]int{9}))

	sorted := []int{1, 2, 3, 4}
	assert.Equal(t, sorted, orderedMapSort(sorted))
}

func TestLibrarySort_NewSlice(t *testing.T) {
	input := []int{3, 1, 2}

	got := librarySort(input)

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{3, 1, 2}, input, "input must not change")
}
