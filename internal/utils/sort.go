package utils

import "sort"

func SortClasses(classes []int, asc bool) []int {
	sort.Slice(classes, func(i, j int) bool {
		if asc {
			return classes[i] < classes[j]
		}
		return classes[i] > classes[j]
	})
	return classes
}

func GetSortedClassKeys[T any](m map[int]T, asc bool) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return SortClasses(keys, asc)
}
