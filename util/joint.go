package util

// Cartesian enumerates the cartesian product of the given sets
// preserving the order of the sets and of the elements within each set.
// The product of zero sets is the single empty combination.
// Used to build joint actions out of per-walker action sets.
func Cartesian[T any](sets [][]T) [][]T {
	result := [][]T{{}}
	for _, set := range sets {
		if len(set) == 0 {
			return [][]T{}
		}
		next := make([][]T, 0, len(result)*len(set))
		for _, prefix := range result {
			for _, elem := range set {
				combination := make([]T, len(prefix), len(prefix)+1)
				copy(combination, prefix)
				combination = append(combination, elem)
				next = append(next, combination)
			}
		}
		result = next
	}
	return result
}
