package sortalgo

import "cmp"

// MergeSort is top-down merge sort. Every merge allocates a fresh output
// array; the final result is copied back so the caller's slice ends up
// sorted. Recursion depth is ceil(log2 n).
type MergeSort struct{}

// Name implements Algorithm.
func (MergeSort) Name() Name { return Merge }

// Sort implements Algorithm.
func (MergeSort) Sort(s []int) []int {
	if trivial(s) {
		return s
	}

	sorted := mergeSort(s, 0, len(s)-1)
	copy(s, sorted)
	return s
}

// mergeSort returns a new sorted array holding s[low..high] inclusive.
func mergeSort(s []int, low, high int) []int {
	if low == high {
		return []int{s[low]}
	}

	mid := low + (high-low)/2
	first := mergeSort(s, low, mid)
	second := mergeSort(s, mid+1, high)
	return merge(first, second)
}

// merge combines two sorted arrays.
func merge(a, b []int) []int {
	return mergeFunc(a, b, cmp.Compare[int])
}

// mergeFunc combines two arrays sorted by compare. On equal heads the head
// of a goes first, which keeps the merge stable.
func mergeFunc[T any](a, b []T, compare func(x, y T) int) []T {
	out := make([]T, len(a)+len(b))
	i, j, k := 0, 0, 0

	for i < len(a) && j < len(b) {
		if compare(a[i], b[j]) <= 0 {
			out[k] = a[i]
			i++
		} else {
			out[k] = b[j]
			j++
		}
		k++
	}
	k += copy(out[k:], a[i:])
	copy(out[k:], b[j:])
	return out
}
