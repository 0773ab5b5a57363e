package sortalgo

// BubbleSort repeatedly swaps adjacent out-of-order pairs. Each pass
// settles the largest remaining value at the end, so the inner loop
// shrinks by one per pass. There is no early exit on a pass without swaps.
type BubbleSort struct{}

// Name implements Algorithm.
func (BubbleSort) Name() Name { return Bubble }

// Sort implements Algorithm.
func (BubbleSort) Sort(s []int) []int {
	if trivial(s) {
		return s
	}

	n := len(s)
	for i := 0; i < n; i++ {
		for j := 1; j < n-i; j++ {
			if s[j-1] > s[j] {
				s[j-1], s[j] = s[j], s[j-1]
			}
		}
	}
	return s
}

// InsertionSort shifts larger values right until the key fits.
// Linear on already sorted input.
type InsertionSort struct{}

// Name implements Algorithm.
func (InsertionSort) Name() Name { return Insertion }

// Sort implements Algorithm.
func (InsertionSort) Sort(s []int) []int {
	if trivial(s) {
		return s
	}

	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
	return s
}

// SelectionSort swaps the minimum of the unsorted remainder into place.
// Always performs n(n-1)/2 comparisons.
type SelectionSort struct{}

// Name implements Algorithm.
func (SelectionSort) Name() Name { return Selection }

// Sort implements Algorithm.
func (SelectionSort) Sort(s []int) []int {
	if trivial(s) {
		return s
	}

	for i := 0; i < len(s)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			if s[j] < s[minIdx] {
				minIdx = j
			}
		}
		s[i], s[minIdx] = s[minIdx], s[i]
	}
	return s
}
