package sortalgo

// QuickSort uses the Hoare partition scheme around the middle element.
// Sub-ranges are kept on an explicit stack instead of the call stack; the
// larger range is pushed first so the smaller one is processed next and the
// stack never holds more than O(log n) ranges.
type QuickSort struct{}

// Name implements Algorithm.
func (QuickSort) Name() Name { return Quick }

type span struct{ left, right int }

// Sort implements Algorithm.
func (QuickSort) Sort(s []int) []int {
	if trivial(s) {
		return s
	}

	stack := []span{{0, len(s) - 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		index := partition(s, top.left, top.right)

		lower := span{top.left, index - 1}
		upper := span{index, top.right}
		lowerLive := top.left < index-1
		upperLive := index < top.right

		switch {
		case lowerLive && upperLive:
			if lower.right-lower.left > upper.right-upper.left {
				stack = append(stack, lower, upper)
			} else {
				stack = append(stack, upper, lower)
			}
		case lowerLive:
			stack = append(stack, lower)
		case upperLive:
			stack = append(stack, upper)
		}
	}
	return s
}

// partition rearranges s[left..right] so that everything before the
// returned index is <= pivot and everything from it onward is >= pivot.
func partition(s []int, left, right int) int {
	i, j := left, right
	pivot := s[left+(right-left)/2]

	for i <= j {
		for s[i] < pivot {
			i++
		}
		for s[j] > pivot {
			j--
		}
		if i <= j {
			s[i], s[j] = s[j], s[i]
			i++
			j--
		}
	}
	return i
}
