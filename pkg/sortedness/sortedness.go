// Package sortedness measures how far a sequence is from ascending order.
//
// The measure is the inversion count: the number of index pairs i < j with
// s[i] > s[j]. Equal values never form an inversion. A sorted sequence has
// zero inversions and a strictly descending one has n(n-1)/2.
package sortedness

// Naive counts inversions with a direct double loop. O(n²).
func Naive(s []int) int64 {
	var count int64
	for i := 0; i < len(s)-1; i++ {
		for j := i + 1; j < len(s); j++ {
			if s[i] > s[j] {
				count++
			}
		}
	}
	return count
}

// Count counts inversions in O(n log n) by merge sorting a copy of s and
// adding, for each element taken from the right run, the number of
// elements still waiting in the left run. s is not modified.
func Count(s []int) int64 {
	if len(s) < 2 {
		return 0
	}

	work := make([]int, len(s))
	copy(work, s)
	buf := make([]int, len(s))
	return countRange(work, buf, 0, len(work))
}

// countRange sorts work[lo:hi] and returns its inversion count.
func countRange(work, buf []int, lo, hi int) int64 {
	if hi-lo < 2 {
		return 0
	}

	mid := lo + (hi-lo)/2
	count := countRange(work, buf, lo, mid) + countRange(work, buf, mid, hi)

	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if work[i] <= work[j] {
			buf[k] = work[i]
			i++
		} else {
			buf[k] = work[j]
			count += int64(mid - i)
			j++
		}
		k++
	}
	k += copy(buf[k:], work[i:mid])
	copy(buf[k:hi], work[j:hi])
	copy(work[lo:hi], buf[lo:hi])
	return count
}

// Max returns the largest possible inversion count for n elements.
func Max(n int) int64 {
	if n < 2 {
		return 0
	}
	return int64(n) * int64(n-1) / 2
}
