package norm

// Distance computes the Levenshtein edit distance between a and b: the
// minimum number of single-character insertions, deletions, and
// substitutions needed to transform one into the other.
//
// The computation uses the rolling two-row dynamic program, so auxiliary
// space is O(min(len(a), len(b))) rather than a full matrix. Repeated
// lookups over large key sets stay allocation-light.
func Distance(a, b string) int {
	// Keep the shorter string as the row to bound the buffers.
	if len(a) < len(b) {
		a, b = b, a
	}

	ra := []rune(a)
	rb := []rune(b)

	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
