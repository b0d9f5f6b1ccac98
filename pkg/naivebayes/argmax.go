package naivebayes

// ArgMax returns the index and value of the largest probability. Ties go to
// the lowest index. It returns -1 for an empty slice.
func ArgMax(probs []float64) (int, float64) {
	best, bestP := -1, 0.0
	for i, p := range probs {
		if best == -1 || p > bestP {
			best, bestP = i, p
		}
	}
	return best, bestP
}
