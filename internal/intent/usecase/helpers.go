package usecase

// sumCounts returns how many vocabulary tokens a count vector holds.
func sumCounts(vec []float64) int {
	n := 0
	for _, v := range vec {
		n += int(v)
	}
	return n
}
