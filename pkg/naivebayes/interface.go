package naivebayes

// Classifier is a probabilistic text classifier over count vectors.
type Classifier interface {
	// Fit trains on rows of X labelled by the parallel y.
	Fit(X [][]float64, y []string) error
	// PredictProba returns one probability per class, in Classes order, summing to 1.
	PredictProba(x []float64) ([]float64, error)
	// Classes returns the known labels in first-seen order.
	Classes() []string
}
