package naivebayes

import "errors"

var (
	ErrNotFitted          = errors.New("naivebayes: model is not fitted")
	ErrEmptyTrainingSet   = errors.New("naivebayes: empty training set")
	ErrLabelMismatch      = errors.New("naivebayes: X and y lengths differ")
	ErrDimensionMismatch  = errors.New("naivebayes: feature dimension mismatch")
	ErrInvalidFeature     = errors.New("naivebayes: feature counts must be finite and non-negative")
	ErrInvalidSmoothing   = errors.New("naivebayes: smoothing alpha must be positive")
	ErrDegenerateEstimate = errors.New("naivebayes: probability estimate is not finite")
)
