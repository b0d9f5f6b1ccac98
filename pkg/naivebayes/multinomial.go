package naivebayes

import (
	"fmt"
	"math"
)

// DefaultAlpha is Laplace (add-one) smoothing.
const DefaultAlpha = 1.0

// Multinomial is a multinomial Naive Bayes model. After Fit it is read-only
// and safe for concurrent PredictProba calls.
type Multinomial struct {
	alpha          float64
	classes        []string
	classLogPrior  []float64
	featureLogProb [][]float64
	nFeatures      int
	fitted         bool
}

var _ Classifier = (*Multinomial)(nil)

// Option configures a Multinomial model.
type Option func(*Multinomial)

// WithAlpha overrides the additive smoothing parameter.
func WithAlpha(alpha float64) Option {
	return func(m *Multinomial) { m.alpha = alpha }
}

// NewMultinomial creates an unfitted model.
func NewMultinomial(opts ...Option) *Multinomial {
	m := &Multinomial{alpha: DefaultAlpha}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fit estimates P(c) from label frequencies and P(t|c) from smoothed token
// counts: (count(t,c) + alpha) / (count(c) + alpha*|V|).
func (m *Multinomial) Fit(X [][]float64, y []string) error {
	if !(m.alpha > 0) {
		return ErrInvalidSmoothing
	}
	if len(X) == 0 {
		return ErrEmptyTrainingSet
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: %d rows, %d labels", ErrLabelMismatch, len(X), len(y))
	}

	nFeatures := len(X[0])
	classIndex := make(map[string]int)
	var classes []string
	var docCount []float64
	var featureCount [][]float64

	for i, row := range X {
		if len(row) != nFeatures {
			return fmt.Errorf("%w: row %d has %d features, expected %d", ErrDimensionMismatch, i, len(row), nFeatures)
		}
		if err := checkFeatures(row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}

		c, ok := classIndex[y[i]]
		if !ok {
			c = len(classes)
			classIndex[y[i]] = c
			classes = append(classes, y[i])
			docCount = append(docCount, 0)
			featureCount = append(featureCount, make([]float64, nFeatures))
		}

		docCount[c]++
		for t, v := range row {
			featureCount[c][t] += v
		}
	}

	total := float64(len(X))
	classLogPrior := make([]float64, len(classes))
	featureLogProb := make([][]float64, len(classes))
	smoothedVocab := m.alpha * float64(nFeatures)

	for c := range classes {
		classLogPrior[c] = math.Log(docCount[c] / total)

		var classTotal float64
		for _, v := range featureCount[c] {
			classTotal += v
		}
		denom := math.Log(classTotal + smoothedVocab)

		featureLogProb[c] = make([]float64, nFeatures)
		for t, v := range featureCount[c] {
			featureLogProb[c][t] = math.Log(v+m.alpha) - denom
		}
	}

	m.classes = classes
	m.classLogPrior = classLogPrior
	m.featureLogProb = featureLogProb
	m.nFeatures = nFeatures
	m.fitted = true
	return nil
}

// PredictProba computes log P(c) + sum_t x_t * log P(t|c) for every class
// and normalizes with log-sum-exp.
func (m *Multinomial) PredictProba(x []float64) ([]float64, error) {
	jll, err := m.JointLogLikelihood(x)
	if err != nil {
		return nil, err
	}

	maxLL := math.Inf(-1)
	for _, v := range jll {
		if v > maxLL {
			maxLL = v
		}
	}

	var sum float64
	probs := make([]float64, len(jll))
	for c, v := range jll {
		probs[c] = math.Exp(v - maxLL)
		sum += probs[c]
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return nil, ErrDegenerateEstimate
	}
	for c := range probs {
		probs[c] /= sum
	}

	return probs, nil
}

// JointLogLikelihood returns the unnormalized per-class log scores.
func (m *Multinomial) JointLogLikelihood(x []float64) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if len(x) != m.nFeatures {
		return nil, fmt.Errorf("%w: got %d, expected %d", ErrDimensionMismatch, len(x), m.nFeatures)
	}
	if err := checkFeatures(x); err != nil {
		return nil, err
	}

	jll := make([]float64, len(m.classes))
	for c := range m.classes {
		score := m.classLogPrior[c]
		for t, v := range x {
			if v != 0 {
				score += v * m.featureLogProb[c][t]
			}
		}
		if math.IsNaN(score) {
			return nil, ErrDegenerateEstimate
		}
		jll[c] = score
	}

	return jll, nil
}

// Classes returns the labels seen during Fit, in first-seen order.
func (m *Multinomial) Classes() []string {
	out := make([]string, len(m.classes))
	copy(out, m.classes)
	return out
}

// NumFeatures returns the vector width the model was fitted on.
func (m *Multinomial) NumFeatures() int {
	return m.nFeatures
}

func checkFeatures(x []float64) error {
	for _, v := range x {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidFeature
		}
	}
	return nil
}
