package naivebayes_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"intent-chatbot/pkg/naivebayes"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestMultinomialFit(t *testing.T) {
	tests := []struct {
		name    string
		X       [][]float64
		y       []string
		opts    []naivebayes.Option
		wantErr error
	}{
		{name: "Empty training set", X: nil, y: nil, wantErr: naivebayes.ErrEmptyTrainingSet},
		{name: "Label mismatch", X: [][]float64{{1}}, y: []string{"a", "b"}, wantErr: naivebayes.ErrLabelMismatch},
		{name: "Ragged rows", X: [][]float64{{1, 0}, {1}}, y: []string{"a", "b"}, wantErr: naivebayes.ErrDimensionMismatch},
		{name: "Negative count", X: [][]float64{{-1}}, y: []string{"a"}, wantErr: naivebayes.ErrInvalidFeature},
		{name: "Zero alpha", X: [][]float64{{1}}, y: []string{"a"}, opts: []naivebayes.Option{naivebayes.WithAlpha(0)}, wantErr: naivebayes.ErrInvalidSmoothing},
		{name: "Valid", X: [][]float64{{1, 0}, {0, 1}}, y: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := naivebayes.NewMultinomial(tt.opts...)
			err := m.Fit(tt.X, tt.y)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMultinomialPredictProba(t *testing.T) {
	m := naivebayes.NewMultinomial()
	if err := m.Fit([][]float64{{1, 0}, {0, 1}}, []string{"a", "b"}); err != nil {
		t.Fatalf("fit: %v", err)
	}

	t.Run("Laplace smoothed closed form", func(t *testing.T) {
		// P(a)=P(b)=1/2, P(t0|a)=2/3, P(t0|b)=1/3
		probs, err := m.PredictProba([]float64{1, 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approx(probs[0], 2.0/3.0) || !approx(probs[1], 1.0/3.0) {
			t.Errorf("expected [2/3 1/3], got %v", probs)
		}
	})

	t.Run("Zero vector falls back to priors", func(t *testing.T) {
		probs, err := m.PredictProba([]float64{0, 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approx(probs[0], 0.5) || !approx(probs[1], 0.5) {
			t.Errorf("expected uniform priors, got %v", probs)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		first, _ := m.PredictProba([]float64{3, 1})
		for i := 0; i < 50; i++ {
			again, _ := m.PredictProba([]float64{3, 1})
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("distribution changed between calls: %v vs %v", first, again)
			}
		}
	})

	t.Run("Sums to one for large counts", func(t *testing.T) {
		probs, err := m.PredictProba([]float64{5000, 4999})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approx(probs[0]+probs[1], 1) {
			t.Errorf("expected probabilities to sum to 1, got %v", probs)
		}
	})

	t.Run("Dimension mismatch", func(t *testing.T) {
		if _, err := m.PredictProba([]float64{1}); !errors.Is(err, naivebayes.ErrDimensionMismatch) {
			t.Errorf("expected ErrDimensionMismatch, got %v", err)
		}
	})

	t.Run("NaN feature", func(t *testing.T) {
		if _, err := m.PredictProba([]float64{math.NaN(), 0}); !errors.Is(err, naivebayes.ErrInvalidFeature) {
			t.Errorf("expected ErrInvalidFeature, got %v", err)
		}
	})

	t.Run("Classes keep first-seen order", func(t *testing.T) {
		if got := m.Classes(); !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Errorf("unexpected classes %v", got)
		}
	})
}

func TestMultinomialEdgeCases(t *testing.T) {
	t.Run("Not fitted", func(t *testing.T) {
		m := naivebayes.NewMultinomial()
		if _, err := m.PredictProba(nil); !errors.Is(err, naivebayes.ErrNotFitted) {
			t.Errorf("expected ErrNotFitted, got %v", err)
		}
	})

	t.Run("Single class always certain", func(t *testing.T) {
		m := naivebayes.NewMultinomial()
		if err := m.Fit([][]float64{{1, 0}, {0, 2}}, []string{"only", "only"}); err != nil {
			t.Fatalf("fit: %v", err)
		}
		for _, x := range [][]float64{{0, 0}, {9, 0}, {1, 1}} {
			probs, err := m.PredictProba(x)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(probs) != 1 || probs[0] != 1.0 {
				t.Errorf("expected [1], got %v", probs)
			}
		}
	})

	t.Run("Priors follow class frequency", func(t *testing.T) {
		m := naivebayes.NewMultinomial()
		if err := m.Fit([][]float64{{1}, {1}, {1}, {1}}, []string{"a", "a", "a", "b"}); err != nil {
			t.Fatalf("fit: %v", err)
		}
		probs, _ := m.PredictProba([]float64{0})
		if !approx(probs[0], 0.75) || !approx(probs[1], 0.25) {
			t.Errorf("expected [0.75 0.25], got %v", probs)
		}
	})

	t.Run("Empty vocabulary", func(t *testing.T) {
		m := naivebayes.NewMultinomial()
		if err := m.Fit([][]float64{{}, {}}, []string{"a", "b"}); err != nil {
			t.Fatalf("fit: %v", err)
		}
		probs, err := m.PredictProba([]float64{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approx(probs[0], 0.5) {
			t.Errorf("expected uniform, got %v", probs)
		}
	})
}

func TestArgMax(t *testing.T) {
	tests := []struct {
		name  string
		in    []float64
		want  int
		wantP float64
	}{
		{name: "Empty", in: nil, want: -1, wantP: 0},
		{name: "Unique max", in: []float64{0.1, 0.7, 0.2}, want: 1, wantP: 0.7},
		{name: "Tie goes to first", in: []float64{0.5, 0.5}, want: 0, wantP: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, p := naivebayes.ArgMax(tt.in)
			if i != tt.want || p != tt.wantP {
				t.Errorf("ArgMax(%v) = (%d, %v), want (%d, %v)", tt.in, i, p, tt.want, tt.wantP)
			}
		})
	}
}
