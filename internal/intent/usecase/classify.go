package usecase

import (
	"context"
	"fmt"

	"intent-chatbot/internal/intent"
	"intent-chatbot/pkg/naivebayes"
	"intent-chatbot/pkg/nlp"
	"intent-chatbot/pkg/telemetry"
)

// Classify returns the probability distribution over all tags for text.
func (uc *implUseCase) Classify(ctx context.Context, text string) (intent.Prediction, error) {
	if nlp.Normalize(text) == "" {
		return intent.Prediction{}, intent.ErrEmptyMessage
	}

	pred, err := uc.predict(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "intent.usecase.Classify predict: %v", err)
		return intent.Prediction{}, err
	}
	return pred, nil
}

// ListIntents summarizes the loaded catalog.
func (uc *implUseCase) ListIntents(ctx context.Context) intent.ListIntentsOutput {
	out := intent.ListIntentsOutput{
		Intents:        make([]intent.IntentSummary, len(uc.summary.Intents)),
		VocabularySize: uc.summary.VocabularySize,
	}
	copy(out.Intents, uc.summary.Intents)
	return out
}

// maxCacheKeyBytes bounds the size of texts kept in the prediction cache.
// Longer texts are still classified, just not cached.
const maxCacheKeyBytes = 512

// predict vectorizes the normalized text and runs the classifier. Results are
// cached by normalized text since prediction is deterministic.
func (uc *implUseCase) predict(ctx context.Context, text string) (intent.Prediction, error) {
	key := nlp.Normalize(text)
	cacheable := uc.cache != nil && len(key) <= maxCacheKeyBytes

	if cacheable {
		if pred, ok := uc.cache.Get(key); ok {
			telemetry.PredictionCacheHits.Inc()
			return pred, nil
		}
	}

	vec := uc.vectorizer.Transform(key, uc.vocab)
	probs, err := uc.clf.PredictProba(vec)
	if err != nil {
		return intent.Prediction{}, err
	}
	if len(probs) != len(uc.classes) {
		return intent.Prediction{}, fmt.Errorf("classifier returned %d probabilities for %d classes", len(probs), len(uc.classes))
	}

	best, confidence := naivebayes.ArgMax(probs)
	pred := intent.Prediction{
		Tag:          uc.classes[best],
		Confidence:   confidence,
		KnownTokens:  sumCounts(vec),
		Distribution: make([]intent.TagProbability, len(probs)),
	}
	for i, p := range probs {
		pred.Distribution[i] = intent.TagProbability{Tag: uc.classes[i], Probability: p}
	}

	telemetry.Confidence.Observe(confidence)
	if cacheable {
		uc.cache.Add(key, pred)
	}
	uc.l.Debugf(ctx, "intent.usecase.predict: %q -> %s (%.3f)", key, pred.Tag, confidence)
	return pred, nil
}
