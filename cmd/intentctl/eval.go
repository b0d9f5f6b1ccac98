package main

import (
	"context"

	"intent-chatbot/internal/intent"
)

type miss struct {
	Pattern string
	Want    string
	Got     string
}

type evalReport struct {
	Correct int
	Total   int
	Misses  []miss
}

func (r evalReport) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// evaluate classifies every training pattern and compares against its tag.
// Patterns the classifier rejects count as misses with an empty prediction.
func evaluate(ctx context.Context, uc intent.UseCase, catalog intent.Catalog) evalReport {
	var report evalReport
	texts, tags := catalog.TrainingCorpus()
	for i, text := range texts {
		report.Total++
		pred, err := uc.Classify(ctx, text)
		if err == nil && pred.Tag == tags[i] {
			report.Correct++
			continue
		}
		report.Misses = append(report.Misses, miss{Pattern: text, Want: tags[i], Got: pred.Tag})
	}
	return report
}

func respondInput(message string) intent.RespondInput {
	return intent.RespondInput{Message: message}
}
