package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"intent-chatbot/internal/intent"
	"intent-chatbot/internal/intent/repository"
	"intent-chatbot/pkg/log"
	"intent-chatbot/pkg/naivebayes"
	"intent-chatbot/pkg/nlp"
	"intent-chatbot/pkg/randsrc"
)

// Config tunes response selection. Zero values take the intent package defaults.
type Config struct {
	ConfidenceThreshold float64
	FallbackResponse    string
	EmptyInputResponse  string // defaults to FallbackResponse
	Random              randsrc.Source
	CacheSize           int // 0 disables the prediction cache
	CacheTTL            time.Duration
}

// implUseCase holds the trained, immutable pipeline. Every field is read-only
// after New returns, so concurrent calls need no locking.
type implUseCase struct {
	l          log.Logger
	vectorizer *nlp.CountVectorizer
	vocab      *nlp.Vocabulary
	clf        naivebayes.Classifier
	classes    []string
	pool       map[string][]string
	summary    intent.ListIntentsOutput
	cache      *expirable.LRU[string, intent.Prediction]
	rnd        randsrc.Source

	threshold     float64
	fallback      string
	emptyResponse string
}

var _ intent.UseCase = (*implUseCase)(nil)

// New fits the vectorizer and classifier on catalog and returns the ready pipeline.
func New(l log.Logger, catalog intent.Catalog, cfg Config) (*implUseCase, error) {
	if catalog.Len() == 0 {
		return nil, intent.ErrEmptyCatalog
	}

	cfg = withDefaults(cfg)

	texts, tags := catalog.TrainingCorpus()
	vectorizer := nlp.NewCountVectorizer()
	vocab, X := vectorizer.FitTransform(texts)

	clf := naivebayes.NewMultinomial()
	if err := clf.Fit(X, tags); err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}

	uc := &implUseCase{
		l:             l,
		vectorizer:    vectorizer,
		vocab:         vocab,
		clf:           clf,
		classes:       clf.Classes(),
		pool:          catalog.ResponsePool(),
		summary:       summarize(catalog, vocab),
		rnd:           cfg.Random,
		threshold:     cfg.ConfidenceThreshold,
		fallback:      cfg.FallbackResponse,
		emptyResponse: cfg.EmptyInputResponse,
	}
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, intent.Prediction](cfg.CacheSize, nil, cfg.CacheTTL)
	}

	return uc, nil
}

// NewFromRepository loads the catalog from repo and trains on it.
func NewFromRepository(ctx context.Context, l log.Logger, repo repository.Repository, cfg Config) (*implUseCase, error) {
	catalog, err := repo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	uc, err := New(l, catalog, cfg)
	if err != nil {
		return nil, err
	}

	l.Infof(ctx, "intent.usecase.New: trained on %d intents, vocabulary size %d", catalog.Len(), uc.vocab.Size())
	return uc, nil
}

func withDefaults(cfg Config) Config {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = intent.DefaultConfidenceThreshold
	}
	if cfg.FallbackResponse == "" {
		cfg.FallbackResponse = intent.DefaultFallbackResponse
	}
	if cfg.EmptyInputResponse == "" {
		cfg.EmptyInputResponse = cfg.FallbackResponse
	}
	if cfg.Random == nil {
		cfg.Random = randsrc.New(0)
	}
	return cfg
}

func summarize(catalog intent.Catalog, vocab *nlp.Vocabulary) intent.ListIntentsOutput {
	out := intent.ListIntentsOutput{
		Intents:        make([]intent.IntentSummary, len(catalog.Intents)),
		VocabularySize: vocab.Size(),
	}
	for i, in := range catalog.Intents {
		out.Intents[i] = intent.IntentSummary{
			Tag:       in.Tag,
			Patterns:  len(in.Patterns),
			Responses: len(in.Responses),
		}
	}
	return out
}
