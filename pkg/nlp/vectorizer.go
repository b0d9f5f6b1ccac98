package nlp

// TokenizeFunc splits text into tokens.
type TokenizeFunc func(text string) []string

// CountVectorizer turns text into bag-of-words count vectors.
type CountVectorizer struct {
	tokenize TokenizeFunc
}

// NewCountVectorizer creates a vectorizer using Tokenize.
func NewCountVectorizer() *CountVectorizer {
	return &CountVectorizer{tokenize: Tokenize}
}

// NewCountVectorizerWithTokenizer creates a vectorizer with a custom tokenizer.
func NewCountVectorizerWithTokenizer(fn TokenizeFunc) *CountVectorizer {
	if fn == nil {
		fn = Tokenize
	}
	return &CountVectorizer{tokenize: fn}
}

// Fit learns a vocabulary from texts. Columns are assigned in the order
// tokens are first seen, scanning texts in order and each text left to right.
func (cv *CountVectorizer) Fit(texts []string) *Vocabulary {
	vocab := &Vocabulary{index: make(map[string]int)}
	for _, text := range texts {
		for _, token := range cv.tokenize(text) {
			if _, ok := vocab.index[token]; ok {
				continue
			}
			vocab.index[token] = len(vocab.tokens)
			vocab.tokens = append(vocab.tokens, token)
		}
	}
	return vocab
}

// Transform maps text to a dense count vector over vocab. Tokens missing
// from vocab are dropped.
func (cv *CountVectorizer) Transform(text string, vocab *Vocabulary) []float64 {
	vec := make([]float64, vocab.Size())
	for _, token := range cv.tokenize(text) {
		if i, ok := vocab.Index(token); ok {
			vec[i]++
		}
	}
	return vec
}

// FitTransform fits a vocabulary and returns the training matrix.
func (cv *CountVectorizer) FitTransform(texts []string) (*Vocabulary, [][]float64) {
	vocab := cv.Fit(texts)
	matrix := make([][]float64, len(texts))
	for i, text := range texts {
		matrix[i] = cv.Transform(text, vocab)
	}
	return vocab, matrix
}
