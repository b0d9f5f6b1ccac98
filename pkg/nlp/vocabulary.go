package nlp

// Vocabulary maps tokens to feature columns. It is immutable once built by
// CountVectorizer.Fit and safe for concurrent reads.
type Vocabulary struct {
	index  map[string]int
	tokens []string
}

// Size returns the number of columns.
func (v *Vocabulary) Size() int {
	if v == nil {
		return 0
	}
	return len(v.tokens)
}

// Index returns the column assigned to token.
func (v *Vocabulary) Index(token string) (int, bool) {
	if v == nil {
		return 0, false
	}
	i, ok := v.index[token]
	return i, ok
}

// Tokens returns the tokens in column order.
func (v *Vocabulary) Tokens() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}
