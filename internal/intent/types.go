package intent

// --- Catalog Domain Model ---

// Intent is a named category of user request with example phrases and canned replies.
type Intent struct {
	Tag       string
	Patterns  []string
	Responses []string
}

// Catalog is the validated, immutable set of intents loaded at startup.
type Catalog struct {
	Intents []Intent
}

// Len returns the number of intents.
func (c Catalog) Len() int {
	return len(c.Intents)
}

// Tags returns intent tags in catalog order.
func (c Catalog) Tags() []string {
	tags := make([]string, len(c.Intents))
	for i, in := range c.Intents {
		tags[i] = in.Tag
	}
	return tags
}

// TrainingCorpus flattens the catalog to parallel (pattern, tag) slices,
// one pair per pattern, in catalog order.
func (c Catalog) TrainingCorpus() (texts []string, tags []string) {
	for _, in := range c.Intents {
		for _, p := range in.Patterns {
			texts = append(texts, p)
			tags = append(tags, in.Tag)
		}
	}
	return texts, tags
}

// ResponsePool maps each tag to its responses.
func (c Catalog) ResponsePool() map[string][]string {
	pool := make(map[string][]string, len(c.Intents))
	for _, in := range c.Intents {
		responses := make([]string, len(in.Responses))
		copy(responses, in.Responses)
		pool[in.Tag] = responses
	}
	return pool
}

// --- Classification ---

// TagProbability is one entry of a predicted distribution.
type TagProbability struct {
	Tag         string
	Probability float64
}

// Prediction is the classifier output for one message. Treat it as read-only;
// predictions may be shared through the cache.
type Prediction struct {
	Tag          string
	Confidence   float64
	KnownTokens  int
	Distribution []TagProbability
}

// --- UseCase Inputs ---

type RespondInput struct {
	Message string
}

// --- UseCase Outputs ---

type RespondOutput struct {
	Response   string
	Tag        string
	Confidence float64
	Fallback   bool
	Reason     FallbackReason
}

type IntentSummary struct {
	Tag       string
	Patterns  int
	Responses int
}

type ListIntentsOutput struct {
	Intents        []IntentSummary
	VocabularySize int
}
