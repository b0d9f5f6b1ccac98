package intent

// Response selection defaults
const (
	DefaultConfidenceThreshold = 0.1
	DefaultFallbackResponse    = "I'm not sure I understand. Could you rephrase?"
)

// FallbackReason explains why a fallback response was returned.
type FallbackReason string

const (
	ReasonNone            FallbackReason = ""
	ReasonEmptyInput      FallbackReason = "empty_input"
	ReasonLowConfidence   FallbackReason = "low_confidence"
	ReasonNoResponses     FallbackReason = "no_responses"
	ReasonClassifierError FallbackReason = "classifier_error"
)
