package http

import (
	"intent-chatbot/internal/intent"
)

// --- Request DTOs ---

// messageReq is the body shared by the chat endpoints. Message is a pointer so
// an explicit empty string passes binding and reaches the fallback path.
type messageReq struct {
	Message *string `json:"message" binding:"required"`
}

func (r messageReq) validate() error { return nil }

func (r messageReq) toInput() intent.RespondInput {
	return intent.RespondInput{Message: *r.Message}
}

type classifyReq struct {
	Text string `json:"text" binding:"required,max=4096"`
}

func (r classifyReq) validate() error { return nil }

// --- Response DTOs ---

// legacyResp is the chat widget contract: {"response": "..."}.
type legacyResp struct {
	Response string `json:"response"`
}

type chatResp struct {
	Response   string  `json:"response"`
	Tag        string  `json:"tag,omitempty"`
	Confidence float64 `json:"confidence"`
	Fallback   bool    `json:"fallback"`
	Reason     string  `json:"reason,omitempty"`
}

func (h *handler) newChatResp(out intent.RespondOutput) chatResp {
	return chatResp{
		Response:   out.Response,
		Tag:        out.Tag,
		Confidence: out.Confidence,
		Fallback:   out.Fallback,
		Reason:     string(out.Reason),
	}
}

type tagProbabilityResp struct {
	Tag         string  `json:"tag"`
	Probability float64 `json:"probability"`
}

type classifyResp struct {
	Tag          string               `json:"tag"`
	Confidence   float64              `json:"confidence"`
	KnownTokens  int                  `json:"known_tokens"`
	Distribution []tagProbabilityResp `json:"distribution"`
}

func (h *handler) newClassifyResp(pred intent.Prediction) classifyResp {
	dist := make([]tagProbabilityResp, len(pred.Distribution))
	for i, tp := range pred.Distribution {
		dist[i] = tagProbabilityResp{Tag: tp.Tag, Probability: tp.Probability}
	}
	return classifyResp{
		Tag:          pred.Tag,
		Confidence:   pred.Confidence,
		KnownTokens:  pred.KnownTokens,
		Distribution: dist,
	}
}

type intentSummaryResp struct {
	Tag       string `json:"tag"`
	Patterns  int    `json:"patterns"`
	Responses int    `json:"responses"`
}

type listIntentsResp struct {
	Intents        []intentSummaryResp `json:"intents"`
	Total          int                 `json:"total"`
	VocabularySize int                 `json:"vocabulary_size"`
}

func (h *handler) newListIntentsResp(out intent.ListIntentsOutput) listIntentsResp {
	items := make([]intentSummaryResp, len(out.Intents))
	for i, s := range out.Intents {
		items[i] = intentSummaryResp{Tag: s.Tag, Patterns: s.Patterns, Responses: s.Responses}
	}
	return listIntentsResp{
		Intents:        items,
		Total:          len(items),
		VocabularySize: out.VocabularySize,
	}
}
