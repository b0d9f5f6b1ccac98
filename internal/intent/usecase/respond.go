package usecase

import (
	"context"
	"strings"

	"intent-chatbot/internal/intent"
	"intent-chatbot/pkg/telemetry"
)

// GetResponse returns a reply for message and never fails.
func (uc *implUseCase) GetResponse(ctx context.Context, message string) string {
	return uc.Respond(ctx, intent.RespondInput{Message: message}).Response
}

// Respond classifies the message and picks a random response for the winning
// tag. Blank input, low confidence, a tag without responses and any internal
// failure all produce the fallback response.
func (uc *implUseCase) Respond(ctx context.Context, input intent.RespondInput) (out intent.RespondOutput) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "intent.usecase.Respond: recovered from panic: %v", r)
			out = uc.fallbackOutput(intent.ReasonClassifierError, out.Tag, out.Confidence)
		}
		uc.record(out)
	}()

	if strings.TrimSpace(input.Message) == "" {
		out = uc.fallbackOutput(intent.ReasonEmptyInput, "", 0)
		out.Response = uc.emptyResponse
		return out
	}

	pred, err := uc.predict(ctx, input.Message)
	if err != nil {
		uc.l.Warnf(ctx, "intent.usecase.Respond predict: %v", err)
		return uc.fallbackOutput(intent.ReasonClassifierError, "", 0)
	}

	if pred.Confidence < uc.threshold {
		uc.l.Debugf(ctx, "intent.usecase.Respond: confidence %.3f for %s below threshold %.3f", pred.Confidence, pred.Tag, uc.threshold)
		return uc.fallbackOutput(intent.ReasonLowConfidence, pred.Tag, pred.Confidence)
	}

	responses := uc.pool[pred.Tag]
	if len(responses) == 0 {
		uc.l.Warnf(ctx, "intent.usecase.Respond: no responses for tag %s", pred.Tag)
		return uc.fallbackOutput(intent.ReasonNoResponses, pred.Tag, pred.Confidence)
	}

	return intent.RespondOutput{
		Response:   responses[uc.rnd.IntN(len(responses))],
		Tag:        pred.Tag,
		Confidence: pred.Confidence,
	}
}

func (uc *implUseCase) fallbackOutput(reason intent.FallbackReason, tag string, confidence float64) intent.RespondOutput {
	return intent.RespondOutput{
		Response:   uc.fallback,
		Tag:        tag,
		Confidence: confidence,
		Fallback:   true,
		Reason:     reason,
	}
}

func (uc *implUseCase) record(out intent.RespondOutput) {
	tag := out.Tag
	if tag == "" {
		tag = telemetry.TagNone
	}
	outcome := telemetry.OutcomeMatched
	if out.Fallback {
		outcome = telemetry.OutcomeFallback
	}
	telemetry.ResponsesTotal.WithLabelValues(tag, outcome, string(out.Reason)).Inc()
}
