package intent

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// GetResponse returns a reply for message. It never fails.
	GetResponse(ctx context.Context, message string) string

	// Respond is GetResponse with the classification details that produced the reply.
	Respond(ctx context.Context, input RespondInput) RespondOutput

	// Classify returns the full probability distribution for text.
	Classify(ctx context.Context, text string) (Prediction, error)

	// ListIntents summarizes the loaded catalog.
	ListIntents(ctx context.Context) ListIntentsOutput
}
