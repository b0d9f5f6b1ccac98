package http

import (
	"github.com/gin-gonic/gin"

	"intent-chatbot/internal/intent"
	"intent-chatbot/pkg/log"
)

// Handler is the public interface for the intent HTTP delivery layer.
type Handler interface {
	Home(c *gin.Context)
	GetResponse(c *gin.Context)
	Chat(c *gin.Context)
	Classify(c *gin.Context)
	ListIntents(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc intent.UseCase
}

// New creates a new HTTP handler for the intent domain.
func New(l log.Logger, uc intent.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
