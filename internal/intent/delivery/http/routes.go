package http

import (
	"github.com/gin-gonic/gin"

	"intent-chatbot/internal/middleware"
)

// RegisterRoutes maps the chat widget routes on the engine root and the API
// routes under rg. Message endpoints are rate limited per client.
func RegisterRoutes(r *gin.Engine, rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	r.GET("/", h.Home)
	r.POST("/get_response", mw.RateLimit(), h.GetResponse)

	rg.POST("/chat", mw.RateLimit(), h.Chat)

	intents := rg.Group("/intents")
	{
		intents.GET("", h.ListIntents)
		intents.POST("/classify", mw.RateLimit(), h.Classify)
	}
}
