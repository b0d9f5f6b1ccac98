package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"intent-chatbot/pkg/response"
)

//go:embed static/index.html
var indexHTML []byte

// Home serves the embedded chat page.
func (h *handler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

// GetResponse godoc
// @Summary     Get a chatbot reply
// @Description Classifies the message and returns a canned reply. Always 200 for a well-formed body.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "User message"
// @Success     200  {object} legacyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /get_response [POST]
func (h *handler) GetResponse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		h.l.Warnf(ctx, "intent.delivery.http.GetResponse bind: %v", err)
		response.Error(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, legacyResp{Response: h.uc.GetResponse(ctx, *req.Message)})
}

// Chat godoc
// @Summary     Chat with classification details
// @Description Returns the reply together with the predicted tag, confidence and fallback reason.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "User message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out := h.uc.Respond(ctx, req.toInput())
	response.OK(c, h.newChatResp(out))
}

// Classify godoc
// @Summary     Classify text
// @Description Returns the probability of every intent tag for the given text.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Text to classify"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	pred, err := h.uc.Classify(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newClassifyResp(pred))
}

// ListIntents godoc
// @Summary     List intents
// @Description Returns every loaded intent tag with its pattern and response counts.
// @Tags        Intents
// @Produce     json
// @Success     200 {object} listIntentsResp
// @Router      /api/v1/intents [GET]
func (h *handler) ListIntents(c *gin.Context) {
	response.OK(c, h.newListIntentsResp(h.uc.ListIntents(c.Request.Context())))
}
