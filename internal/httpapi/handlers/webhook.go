package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sspletnik/gossipbot/internal/bot"
	"github.com/sspletnik/gossipbot/internal/telegram"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type Handler struct {
	Engine        *bot.Engine
	WebhookSecret string
}

func NewHandler(engine *bot.Engine, webhookSecret string) *Handler {
	return &Handler{Engine: engine, WebhookSecret: webhookSecret}
}

func (h *Handler) Ping(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// Webhook consumes one Telegram update. The transport redelivers anything we
// do not ack, so this handler answers 200 no matter what happened inside the
// engine; internal failures are logged, never surfaced.
func (h *Handler) Webhook(c *gin.Context) {
	if h.WebhookSecret != "" && c.GetHeader(secretTokenHeader) != h.WebhookSecret {
		c.Status(http.StatusUnauthorized)
		return
	}

	var upd telegram.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		log.WithError(err).Warn("malformed update body")
		c.String(http.StatusOK, "OK")
		return
	}

	h.Engine.HandleUpdate(c.Request.Context(), upd)

	c.String(http.StatusOK, "OK")
}
