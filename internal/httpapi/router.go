package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/sspletnik/gossipbot/internal/bot"
	"github.com/sspletnik/gossipbot/internal/httpapi/handlers"
	"github.com/sspletnik/gossipbot/internal/httpapi/middleware"
)

func NewRouter(engine *bot.Engine, webhookSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	h := handlers.NewHandler(engine, webhookSecret)

	r.GET("/healthz", h.Ping)
	r.POST("/telegram/webhook", h.Webhook)

	return r
}
