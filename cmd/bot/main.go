package main

import (
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/sspletnik/gossipbot/internal/bot"
	"github.com/sspletnik/gossipbot/internal/config"
	"github.com/sspletnik/gossipbot/internal/db"
	"github.com/sspletnik/gossipbot/internal/httpapi"
	"github.com/sspletnik/gossipbot/internal/notify"
	"github.com/sspletnik/gossipbot/internal/rumor"
	"github.com/sspletnik/gossipbot/internal/session"
	"github.com/sspletnik/gossipbot/internal/stats"
	"github.com/sspletnik/gossipbot/internal/telegram"
)

func main() {
	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	gdb := db.Connect(cfg.DBDSN)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)

	pub, err := notify.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
	if err != nil {
		log.Fatalf("rabbit connect: %v", err)
	}
	defer pub.Close()

	events := stats.NewRepo(gdb)
	rumors := rumor.NewService(rumor.NewRepo(gdb))
	notifier := notify.NewService(events, notify.NewRepo(gdb), pub)
	tg := telegram.NewClient(cfg.APIBaseURL, cfg.BotToken)

	engine := bot.NewEngine(sessions, rumors, events, notifier, tg, cfg.BotName, cfg.PageSize)

	r := httpapi.NewRouter(engine, cfg.WebhookSecret)

	log.Infof("bot listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
