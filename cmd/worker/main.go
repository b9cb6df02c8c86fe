package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/sspletnik/gossipbot/internal/config"
	"github.com/sspletnik/gossipbot/internal/db"
	"github.com/sspletnik/gossipbot/internal/notify"
	"github.com/sspletnik/gossipbot/internal/telegram"
)

func workerConcurrency() int {
	v := os.Getenv("WORKER_CONCURRENCY")
	if v == "" {
		return 2
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 2
	}
	if n > 50 {
		return 50
	}
	return n
}

func main() {
	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	gdb := db.Connect(cfg.DBDSN)
	outbox := notify.NewRepo(gdb)
	tg := telegram.NewClient(cfg.APIBaseURL, cfg.BotToken)

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("rabbit dial: %v", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbit channel: %v", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(cfg.RabbitQueue, true, false, false, false, nil)
	if err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	concurrency := workerConcurrency()

	if err := ch.Qos(concurrency, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("notification worker started, queue=%s concurrency=%d", cfg.RabbitQueue, concurrency)

	// worker pool
	jobs := make(chan amqp.Delivery, concurrency*2)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()
			for d := range jobs {
				var m notify.QueueMessage
				if err := json.Unmarshal(d.Body, &m); err != nil || m.NotificationID == "" {
					log.Warnf("worker=%d bad message: %v", workerID, err)
					_ = d.Nack(false, false)
					continue
				}

				if err := deliver(ctx, outbox, tg, m.NotificationID); err != nil {
					log.Warnf("worker=%d notification %s failed: %v", workerID, m.NotificationID, err)
					_ = d.Nack(false, false)
					continue
				}

				if err := d.Ack(false); err != nil {
					log.Warnf("worker=%d ack failed notification=%s err=%v", workerID, m.NotificationID, err)
				}
			}
		}(i)
	}

	// dispatcher
	for {
		select {
		case <-ctx.Done():
			log.Info("worker shutting down")
			close(jobs)
			wg.Wait()
			return

		case d, ok := <-msgs:
			if !ok {
				log.Warn("delivery channel closed")
				time.Sleep(1 * time.Second)
				continue
			}
			jobs <- d
		}
	}
}

func deliver(ctx context.Context, outbox *notify.Repo, tg *telegram.Client, id string) error {
	n, err := outbox.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.Status == notify.StatusSent {
		// Redelivered after a crash between send and ack. Nothing to do.
		return nil
	}

	if _, err := tg.SendMessage(ctx, n.ChatID, n.Text, nil); err != nil {
		_ = outbox.MarkFailed(ctx, id, err.Error())
		return err
	}
	return outbox.MarkSent(ctx, id)
}
