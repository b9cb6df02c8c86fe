package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/sspletnik/gossipbot/internal/bot"
	"github.com/sspletnik/gossipbot/internal/rumor"
	"github.com/sspletnik/gossipbot/internal/session"
	"github.com/sspletnik/gossipbot/internal/stats"
	"github.com/sspletnik/gossipbot/internal/telegram"
)

type nopNotifier struct{}

func (nopNotifier) NotifySubject(ctx context.Context, username, text string) (bool, error) {
	return false, nil
}

type nopSender struct{}

func (nopSender) SendMessage(ctx context.Context, chatID int64, text string, markup any) (int64, error) {
	return 1, nil
}

func (nopSender) EditMessageText(ctx context.Context, chatID, messageID int64, text string, markup *telegram.InlineKeyboardMarkup) error {
	return nil
}

func (nopSender) AnswerCallbackQuery(ctx context.Context, id string) error { return nil }

func newTestRouter(t *testing.T, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(gormsqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&rumor.Rumor{}, &stats.Event{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	engine := bot.NewEngine(
		session.NewMemoryStore(),
		rumor.NewService(rumor.NewRepo(db)),
		stats.NewRepo(db),
		nopNotifier{},
		nopSender{},
		"testbot",
		5,
	)

	r := gin.New()
	h := NewHandler(engine, secret)
	r.POST("/telegram/webhook", h.Webhook)
	r.GET("/healthz", h.Ping)
	return r
}

func TestWebhook_AcksMalformedBody(t *testing.T) {
	r := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("malformed body must still ack: got %d", w.Code)
	}
}

func TestWebhook_AcksSameUpdateTwice(t *testing.T) {
	r := newTestRouter(t, "")

	body := `{"update_id":1,"message":{"message_id":5,"from":{"id":1,"username":"u"},"chat":{"id":1},"text":"hello"}}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("delivery %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestWebhook_SecretToken(t *testing.T) {
	r := newTestRouter(t, "s3cret")

	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing secret must be rejected: got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader("{}"))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "s3cret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid secret must pass: got %d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
