package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMessage_ReturnsMessageID(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":     true,
			"result": map[string]any{"message_id": 42, "chat": map[string]any{"id": 7}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token123")
	id, err := c.SendMessage(context.Background(), 7, "hello", ReplyKeyboard([]string{"/exit"}))
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected message id 42, got %d", id)
	}
	if gotPath != "/bottoken123/sendMessage" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody["text"] != "hello" {
		t.Fatalf("unexpected body: %v", gotBody)
	}
	if _, ok := gotBody["reply_markup"]; !ok {
		t.Fatalf("expected reply_markup in body: %v", gotBody)
	}
}

func TestCall_SurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":          false,
			"description": "Bad Request: message not found",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t")
	err := c.EditMessageText(context.Background(), 1, 99, "text", nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestAnswerCallbackQuery(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t")
	if err := c.AnswerCallbackQuery(context.Background(), "cb-1"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if gotBody["callback_query_id"] != "cb-1" {
		t.Fatalf("unexpected body: %v", gotBody)
	}
}
