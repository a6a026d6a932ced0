package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ugc-collab/chat-service/internal/domain"
	"github.com/ugc-collab/chat-service/internal/postgres"
	"github.com/ugc-collab/chat-service/internal/security"
	"github.com/ugc-collab/chat-service/internal/transport/ws"
)

type fakeAuth struct{}

func (fakeAuth) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if token != "good" {
		return nil, security.ErrInvalidToken
	}
	return &domain.User{ID: 1, Username: "alice"}, nil
}

type fakeChatSvc struct {
	items []domain.ChatMessage
	next  string
	err   error
}

func (f *fakeChatSvc) History(_ context.Context, collabID int64, after string, limit int) ([]domain.ChatMessage, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	var out []domain.ChatMessage
	for _, m := range f.items {
		if m.CollabID == collabID {
			out = append(out, m)
		}
	}
	return out, f.next, nil
}

func newTestAPI(t *testing.T, chat *fakeChatSvc) *httptest.Server {
	t.Helper()

	auth := fakeAuth{}
	h := NewHandler(chat)
	wsServer := ws.NewServer(ws.NewHub(), auth, nil)
	ts := httptest.NewServer(NewRouter(h, auth, wsServer))
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHistoryRequiresBearer(t *testing.T) {
	ts := newTestAPI(t, &fakeChatSvc{})

	if resp := get(t, ts, "/api/chat/42", ""); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if resp := get(t, ts, "/api/chat/42", "bad"); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestHistoryReturnsAscendingItems(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	chat := &fakeChatSvc{
		items: []domain.ChatMessage{
			{ID: 1, CollabID: 42, SenderID: 1, SenderUsername: "alice", Text: "hi", CreatedAt: base},
			{ID: 2, CollabID: 42, SenderID: 2, SenderUsername: "bob", Text: "yo", CreatedAt: base.Add(time.Minute)},
			{ID: 3, CollabID: 7, SenderID: 1, SenderUsername: "alice", Text: "other", CreatedAt: base},
		},
		next: "cursor-abc",
	}
	ts := newTestAPI(t, chat)

	resp := get(t, ts, "/api/chat/42?limit=10", "good")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body ChatHistoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(body.Items))
	}
	if body.Items[0].Message != "hi" || body.Items[1].Message != "yo" {
		t.Fatalf("order broken: %+v", body.Items)
	}
	if body.Items[0].SenderUsername != "alice" || body.Items[0].CollabID != 42 {
		t.Fatalf("item = %+v", body.Items[0])
	}
	if body.NextCursor != "cursor-abc" {
		t.Fatalf("next_cursor = %q", body.NextCursor)
	}
}

func TestHistoryInvalidCursor(t *testing.T) {
	chat := &fakeChatSvc{err: fmt.Errorf("decode cursor: %w", postgres.ErrInvalidCursor)}
	ts := newTestAPI(t, chat)

	resp := get(t, ts, "/api/chat/42?after=garbage", "good")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHistoryBadCollabID(t *testing.T) {
	ts := newTestAPI(t, &fakeChatSvc{})

	for _, path := range []string{"/api/chat/abc", "/api/chat/-5", "/api/chat/0"} {
		if resp := get(t, ts, path, "good"); resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("GET %s status = %d, want 400", path, resp.StatusCode)
		}
	}
}

func TestHistoryStoreError(t *testing.T) {
	ts := newTestAPI(t, &fakeChatSvc{err: errors.New("db down")})

	if resp := get(t, ts, "/api/chat/42", "good"); resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestAPI(t, &fakeChatSvc{})

	if resp := get(t, ts, "/healthz", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
