package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ugc-collab/chat-service/internal/domain"
	"github.com/ugc-collab/chat-service/internal/postgres"
	httpmw "github.com/ugc-collab/chat-service/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type ChatSvc interface {
	History(ctx context.Context, collabID int64, after string, limit int) ([]domain.ChatMessage, string, error)
}

type Handler struct {
	chatSvc ChatSvc
}

func NewHandler(chat ChatSvc) *Handler {
	return &Handler{chatSvc: chat}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /api/chat/{id}?after=&limit=
// История комнаты в порядке создания сообщений (ASC).
func (h *Handler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	collabID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || collabID <= 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid collaboration id"})
		return
	}

	after := r.URL.Query().Get("after")
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	items, next, err := h.chatSvc.History(r.Context(), collabID, after, limit)
	if err != nil {
		if errors.Is(err, postgres.ErrInvalidCursor) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_cursor"})
			return
		}
		httpmw.LoggerFromCtx(r.Context()).Error("handler.GetChatHistory:", slog.Any("err", err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	resp := ChatHistoryResponse{Items: make([]ChatMessageItem, 0, len(items)), NextCursor: next}
	for _, m := range items {
		resp.Items = append(resp.Items, ChatMessageItem{
			ID:             m.ID,
			CollabID:       m.CollabID,
			SenderID:       m.SenderID,
			SenderUsername: m.SenderUsername,
			Message:        m.Text,
			Timestamp:      m.CreatedAt.Truncate(time.Millisecond),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
