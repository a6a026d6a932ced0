package http

import (
	"net/http"
	"time"

	httpmw "github.com/ugc-collab/chat-service/internal/transport/http/middleware"
	"github.com/ugc-collab/chat-service/internal/transport/ws"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler, auth httpmw.Authenticator, wsServer *ws.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(httpmw.RequestLogger)
	r.Use(middlewareChi.Recoverer)

	// WS endpoint: токен проверяется внутри HandleWS (query-параметр)
	r.Get("/ws/chat/{id}", wsServer.HandleWS)

	// Read path истории требует Bearer-токен
	r.Group(func(pr chi.Router) {
		pr.Use(httpmw.AuthMiddleware(auth))
		pr.Use(middlewareChi.Timeout(30 * time.Second))

		pr.Get("/api/chat/{id}", h.GetChatHistory)
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
