package httpmw

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ugc-collab/chat-service/pkg/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const ctxKeyLogger ctxKey = "logger"

// RequestLogger кладёт в контекст slog с request_id и, если запрос пришёл
// с активным span, с trace-атрибутами. Хендлеры берут его через LoggerFromCtx.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.L()
		if reqID := chimw.GetReqID(r.Context()); reqID != "" {
			l = l.With("request_id", reqID)
		}
		for _, a := range logger.AttrsFromCtx(r.Context()) {
			l = l.With(a)
		}

		ctx := context.WithValue(r.Context(), ctxKeyLogger, l)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggerFromCtx(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKeyLogger).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
