package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ugc-collab/chat-service/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type AuthSvc interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type ChatSvc interface {
	Save(ctx context.Context, collabID, senderID int64, text string) (*domain.ChatMessage, error)
}

type Server struct {
	upgrader websocket.Upgrader
	hub      *Hub
	authSvc  AuthSvc
	chatSvc  ChatSvc

	pingEvery    time.Duration
	sendBuffer   int
	maxFrameSize int64
}

func NewServer(hub *Hub, auth AuthSvc, chat ChatSvc) *Server {
	return &Server{
		hub:     hub,
		authSvc: auth,
		chatSvc: chat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pingEvery:    15 * time.Second,
		sendBuffer:   64,
		maxFrameSize: 1 << 20,
	}
}

func (s *Server) SetPingInterval(d time.Duration) {
	if d > 0 {
		s.pingEvery = d
	}
}

func (s *Server) SetSendBuffer(n int) {
	if n > 0 {
		s.sendBuffer = n
	}
}

func (s *Server) SetMaxFrameSize(n int64) {
	if n > 0 {
		s.maxFrameSize = n
	}
}

// WS endpoint: GET /ws/chat/{id}?token=...
//
// Токен идёт query-параметром: не все ws-клиенты умеют произвольные
// заголовки на upgrade-запросе. Отказ — отдельными close-кодами уже после
// апгрейда, до апгрейда фрейм закрытия отправить некуда.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	collabID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || collabID <= 0 {
		http.Error(w, "invalid collaboration id", http.StatusBadRequest)
		return
	}
	token := strings.TrimSpace(r.URL.Query().Get("token"))

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws upgrade failed", "err", err)
		return
	}

	if token == "" {
		refuse(conn, CloseMissingToken, "missing token")
		return
	}

	user, err := s.authSvc.Authenticate(r.Context(), token)
	if err != nil {
		slog.Debug("ws auth failed", "collab", collabID, "err", err)
		refuse(conn, CloseInvalidToken, "invalid token")
		return
	}

	// TODO: проверять, что user — blogger или brand этой коллаборации.
	// Сейчас любой аутентифицированный пользователь может войти в любую
	// комнату по id, как и в исходной системе.

	c := newWsConn(conn, collabID, *user, s.sendBuffer)
	s.hub.Add(c)
	slog.Info("ws connected", "collab", collabID, "user", user.ID)

	go c.writeLoop(s.pingEvery)
	s.readLoop(r.Context(), c)

	s.hub.Remove(c)
	if err := c.Close(); err != nil {
		slog.Debug("ws close failed", "collab", collabID, "user", user.ID, "err", err)
	}
	slog.Info("ws disconnected", "collab", collabID, "user", user.ID)
}

// readLoop обрабатывает фреймы соединения строго по одному: сообщение
// сперва синхронно сохраняется и только потом уходит в broadcast, поэтому
// порядок persist/broadcast в рамках одного отправителя совпадает с
// порядком приёма.
func (s *Server) readLoop(ctx context.Context, c *wsConn) {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(s.maxFrameSize)
	c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var frame InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			continue // кривой фрейм не рвёт соединение
		}

		msg, err := s.chatSvc.Save(ctx, c.collabID, c.user.ID, frame.Message)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrEmptyMessage):
				// пустое сообщение тихо игнорируем
			case errors.Is(err, domain.ErrMessageTooLong):
				slog.Debug("ws message too long", "collab", c.collabID, "user", c.user.ID)
			default:
				// сообщение теряется без broadcast; клиенту NACK не шлём
				slog.Warn("ws chat save failed", "collab", c.collabID, "user", c.user.ID, "err", err)
			}
			continue
		}

		s.hub.Broadcast(c.collabID, Event{
			Message:        msg.Text,
			SenderID:       c.user.ID,
			SenderUsername: c.user.Username,
		})
	}
}

func refuse(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	_ = conn.Close()
}
