package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/ugc-collab/chat-service/internal/domain"

	"github.com/gorilla/websocket"
)

var ErrSlowConsumer = errors.New("outbound queue overflow")

const writeWait = 5 * time.Second

// wsConn — одно живое соединение. Исходящие события идут через ограниченную
// очередь, которую разбирает writeLoop; переполнение очереди закрывает
// соединение, чтобы зависший клиент не копил бесконечный бэклог.
type wsConn struct {
	conn     *websocket.Conn
	collabID int64
	user     domain.User

	out    chan Event
	closed chan struct{}
	once   sync.Once
}

func newWsConn(c *websocket.Conn, collabID int64, user domain.User, sendBuffer int) *wsConn {
	if sendBuffer <= 0 {
		sendBuffer = 64
	}
	return &wsConn{
		conn:     c,
		collabID: collabID,
		user:     user,
		out:      make(chan Event, sendBuffer),
		closed:   make(chan struct{}),
	}
}

// Send ставит событие в очередь, не блокируясь. Очередь — FIFO, поэтому
// порядок событий одного отправителя сохраняется для каждого получателя.
func (c *wsConn) Send(ev Event) error {
	select {
	case <-c.closed:
		return websocket.ErrCloseSent
	default:
	}

	select {
	case c.out <- ev:
		return nil
	default:
		_ = c.Close()
		return ErrSlowConsumer
	}
}

func (c *wsConn) writeLoop(pingEvery time.Duration) {
	ticker := time.NewTicker(pingEvery)
	defer ticker.Stop()

	for {
		select {
		case ev := <-c.out:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				_ = c.Close()
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				_ = c.Close()
				return
			}
		case <-c.closed:
			return
		}
	}
}

func (c *wsConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return c.conn.Close()
}

func (c *wsConn) UserID() int64   { return c.user.ID }
func (c *wsConn) CollabID() int64 { return c.collabID }
