package domain

import "time"

// ChatMessage — одно сообщение в комнате коллаборации.
// Неизменяемо после создания; created_at выставляет база при вставке.
type ChatMessage struct {
	ID             int64     `db:"id"`
	CollabID       int64     `db:"collaboration_id"`
	SenderID       int64     `db:"sender_id"`
	SenderUsername string    `db:"sender_username"`
	Text           string    `db:"message"`
	CreatedAt      time.Time `db:"created_at"`
}
