package http

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type ChatMessageItem struct {
	ID             int64     `json:"id"`
	CollabID       int64     `json:"collaboration"`
	SenderID       int64     `json:"sender_id"`
	SenderUsername string    `json:"sender_username"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

type ChatHistoryResponse struct {
	Items      []ChatMessageItem `json:"items"`
	NextCursor string            `json:"next_cursor,omitempty"`
}
