package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/ugc-collab/chat-service/internal/domain"
)

const maxMessageLen = 4000

// MessageStore — персистентное хранилище сообщений (postgres.ChatRepository).
type MessageStore interface {
	Save(ctx context.Context, collabID, senderID int64, text string) (*domain.ChatMessage, error)
	History(ctx context.Context, collabID int64, after string, limit int) ([]domain.ChatMessage, string, error)
}

// CollabStore — чтение коллабораций (postgres.CollaborationRepository).
type CollabStore interface {
	Get(ctx context.Context, id int64) (*domain.Collaboration, error)
}

type ChatService struct {
	messages MessageStore
	collabs  CollabStore
}

func NewChatService(messages MessageStore, collabs CollabStore) *ChatService {
	return &ChatService{messages: messages, collabs: collabs}
}

// Save валидирует текст и синхронно пишет сообщение в базу.
// Пустой после trim текст — доменная ошибка, вызывающая сторона просто
// игнорирует такой фрейм. Если коллаборация исчезла, сообщение не пишется.
func (s *ChatService) Save(ctx context.Context, collabID, senderID int64, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}
	// лимит в символах, не байтах: кириллица и эмодзи не режут его втрое
	if utf8.RuneCountInString(text) > maxMessageLen {
		return nil, domain.ErrMessageTooLong
	}

	if _, err := s.collabs.Get(ctx, collabID); err != nil {
		return nil, err
	}

	return s.messages.Save(ctx, collabID, senderID, text)
}

func (s *ChatService) History(ctx context.Context, collabID int64, after string, limit int) ([]domain.ChatMessage, string, error) {
	return s.messages.History(ctx, collabID, after, limit)
}
