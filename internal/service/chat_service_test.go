package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ugc-collab/chat-service/internal/domain"
)

type memMessageStore struct {
	nextID int64
	rows   []domain.ChatMessage
	err    error
}

func (s *memMessageStore) Save(_ context.Context, collabID, senderID int64, text string) (*domain.ChatMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.nextID++
	m := domain.ChatMessage{
		ID:        s.nextID,
		CollabID:  collabID,
		SenderID:  senderID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.rows = append(s.rows, m)
	return &m, nil
}

func (s *memMessageStore) History(_ context.Context, collabID int64, _ string, _ int) ([]domain.ChatMessage, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	var out []domain.ChatMessage
	for _, m := range s.rows {
		if m.CollabID == collabID {
			out = append(out, m)
		}
	}
	return out, "", nil
}

type memCollabStore struct {
	collabs map[int64]*domain.Collaboration
}

func (s *memCollabStore) Get(_ context.Context, id int64) (*domain.Collaboration, error) {
	c, ok := s.collabs[id]
	if !ok {
		return nil, domain.ErrCollaborationNotFound
	}
	return c, nil
}

func knownCollabs() *memCollabStore {
	return &memCollabStore{collabs: map[int64]*domain.Collaboration{
		42: {ID: 42, BloggerID: 1, BrandID: 2, Status: domain.StatusShipped},
		7:  {ID: 7, BloggerID: 1, BrandID: 3, Status: domain.StatusAddressProvided},
	}}
}

func TestChatServiceSaveTrims(t *testing.T) {
	store := &memMessageStore{}
	svc := NewChatService(store, knownCollabs())

	m, err := svc.Save(context.Background(), 42, 1, "  hello \n")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if m.Text != "hello" {
		t.Fatalf("text = %q, want %q", m.Text, "hello")
	}
	if m.CollabID != 42 || m.SenderID != 1 {
		t.Fatalf("row = %+v", m)
	}
}

func TestChatServiceSaveRejectsEmpty(t *testing.T) {
	store := &memMessageStore{}
	svc := NewChatService(store, knownCollabs())

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Save(context.Background(), 42, 1, text); !errors.Is(err, domain.ErrEmptyMessage) {
			t.Fatalf("Save(%q) err = %v, want ErrEmptyMessage", text, err)
		}
	}
	if len(store.rows) != 0 {
		t.Fatalf("store has %d rows, want 0", len(store.rows))
	}
}

func TestChatServiceSaveRejectsTooLong(t *testing.T) {
	svc := NewChatService(&memMessageStore{}, knownCollabs())

	long := strings.Repeat("a", maxMessageLen+1)
	if _, err := svc.Save(context.Background(), 42, 1, long); !errors.Is(err, domain.ErrMessageTooLong) {
		t.Fatalf("err = %v, want ErrMessageTooLong", err)
	}

	// ровно на границе — проходит
	if _, err := svc.Save(context.Background(), 42, 1, strings.Repeat("a", maxMessageLen)); err != nil {
		t.Fatalf("boundary length rejected: %v", err)
	}
}

func TestChatServiceSaveLimitCountsRunes(t *testing.T) {
	svc := NewChatService(&memMessageStore{}, knownCollabs())

	// maxMessageLen кириллических символов — в байтах это вдвое больше
	if _, err := svc.Save(context.Background(), 42, 1, strings.Repeat("ё", maxMessageLen)); err != nil {
		t.Fatalf("multi-byte text at the limit rejected: %v", err)
	}
	if _, err := svc.Save(context.Background(), 42, 1, strings.Repeat("ё", maxMessageLen+1)); !errors.Is(err, domain.ErrMessageTooLong) {
		t.Fatalf("err = %v, want ErrMessageTooLong", err)
	}
}

func TestChatServiceSavePropagatesStoreError(t *testing.T) {
	storeErr := errors.New("db down")
	svc := NewChatService(&memMessageStore{err: storeErr}, knownCollabs())

	if _, err := svc.Save(context.Background(), 42, 1, "hello"); !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
}

func TestChatServiceSaveUnknownCollaboration(t *testing.T) {
	store := &memMessageStore{}
	svc := NewChatService(store, knownCollabs())

	if _, err := svc.Save(context.Background(), 99, 1, "hello"); !errors.Is(err, domain.ErrCollaborationNotFound) {
		t.Fatalf("err = %v, want ErrCollaborationNotFound", err)
	}
	if len(store.rows) != 0 {
		t.Fatalf("store has %d rows, want 0", len(store.rows))
	}
}

func TestChatServiceHistoryPassthrough(t *testing.T) {
	store := &memMessageStore{}
	svc := NewChatService(store, knownCollabs())

	_, _ = svc.Save(context.Background(), 42, 1, "a")
	_, _ = svc.Save(context.Background(), 7, 2, "b")

	items, _, err := svc.History(context.Background(), 42, "", 50)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(items) != 1 || items[0].Text != "a" {
		t.Fatalf("items = %+v", items)
	}
}
