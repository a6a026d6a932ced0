package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ugc-collab/chat-service/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fkViolation = "23503"

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Save вставляет сообщение; id и created_at назначает база.
// Если коллаборация уже удалена, FK вернёт 23503 — наружу отдаём доменную ошибку.
func (r *ChatRepository) Save(ctx context.Context, collabID, senderID int64, text string) (*domain.ChatMessage, error) {
	m := domain.ChatMessage{
		CollabID: collabID,
		SenderID: senderID,
		Text:     text,
	}
	row := r.db.QueryRow(ctx, `
		INSERT INTO chat_messages (collaboration_id, sender_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, collabID, senderID, text)

	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return nil, domain.ErrCollaborationNotFound
		}
		return nil, err
	}
	return &m, nil
}

// History возвращает сообщения комнаты в порядке создания (created_at,id ASC)
// с курсорной пагинацией вперёд.
func (r *ChatRepository) History(ctx context.Context, collabID int64, after string, limit int) ([]domain.ChatMessage, string, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	cur, err := DecodeCursor(after)
	if err != nil {
		return nil, "", fmt.Errorf("decode cursor: %w", err)
	}
	const baseQuery = `
		SELECT m.id, m.collaboration_id, m.sender_id, u.username, m.message, m.created_at
		FROM chat_messages AS m
		JOIN users AS u ON u.id = m.sender_id
		WHERE m.collaboration_id = $1
		  AND (
		    $2::timestamptz IS NULL
		    OR m.created_at > $2
		    OR (m.created_at = $2 AND m.id > $3::bigint)
		  )
		ORDER BY m.created_at ASC, m.id ASC
		LIMIT $4
	`

	var createdAt any
	var id any
	if cur != nil {
		createdAt = cur.CreatedAt
		id = cur.ID
	}

	rows, err := r.db.Query(ctx, baseQuery, collabID, createdAt, id, limit)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.CollabID, &m.SenderID, &m.SenderUsername, &m.Text, &m.CreatedAt); err != nil {
			return nil, "", err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	var next string
	if len(out) == limit {
		last := out[len(out)-1]
		if c, e := EncodeCursor(Cursor{CreatedAt: last.CreatedAt, ID: last.ID}); e == nil {
			next = c
		}
	}
	return out, next, nil
}
