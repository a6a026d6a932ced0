package postgres

import (
	"context"
	"errors"

	"github.com/ugc-collab/chat-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CollaborationRepository struct {
	db *pgxpool.Pool
}

func NewCollaborationRepository(db *pgxpool.Pool) *CollaborationRepository {
	return &CollaborationRepository{db: db}
}

func (r *CollaborationRepository) Get(ctx context.Context, id int64) (*domain.Collaboration, error) {
	var c domain.Collaboration
	query := `
		SELECT id, blogger_id, brand_id, product_id, status, created_at
		FROM collaborations WHERE id=$1`
	err := r.db.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.BloggerID, &c.BrandID, &c.ProductID, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCollaborationNotFound
		}
		return nil, err
	}
	return &c, nil
}
