package service

import (
	"context"

	"github.com/ugc-collab/chat-service/internal/domain"
	"github.com/ugc-collab/chat-service/internal/security"
)

// UserStore — персистентное хранилище пользователей (postgres.UserRepository).
type UserStore interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
}

type AuthService struct {
	codec *security.TokenCodec
	users UserStore
}

func NewAuthService(codec *security.TokenCodec, users UserStore) *AuthService {
	return &AuthService{codec: codec, users: users}
}

// Authenticate проверяет токен и резолвит пользователя.
// Несуществующий user_id — та же ошибка авторизации, что и битый токен:
// клиенту не раскрываем, какая именно проверка не прошла.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.codec.ParseAndValidate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
