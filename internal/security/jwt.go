package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired or not valid yet")
	ErrNoUserID     = errors.New("token has no user id")
)

// Используется SigningMethodHS256 с общим серверным секретом.
type TokenCodec struct {
	secret    []byte
	ttl       time.Duration
	clockSkew time.Duration
}

func NewTokenCodec(secret string, ttl, clockSkew time.Duration) *TokenCodec {
	return &TokenCodec{
		secret:    []byte(secret),
		ttl:       ttl,
		clockSkew: clockSkew,
	}
}

func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

type AccessClaims struct {
	jwt.StandardClaims       // включает поля ExpiresAt, NotBefore, IssuedAt и т.п.
	UserID             int64 `json:"user_id"`
}

// Sign выпускает JWT с user_id и exp=now+ttl.
func (c *TokenCodec) Sign(userID int64, now time.Time) (string, error) {
	claims := AccessClaims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			NotBefore: now.Add(-c.clockSkew).Unix(),
			ExpiresAt: now.Add(c.ttl).Unix(),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(c.secret)
}

// ParseAndValidate проверяет подпись и временные клеймы.
// Валидация exp/nbf в библиотеке выключена: она не умеет clockSkew,
// поэтому временные клеймы проверяем сами.
func (c *TokenCodec) ParseAndValidate(tokenStr string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	now := time.Now()

	// временные клеймы с допуском clockSkew
	if claims.ExpiresAt != 0 {
		exp := time.Unix(claims.ExpiresAt, 0).Add(c.clockSkew)
		if now.After(exp) {
			return nil, ErrTokenExpired
		}
	}
	if claims.NotBefore != 0 {
		nbf := time.Unix(claims.NotBefore, 0).Add(-c.clockSkew)
		if now.Before(nbf) {
			return nil, ErrTokenExpired
		}
	}
	if claims.UserID <= 0 {
		return nil, ErrNoUserID
	}

	return claims, nil
}
