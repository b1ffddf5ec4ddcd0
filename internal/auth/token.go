package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	"bazaar/internal/domain"
)

var (
	ErrNoToken      = errors.New("no token provided")
	ErrInvalidToken = errors.New("invalid token")
)

type tokenClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// TokenCodec signs and verifies HMAC-SHA256 bearer tokens. The secret is
// process-wide configuration; there is no rotation.
type TokenCodec struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{Secret: []byte(secret), TTL: time.Hour}
}

func (t *TokenCodec) Sign(c domain.Claims) (string, error) {
	claims := tokenClaims{
		ID:       c.ID,
		Username: c.Username,
		Role:     c.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(t.TTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.Secret)
}

func (t *TokenCodec) Verify(raw string) (domain.Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.Secret, nil
	})
	if err != nil {
		return domain.Claims{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return domain.Claims{}, ErrInvalidToken
	}
	return domain.Claims{ID: claims.ID, Username: claims.Username, Role: claims.Role}, nil
}

// FromHeader extracts the raw token from an "Authorization: Bearer <token>"
// header value. A missing header or malformed scheme is ErrNoToken.
func FromHeader(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrNoToken
	}
	return parts[1], nil
}
