package userservice

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const AccessTokenTime = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenPayload is the identity embedded in every access token.
type TokenPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	ID    int    `json:"id"`
}

type Claims struct {
	Payload TokenPayload `json:"payload"`
	jwt.RegisteredClaims
}

// TokenMaker signs and verifies access tokens with a single HS256 secret.
// The secret is injected at construction; tokens carry no revocation list,
// so expiry is the only invalidation mechanism.
type TokenMaker struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenMaker(secret string, ttl time.Duration) *TokenMaker {
	return &TokenMaker{secret: []byte(secret), ttl: ttl}
}

func (tm *TokenMaker) Issue(user *User) (string, error) {
	now := time.Now()

	claims := Claims{
		Payload: TokenPayload{
			Email: user.Email,
			Name:  user.Name,
			ID:    user.ID,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

func (tm *TokenMaker) Verify(tokenString string) (*TokenPayload, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &claims.Payload, nil
}
