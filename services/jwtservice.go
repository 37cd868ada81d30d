package services

import (
	"errors"
	"fmt"
	"time"

	"matchapp/config"
	"matchapp/model"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

// TokenService signs and verifies session tokens. The signing secret is
// process-wide configuration; rotating it invalidates every outstanding
// session, which is the accepted trade-off since no refresh flow exists.
type TokenService struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		duration: cfg.SessionDuration,
	}
}

func (s *TokenService) CreateSessionToken(userID string) (string, error) {
	claims := &model.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifySessionToken resolves a token back to the account id it was issued
// for. It is synchronous and touches no storage.
func (s *TokenService) VerifySessionToken(tokenString string) (string, error) {
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}

// SessionMaxAge is the cookie lifetime in seconds.
func (s *TokenService) SessionMaxAge() int {
	return int(s.duration / time.Second)
}
