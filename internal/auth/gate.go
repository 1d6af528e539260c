package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrWrongPassword = errors.New("wrong admin password")
	ErrInvalidToken  = errors.New("invalid session token")
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Gate is the admin access check: a single shared static password compared
// in plain text. This is deliberately not a security boundary; on success
// it hands out a session-scoped token so later requests can skip the
// password prompt.
type Gate struct {
	password string
	secret   []byte
}

func NewGate(password, secret string) *Gate {
	return &Gate{password: password, secret: []byte(secret)}
}

// Login exchanges the shared password for a session token. The token is
// never persisted; a reload starts from scratch.
func (g *Gate) Login(password string) (string, error) {
	if password != g.password {
		return "", ErrWrongPassword
	}

	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Verify parses a session token and checks the admin role claim.
func (g *Gate) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return g.secret, nil
		},
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != "admin" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractToken pulls the session token from the Authorization header.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
