package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	errMissingToken = errors.New("bearer token is required")
	errInvalidToken = errors.New("bearer token is invalid")
)

// Principal is the authenticated caller resolved from the Authorization
// header. Role distinguishes students, tutors and admins.
type Principal struct {
	UserID int64
	Name   string
	Email  string
	Role   string
}

type principalClaims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// resolvePrincipal parses the Bearer token with the shared HMAC secret. Token
// issuance belongs to the identity provider, not this service.
func (s *Server) resolvePrincipal(r *http.Request) (Principal, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return Principal{}, errMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Principal{}, errInvalidToken
	}

	claims := &principalClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return Principal{}, errInvalidToken
	}
	if claims.UserID <= 0 {
		return Principal{}, errInvalidToken
	}
	return Principal{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
