package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// resolveUserID takes the user from the bearer token when one is present,
// otherwise falls back to the body-supplied ID (internal callers).
func (m ApiHandler) resolveUserID(c *gin.Context, bodyUserID string) (uuid.UUID, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if bodyUserID == "" {
			return uuid.Nil, fmt.Errorf("no authorization token or userID provided")
		}
		userID, err := uuid.Parse(bodyUserID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid userID %q: %w", bodyUserID, err)
		}
		return userID, nil
	}

	tokenStr := strings.TrimPrefix(header, "Bearer ")
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(m.JwtSecret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse auth token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid auth token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("auth token missing sub claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth token sub is not a user id: %w", err)
	}

	return userID, nil
}
