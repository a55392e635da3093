package middleware

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/PROD-B2B-GGJ-Platform/operations-portal/internal/session"
	"github.com/PROD-B2B-GGJ-Platform/operations-portal/pkg/logger"
)

var (
	// ErrInvalidToken is returned when a presented token fails validation
	ErrInvalidToken = errors.New("invalid token")
)

// Context keys for the parsed identity
const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
	ContextKeyName   = "name"
)

// SessionConfig holds configuration for the session middleware
type SessionConfig struct {
	// Secret key for validating bearer tokens
	Secret string
	// Store receives the token and identity so outbound calls reflect them
	Store session.Store
}

// SessionMiddleware captures an optional bearer token from the inbound
// request. A valid token and its identity claims are persisted into the
// session store, so the very next outbound backend call carries them. A
// missing or invalid token is not an error at this layer; the request
// proceeds anonymously and authorization stays the backends' concern.
func SessionMiddleware(config *SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.Next()
			return
		}
		tokenString := authHeader[len(bearerPrefix):]
		if tokenString == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return []byte(config.Secret), nil
		})
		if err != nil || !token.Valid {
			logger.WarnCtx(c.Request.Context(), "ignoring invalid bearer token", zap.Error(err))
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		userID, _ := claims["user_id"].(string)
		email, _ := claims["email"].(string)
		name, _ := claims["name"].(string)

		ctx := c.Request.Context()
		if err := config.Store.Set(ctx, session.KeyAuthToken, tokenString); err != nil {
			logger.ErrorCtx(ctx, "failed to persist auth token", zap.Error(err))
		}
		if userID != "" {
			user := session.User{UserID: userID, Name: name, Email: email}
			if data, err := json.Marshal(user); err == nil {
				if err := config.Store.Set(ctx, session.KeyUser, string(data)); err != nil {
					logger.ErrorCtx(ctx, "failed to persist user identity", zap.Error(err))
				}
			}
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyEmail, email)
		c.Set(ContextKeyName, name)

		c.Next()
	}
}

// GetUserID extracts the parsed user ID from gin context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}
