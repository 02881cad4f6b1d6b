package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const userIDContextKey = "user_id"

// Manager issues and validates the HS256 tokens used by the API.
type Manager struct {
	secret []byte
	expiry time.Duration
	logger *zap.Logger
}

// NewManager creates a new token manager instance.
func NewManager(secret string, expiry time.Duration, logger *zap.Logger) *Manager {
	if secret == "" {
		logger.Error("Token manager initialized without secret")
	}
	return &Manager{
		secret: []byte(secret),
		expiry: expiry,
		logger: logger,
	}
}

// IssueToken signs a token whose subject is the user id in hex form.
func (m *Manager) IssueToken(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		m.logger.Error("Failed to sign token", zap.Error(err))
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Middleware validates the Authorization header and stores the authenticated
// user id in the echo context.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				m.logger.Warn("Missing authorization header",
					zap.String("path", path),
					zap.String("method", c.Request().Method))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authorization header required",
					"code":  "UNAUTHENTICATED",
				})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				m.logger.Warn("Invalid authorization header format",
					zap.String("path", path))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid authorization header format. Expected: Bearer <token>",
					"code":  "UNAUTHENTICATED",
				})
			}

			token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return m.secret, nil
			})
			if err != nil || !token.Valid {
				m.logger.Warn("Token validation failed",
					zap.String("path", path),
					zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid or expired token",
					"code":  "UNAUTHENTICATED",
				})
			}

			claims, ok := token.Claims.(*jwt.RegisteredClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid or expired token",
					"code":  "UNAUTHENTICATED",
				})
			}

			userID, err := primitive.ObjectIDFromHex(claims.Subject)
			if err != nil {
				m.logger.Warn("Token subject is not a valid user id",
					zap.String("subject", claims.Subject),
					zap.String("path", path))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid or expired token",
					"code":  "UNAUTHENTICATED",
				})
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id stored by Middleware.
func UserIDFromContext(c echo.Context) (primitive.ObjectID, bool) {
	userID, ok := c.Get(userIDContextKey).(primitive.ObjectID)
	return userID, ok
}
