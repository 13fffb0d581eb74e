package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Apple-More/order-service/configs"
	"github.com/Apple-More/order-service/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityKey = "identity"

// Identity extracts the authenticated caller once per request and attaches
// it to the gin context as a typed value. Handlers never re-parse headers.
//
// Two forms are accepted: the API gateway's `user` header carrying
// `{"user":{"userId":...}}`, or a Bearer JWT signed with the gateway secret
// carrying a `userId` claim.
type Identity struct {
	cfg configs.Config
}

func NewIdentity(cfg configs.Config) *Identity {
	return &Identity{cfg: cfg}
}

// Extract parses the identity if one is present. A malformed identity is a
// client error and aborts before any handler logic runs.
func (m *Identity) Extract() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader("user"); raw != "" {
			var payload struct {
				User struct {
					UserID string `json:"userId"`
				} `json:"user"`
			}
			if err := json.Unmarshal([]byte(raw), &payload); err != nil || payload.User.UserID == "" {
				abortError(c, http.StatusBadRequest, "invalid_identity")
				return
			}
			c.Set(identityKey, usecase.Identity{UserID: payload.User.UserID})
			c.Next()
			return
		}

		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			userID, err := m.parseToken(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				abortError(c, http.StatusUnauthorized, "invalid_token")
				return
			}
			c.Set(identityKey, usecase.Identity{UserID: userID})
		}

		c.Next()
	}
}

// Require aborts with 400 when Extract found no identity.
func (m *Identity) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := From(c); !ok {
			abortError(c, http.StatusBadRequest, "identity_required")
			return
		}
		c.Next()
	}
}

func (m *Identity) parseToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.cfg.Security.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	userID, _ := claims["userId"].(string)
	if userID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return userID, nil
}

// From returns the caller identity set by Extract, if any.
func From(c *gin.Context) (usecase.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return usecase.Identity{}, false
	}
	ident, ok := v.(usecase.Identity)
	return ident, ok
}

func abortError(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, gin.H{"status": false, "data": nil, "error": code})
}
