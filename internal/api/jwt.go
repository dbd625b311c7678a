package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/finbridge/finbridge/internal/models"
)

// TokenExpiry is the lifetime of a session token.
const TokenExpiry = 24 * time.Hour

const (
	ctxEmailKey = "session_email"
	ctxNameKey  = "session_name"
)

// Claims are the JWT claims carried by a session token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// AuthTokens issues and verifies session tokens.
type AuthTokens struct {
	secret []byte
	expiry time.Duration
}

// NewAuthTokens creates an AuthTokens with the given signing secret.
func NewAuthTokens(secret string) *AuthTokens {
	return &AuthTokens{secret: []byte(secret), expiry: TokenExpiry}
}

// Generate issues a signed session token for the user.
func (t *AuthTokens) Generate(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a session token and returns its claims.
func (t *AuthTokens) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// Middleware returns a gin middleware enforcing Bearer authentication.
func (t *AuthTokens) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := t.Parse(tokenString)
		if err != nil {
			Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxEmailKey, claims.Email)
		c.Set(ctxNameKey, claims.Name)
		c.Next()
	}
}

// CurrentEmail returns the authenticated account email for the request.
func CurrentEmail(c *gin.Context) string {
	return c.GetString(ctxEmailKey)
}

// CurrentName returns the authenticated account name for the request.
func CurrentName(c *gin.Context) string {
	return c.GetString(ctxNameKey)
}
