package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed state carried in the session cookie: the
// authenticated user's id and role.
type SessionClaims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionUtil signs and verifies session cookie tokens
type SessionUtil struct {
	secretKey       string
	expirationHours int64
}

// NewSessionUtil creates a new SessionUtil
func NewSessionUtil(secretKey string, expirationHours int64) *SessionUtil {
	return &SessionUtil{secretKey: secretKey, expirationHours: expirationHours}
}

// MaxAge returns the session lifetime in seconds, for the cookie Max-Age attribute.
func (su *SessionUtil) MaxAge() int {
	return int(su.expirationHours * 3600)
}

// IssueToken signs a new session token for the given user
func (su *SessionUtil) IssueToken(userID int, role string) (string, error) {
	claims := &SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(su.expirationHours))),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.Itoa(userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(su.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies a session token and returns its claims
func (su *SessionUtil) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(su.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid session token")
}
