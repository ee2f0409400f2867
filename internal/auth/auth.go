// Package auth issues and verifies the bearer tokens that scope every
// API request to a user and their wallet.
package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const identityKey = "walletwise-identity"

var (
	ErrMissingToken = errors.New("missing auth token")
	ErrInvalidToken = errors.New("invalid auth token")
)

// Identity is the caller identity carried on every authenticated
// request.
type Identity struct {
	UserID   uuid.UUID
	WalletID uuid.UUID // uuid.Nil when the user has no wallet yet
}

// secret returns the HMAC secret for signing tokens. JWT_SECRET must
// be set in production, the fallback only exists for development.
func secret() []byte {
	s, ok := os.LookupEnv("JWT_SECRET")
	if !ok {
		return []byte("walletwise-dev-secret")
	}

	return []byte(s)
}

// NewToken issues a signed token for the identity, valid for 24 hours.
func NewToken(identity Identity) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   identity.UserID.String(),
		"wallet_id": identity.WalletID.String(),
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// parseToken verifies a token string and extracts the identity.
func parseToken(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	rawUserID, ok := claims["user_id"].(string)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	// The wallet ID is optional, a user without a wallet has uuid.Nil
	walletID := uuid.Nil
	if rawWalletID, ok := claims["wallet_id"].(string); ok {
		if parsed, err := uuid.Parse(rawWalletID); err == nil {
			walletID = parsed
		}
	}

	return Identity{UserID: userID, WalletID: walletID}, nil
}

// Middleware verifies the bearer token of a request and stores the
// identity in the request context. Requests without a valid token are
// rejected with 401.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingToken.Error()})
			return
		}

		identity, err := parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// ActiveIdentity returns the identity stored by the Middleware.
func ActiveIdentity(c *gin.Context) Identity {
	identity, _ := c.Get(identityKey)
	return identity.(Identity)
}
