package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates the JWT tokens display clients present
// when attaching to the websocket boundary.
type AuthService struct {
	secretKey   string
	tokenExpiry time.Duration
}

// ViewerClaims is the claim set carried by issued tokens.
type ViewerClaims struct {
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}

// NewAuthService builds the token service. An empty secretKey loads the
// persisted signing key, generating and persisting one on first run.
func NewAuthService(secretKey string, tokenExpiry time.Duration) (*AuthService, error) {
	if secretKey == "" {
		key, err := loadOrCreateSecretKey()
		if err != nil {
			return nil, err
		}
		secretKey = key
	}
	secretKey = strings.TrimSpace(secretKey)

	// HMAC-SHA256 wants at least 32 key bytes.
	if len(secretKey) < 32 {
		padding := make([]byte, 32-len(secretKey))
		if _, err := rand.Read(padding); err != nil {
			return nil, fmt.Errorf("pad secret key: %w", err)
		}
		secretKey += hex.EncodeToString(padding)
	}

	if tokenExpiry <= 0 {
		tokenExpiry = 90 * 24 * time.Hour
	}

	return &AuthService{
		secretKey:   secretKey,
		tokenExpiry: tokenExpiry,
	}, nil
}

// loadOrCreateSecretKey reads the persisted signing key, generating a
// fresh random one when none exists yet. Failing to persist the new key
// is survivable; issued tokens just will not outlive the process.
func loadOrCreateSecretKey() (string, error) {
	homeDir, _ := os.UserHomeDir()
	keyFile := filepath.Join(homeDir, ".sysmond-secret-key")
	if homeDir == "" {
		keyFile = filepath.Join(os.TempDir(), ".sysmond-secret-key")
	}

	if data, err := os.ReadFile(keyFile); err == nil && len(data) > 0 {
		log.Printf("Loaded persisted secret key from %s", keyFile)
		return strings.TrimSpace(string(data)), nil
	}

	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("generate secret key: %w", err)
	}
	key := hex.EncodeToString(randomBytes)

	if err := os.WriteFile(keyFile, []byte(key), 0600); err != nil {
		log.Printf("Warning: could not persist secret key to %s: %v", keyFile, err)
	} else {
		log.Printf("Generated and persisted secret key to %s", keyFile)
	}
	return key, nil
}

// GenerateToken creates a new signed token for a display client.
func (a *AuthService) GenerateToken(clientName string) (string, error) {
	now := time.Now()
	claims := ViewerClaims{
		ClientName: clientName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "sysmond",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.secretKey))
}

// ValidateToken verifies and parses a token.
func (a *AuthService) ValidateToken(tokenString string) (*ViewerClaims, error) {
	claims := &ViewerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// TokenExpiry returns when a token issued now would expire.
func (a *AuthService) TokenExpiry() time.Time {
	return time.Now().Add(a.tokenExpiry)
}
