package utils

import (
	"bytes"   // Raw claim inspection
	"errors"  // Sentinel errors
	"slices"  // Group lookup
	"strconv" // Numeric claim parsing
	"time"    // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidUserID is returned when a token carries no usable userId claim
var ErrInvalidUserID = errors.New("token has no valid userId claim")

// TokenConfig carries the signing material shared by both services
type TokenConfig struct {
	Secret string        // HMAC secret
	Issuer string        // Expected iss claim
	TTL    time.Duration // Validity window
}

// UserID is the numeric userId claim, accepted as a JSON number or numeric string
type UserID uint

// UnmarshalJSON accepts 42 and "42"
func (id *UserID) UnmarshalJSON(b []byte) error {
	raw := string(bytes.Trim(b, `"`))
	if raw == "" || raw == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return ErrInvalidUserID
	}
	*id = UserID(v)
	return nil
}

// JWT Claims
type Claims struct {
	UserID               UserID   `json:"userId"` // Custom claim for user ID
	Groups               []string `json:"groups"` // Roles granted to the subject
	jwt.RegisteredClaims          // Standard JWT claims, sub carries the username
}

// HasGroup reports whether the claims grant role
func (c *Claims) HasGroup(role string) bool {
	return slices.Contains(c.Groups, role)
}

// GenerateJWT creates a signed token for a user
func GenerateJWT(cfg TokenConfig, userID uint, username, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: UserID(userID),
		Groups: []string{role},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(cfg.Secret))              // Sign the token with the secret
}

// ParseJWT parses and validates a JWT token string
func ParseJWT(tokenStr string, cfg TokenConfig) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil // Return the secret key for validation
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidUserID
	}
	return claims, nil
}
