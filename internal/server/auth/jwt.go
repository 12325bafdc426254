// Package auth issues and verifies the HS256 tokens used by TemplateHub:
// access tokens identifying a user, and short-lived download grants.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/gerich15/TemplateHub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const (
	kindAccess = "access"
	kindGrant  = "grant"
)

// Claims holds the registered claims plus the user id and token kind.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"uid"`
	Kind   string `json:"knd"`
}

// GrantClaims identifies a single template download authorized for a user.
type GrantClaims struct {
	jwt.RegisteredClaims
	UserID     int64  `json:"uid"`
	TemplateID int64  `json:"tid"`
	Kind       string `json:"knd"`
}

// Grant is the verified content of a download grant token.
type Grant struct {
	UserID     int64
	TemplateID int64
	ExpiresAt  time.Time
}

func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Kind:   kindAccess,
	})

	return token.SignedString(secretKey)
}

func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}
	if err := parse(tokenString, claims, secretKey); err != nil {
		return 0, err
	}
	if claims.Kind != kindAccess {
		return 0, common.ErrInvalidToken
	}
	return claims.UserID, nil
}

// GenerateGrantToken signs a download grant and returns it with its expiry.
func GenerateGrantToken(userID, templateID int64, secretKey []byte, validityDuration time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(validityDuration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, GrantClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:     userID,
		TemplateID: templateID,
		Kind:       kindGrant,
	})

	s, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	// JWT expiry has second precision
	return s, expiresAt.Truncate(time.Second), nil
}

func ParseGrantToken(tokenString string, secretKey []byte) (*Grant, error) {
	claims := &GrantClaims{}
	if err := parse(tokenString, claims, secretKey); err != nil {
		return nil, err
	}
	if claims.Kind != kindGrant || claims.ExpiresAt == nil {
		return nil, common.ErrInvalidToken
	}
	return &Grant{
		UserID:     claims.UserID,
		TemplateID: claims.TemplateID,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

func parse(tokenString string, claims jwt.Claims, secretKey []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}

	if !token.Valid {
		return common.ErrInvalidToken
	}
	return nil
}
