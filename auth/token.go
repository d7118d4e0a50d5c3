package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Access tokens are stateless: a leaked token stays valid until expiry.
const accessTokenTTL = 30 * time.Minute

func jwtSecret() []byte { return []byte(os.Getenv("JWT_SECRET")) }

// IssueToken signs an HS256 bearer token carrying the subject email and role.
func IssueToken(subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken validates signature, structure and expiry, and returns the
// subject email and role claims.
func ParseToken(tokenString string) (subject, role string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("invalid token claims")
	}
	subject, _ = claims["sub"].(string)
	if subject == "" {
		return "", "", errors.New("token missing subject")
	}
	role, _ = claims["role"].(string)
	return subject, role, nil
}
