package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

// ErrInvalidToken covers missing, malformed, mis-signed and expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims carried by every issued token: who the caller is and whether they
// are a customer or an employee.
type Claims struct {
	AccountNumber string `json:"accountNumber"`
	Role          string `json:"role"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs an HS256 token for the given identity, expiring after TokenTTL.
func (s *TokenService) Issue(id, accountNumber, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountNumber: accountNumber,
		Role:          role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a token string and returns its claims.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
