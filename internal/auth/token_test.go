package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue("abc123", "998877", RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.Subject)
	assert.Equal(t, "998877", claims.AccountNumber)
	assert.Equal(t, RoleCustomer, claims.Role)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("test-secret")
	verifier := NewTokenService("other-secret")

	token, err := issuer.Issue("abc123", "998877", RoleEmployee)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AccountNumber: "998877",
		Role:          RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "abc123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	token, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongSigningMethod(t *testing.T) {
	svc := NewTokenService("test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		AccountNumber: "998877",
		Role:          RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "abc123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
