package jwt

import (
	"UnityPlate-Backend/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyAccessToken(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "UNITYPLATE"}

	token := service.GenerateAccessToken("donor@example.com")
	require.NotEmpty(t, token)

	email, err := service.GetEmailByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "donor@example.com", email)
}

func TestGetEmailByTokenRejectsForeignSecret(t *testing.T) {
	signer := &jwtService{secretKey: "other-secret", issuer: "UNITYPLATE"}
	verifier := &jwtService{secretKey: "test-secret", issuer: "UNITYPLATE"}

	token := signer.GenerateAccessToken("donor@example.com")

	_, err := verifier.GetEmailByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetEmailByTokenRejectsExpiredToken(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "UNITYPLATE"}

	claims := accessClaim{
		"donor@example.com",
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(service.secretKey))
	require.NoError(t, err)

	_, err = service.GetEmailByToken(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGetEmailByTokenRejectsGarbage(t *testing.T) {
	service := &jwtService{secretKey: "test-secret", issuer: "UNITYPLATE"}

	_, err := service.GetEmailByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
