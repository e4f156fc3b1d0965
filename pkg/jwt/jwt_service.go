package jwt

import (
	"UnityPlate-Backend/domain"
	"UnityPlate-Backend/internal/utils"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateAccessToken(email string) string
		ValidateAccessToken(token string) (*jwt.Token, error)
		GetEmailByToken(token string) (string, error)
	}

	accessClaim struct {
		Email string `json:"email"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "UNITYPLATE",
	}
}

// GenerateAccessToken signs a credential bound to the email, valid for one
// hour. The caller delivers it via the access_token cookie only.
func (j *jwtService) GenerateAccessToken(email string) string {
	claims := accessClaim{
		email,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateAccessToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &accessClaim{}, j.parseToken)
}

// GetEmailByToken verifies the signature and expiry without any store
// lookup and returns the identity bound into the credential.
func (j *jwtService) GetEmailByToken(token string) (string, error) {
	t_Token, err := j.ValidateAccessToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*accessClaim)
	return claims.Email, nil
}
