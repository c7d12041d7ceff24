package jwt

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/internal/utils"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string, lineUserID string) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, string, error)
	}

	jwtUserClaim struct {
		UserID     string `json:"user_id"`
		LineUserID string `json:"line_user_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: utils.GetConfig("JWT_SECRET"),
		issuer:    "FRIDGE_ELF",
	}
}

func (j *jwtService) GenerateTokenUser(userID string, lineUserID string) string {
	claims := jwtUserClaim{
		userID,
		lineUserID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24 * 30)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return ""
	}
	return signed
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(
		token,
		&jwtUserClaim{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(j.secretKey), nil
		},
	)
}

func (j *jwtService) GetUserIDByToken(token string) (string, string, error) {
	parsed, err := j.ValidateTokenUser(token)
	if err != nil {
		return "", "", err
	}

	claims, ok := parsed.Claims.(*jwtUserClaim)
	if !ok || !parsed.Valid {
		return "", "", errors.New(domain.MessageFailedTokenInvalid)
	}

	return claims.UserID, claims.LineUserID, nil
}
