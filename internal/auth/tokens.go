// Package auth выдает и проверяет JWT токены сессий калькулятора.
// Идентификатор пользователя из токена выбирает его сессию в реестре.
package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"utility-calculator/internal/config"
	"utility-calculator/internal/db"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("expired token")
	ErrMissingAuthHeader = errors.New("missing Authorization header")
	ErrInvalidAuthHeader = errors.New("invalid Authorization header format")
)

const bearerPrefix = "Bearer "

// Claims - утверждения токена сессии
type Claims struct {
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
	jwt.RegisteredClaims
}

// Принимаются только HS256 токены со сроком действия
var parser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	jwt.WithExpirationRequired(),
	jwt.WithIssuedAt(),
)

func signingKey(*jwt.Token) (interface{}, error) {
	return []byte(config.AppConfig.JWTSecret), nil
}

// GenerateToken выдает токен на JWT_EXPIRATION_MINUTES минут
func GenerateToken(user *db.User) (string, error) {
	now := time.Now()
	ttl := time.Duration(config.AppConfig.JWTExpirationMinutes) * time.Minute

	claims := Claims{
		UserID: user.ID,
		Login:  user.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateToken проверяет подпись и срок токена
func ValidateToken(raw string) (*Claims, error) {
	claims := new(Claims)
	if _, err := parser.ParseWithClaims(raw, claims, signingKey); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseBearer извлекает токен из значения "Bearer <token>".
// Так выглядят и заголовок Authorization, и метаданные gRPC authorization.
func ParseBearer(value string) (string, error) {
	if value == "" {
		return "", ErrMissingAuthHeader
	}
	token, ok := strings.CutPrefix(value, bearerPrefix)
	if !ok || token == "" || strings.ContainsRune(token, ' ') {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

// Authenticate разбирает значение authorization и проверяет токен
func Authenticate(authorization string) (*Claims, error) {
	token, err := ParseBearer(authorization)
	if err != nil {
		return nil, err
	}
	return ValidateToken(token)
}
