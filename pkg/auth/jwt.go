package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается при некорректном или неподписанном токене
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrExpiredToken возвращается при истекшем токене
	ErrExpiredToken = errors.New("auth: token has expired")

	// ErrMissingHotelID возвращается, когда в claims нет hotel_id
	ErrMissingHotelID = errors.New("auth: missing hotel_id in claims")

	// ErrMissingUserID возвращается, когда в claims нет user_id
	ErrMissingUserID = errors.New("auth: missing user_id in claims")
)

// Claims кастомные JWT claims сервиса.
// hotel_id определяет тенанта: все операции выполняются строго в его рамках.
type Claims struct {
	jwt.RegisteredClaims
	HotelID  int64  `json:"hotel_id"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username,omitempty"`
}

// Service выпускает и проверяет JWT токены (HS256)
type Service struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

// NewService создает JWT сервис
func NewService(secret, issuer string, expiration time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		issuer:     issuer,
		expiration: expiration,
	}
}

// Generate выпускает токен для пользователя отеля
func (s *Service) Generate(hotelID, userID int64, username string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
		HotelID:  hotelID,
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse проверяет подпись и срок действия токена и возвращает claims
func (s *Service) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.HotelID <= 0 {
		return nil, ErrMissingHotelID
	}
	if claims.UserID <= 0 {
		return nil, ErrMissingUserID
	}

	return claims, nil
}
