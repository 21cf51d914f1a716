package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m0rzh/HMS-BookingService/internal/api/handlers"
	"github.com/m0rzh/HMS-BookingService/pkg/auth"
)

type ctxKey int

const (
	hotelIDKey ctxKey = iota
	userIDKey
	requestIDKey
)

// TokenParser интерфейс разбора JWT токена
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет bearer-токен и кладет идентификаторы отеля
// и пользователя в контекст запроса. Изоляция арендаторов начинается
// здесь: hotelID дальше берется только из контекста, не из запроса.
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing authorization header")
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authorization header must be a bearer token")
				return
			}

			claims, err := parser.Parse(tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					handlers.RespondError(w, http.StatusUnauthorized, "TOKEN_EXPIRED", "token has expired")
					return
				}
				logger.Warn("Auth: invalid token: %v", err)
				handlers.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), hotelIDKey, claims.HotelID)
			ctx = context.WithValue(ctx, userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HotelIDFromContext возвращает ID отеля текущего запроса
func HotelIDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(hotelIDKey).(int64)
	return v, ok
}

// UserIDFromContext возвращает ID пользователя текущего запроса
func UserIDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(userIDKey).(int64)
	return v, ok
}
