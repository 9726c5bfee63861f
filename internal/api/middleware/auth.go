package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

const (
	msgMissingToken = "требуется заголовок Authorization: Bearer <token>"
	msgInvalidToken = "недействительный или просроченный токен"
)

type identityKey struct{}

// Identity идентификация вызывающего из JWT токена
type Identity struct {
	UserID int64
	Email  string
	Role   domain.Role
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth возвращает middleware, проверяющий Bearer JWT токен.
// Идентификация пользователя кладется в контекст запроса.
func Auth(secret string, log Logger) mux.MiddlewareFunc {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				log.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(tokenString, claims,
				func(*jwt.Token) (interface{}, error) { return key, nil },
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil {
				log.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			identity, err := identityFromClaims(claims)
			if err != nil {
				log.Warn("%s %s - malformed claims: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext достает идентификацию из контекста запроса.
// Возвращает false, если запрос прошел мимо Auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

func identityFromClaims(claims jwt.MapClaims) (Identity, error) {
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	email, _ := claims["email"].(string)

	roleStr, _ := claims["role"].(string)
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return Identity{}, jwt.ErrTokenInvalidClaims
	}

	return Identity{
		UserID: int64(sub),
		Email:  email,
		Role:   role,
	}, nil
}
