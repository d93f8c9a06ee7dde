package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"crm/internal/entities"
	"crm/internal/pkg/response"
	"crm/pkg/logger"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// Claims access-токена менеджера; sub содержит id менеджера.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

// Middleware пропускает только запросы с валидным HS256 bearer-токеном и кладет
// менеджера в контекст. Выпуск токенов живет в отдельном сервисе.
func Middleware(log handlerLogger, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				response.Error(w, r, log, http.StatusUnauthorized, response.CodeUnauthorized, "Missing bearer token")
				return
			}

			manager, err := ParseToken(token, secret)
			if err != nil {
				log.Warn("manager token rejected",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)
				response.Error(w, r, log, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithManager(r.Context(), manager)))
		})
	}
}

func ParseToken(token, secret string) (entities.Manager, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return entities.Manager{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return entities.Manager{}, fmt.Errorf("%w: subject %q", ErrInvalidToken, claims.Subject)
	}

	return entities.Manager{
		ID:    id,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

func WithManager(ctx context.Context, manager entities.Manager) context.Context {
	return context.WithValue(ctx, ctxKey{}, manager)
}

func ManagerFromContext(ctx context.Context) (entities.Manager, bool) {
	manager, ok := ctx.Value(ctxKey{}).(entities.Manager)
	return manager, ok
}

// ActorFromContext менеджер для истории изменений; без авторизации пустой.
func ActorFromContext(ctx context.Context) entities.Actor {
	manager, ok := ManagerFromContext(ctx)
	if !ok {
		return entities.Actor{}
	}
	return manager.Actor()
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
