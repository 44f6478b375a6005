package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-ride-hail/internal/http/response"
	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/service"
)

type identityKey struct{}
type rawTokenKey struct{}

// IdentityFrom достаёт аутентифицированного субъекта из контекста.
func IdentityFrom(ctx context.Context) (service.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(service.Identity)
	return id, ok
}

// TokenFrom достаёт «сырой» bearer-токен из контекста
// (нужен обработчику logout, чтобы внести токен в деклист).
func TokenFrom(ctx context.Context) string {
	if v, ok := ctx.Value(rawTokenKey{}).(string); ok {
		return v
	}

	return ""
}

// extractToken вынимает токен из Authorization: Bearer ... или cookie "token".
// Заголовок имеет приоритет над cookie.
func extractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		const prefix = "Bearer "
		if strings.HasPrefix(auth, prefix) {
			if token := strings.TrimSpace(auth[len(prefix):]); token != "" {
				return token
			}
		}
	}

	if c, err := r.Cookie("token"); err == nil {
		return c.Value
	}

	return ""
}

// Authenticate — охранник запроса: извлекает токен, проверяет подпись,
// срок действия и деклист, и кладёт {actorID, role} в контекст.
//
// Классы отказов различаются намеренно:
//   - токена нет — 401;
//   - токен есть, но подпись/срок невалидны — 403;
//   - токен отозван — 401.
func Authenticate(svc *service.Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				response.WriteError(w, r, service.ErrNoToken)
				return
			}

			identity, err := svc.Authenticate(r.Context(), token)
			if err != nil {
				response.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			ctx = context.WithValue(ctx, rawTokenKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthenticateAs — вариант охранника для маршрутов одной роли:
// после успешной аутентификации дополнительно требует role == want,
// иначе 403 (подпись валидна, токен не истёк, но роль не та).
func AuthenticateAs(svc *service.Service, want models.Role) Middleware {
	authn := Authenticate(svc)

	return func(next http.Handler) http.Handler {
		return authn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok {
				response.WriteError(w, r, service.ErrNoToken)
				return
			}

			if identity.Role != want {
				response.WriteError(w, r, fmt.Errorf("role %q: %w", identity.Role, service.ErrForbidden))
				return
			}

			next.ServeHTTP(w, r)
		}))
	}
}
