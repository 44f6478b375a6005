package middleware

import (
	"fmt"
	"net/http"

	"github.com/pribylovaa/go-ride-hail/internal/http/response"
	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/service"
)

// RequireRoles пропускает запрос только при наличии аутентифицированного
// субъекта с одной из перечисленных ролей. Чистая функция контекста и
// набора ролей, без побочных эффектов:
//   - субъекта в контексте нет — 401 (Authenticate не отработал);
//   - роль не входит в набор — 403.
func RequireRoles(allowed ...models.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok {
				response.WriteError(w, r, service.ErrNoToken)
				return
			}

			for _, role := range allowed {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.WriteError(w, r, fmt.Errorf("role %q: %w", identity.Role, service.ErrForbidden))
		})
	}
}
