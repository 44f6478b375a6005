// handlers реализует REST-эндпоинты сервиса поверх сервисного слоя.
// Здесь выполняется только разбор входа, маппинг в доменные вызовы и
// сериализация ответа; вся бизнес-логика находится в пакете service.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pribylovaa/go-ride-hail/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	svc *service.Service
	env string // local/dev/prod — влияет на флаг Secure у cookie.
}

func New(svc *service.Service, env string) *Handlers {
	return &Handlers{svc: svc, env: env}
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errBadBody — ошибка разбора тела запроса, маппится в 400.
func errBadBody() error {
	return &service.ValidationError{Fields: []service.FieldError{
		{Field: "body", Message: "malformed request body"},
	}}
}

// errBadID — некорректный идентификатор в пути, маппится в 400.
func errBadID() error {
	return &service.ValidationError{Fields: []service.FieldError{
		{Field: "id", Message: "invalid id format"},
	}}
}

// setAuthCookie ставит cookie "token".
// maxAge <= 0 даёт сессионную cookie (водительский вход).
func (h *Handlers) setAuthCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	c := &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.env == "prod",
		SameSite: http.SameSiteStrictMode,
	}
	if maxAge > 0 {
		c.MaxAge = int(maxAge.Seconds())
	}

	http.SetCookie(w, c)
}

// clearAuthCookie сбрасывает cookie "token".
func (h *Handlers) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.env == "prod",
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
