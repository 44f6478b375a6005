// response стандартизирует JSON-ответы HTTP-слоя.
// На вход принимает ошибку доменного слоя (service) и пишет:
//   - корректный HTTP-статус;
//   - единый конверт {success, message, token?, data?, captain?, errors?}
//     без утечки внутренних деталей.
//
// Маппинг статусов:
//   - *ValidationError                       -> 400;
//   - ErrInvalidCredentials/ErrNoToken/
//     ErrTokenRevoked                        -> 401;
//   - ErrInvalidToken/ErrTokenExpired/
//     ErrForbidden                           -> 403 (предъявленный, но
//     невалидный креденшел — не то же самое, что его отсутствие);
//   - ErrNotFound                            -> 404;
//   - ErrEmailTaken/ErrLicenseTaken/
//     ErrPlateTaken                          -> 409;
//   - прочее                                 -> 500 с безопасным сообщением.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-ride-hail/internal/service"
)

// Envelope — единый формат ответа API.
// Token присутствует в ответах регистрации/входа; Data и Captain —
// полезная нагрузка (для водительских эндпоинтов исторически "captain").
type Envelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Token   string               `json:"token,omitempty"`
	Data    any                  `json:"data,omitempty"`
	Captain any                  `json:"captain,omitempty"`
	Errors  []service.FieldError `json:"errors,omitempty"`
}

// WriteJSON пишет произвольный конверт с нужным статусом.
func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// WriteError конвертирует ошибку доменного слоя в HTTP-ответ.
// err == nil — программная ошибка вызова: отвечаем 500, чтобы не
// замаскировать баг ответом "200 OK".
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, env := toHTTP(err)
	WriteJSON(w, status, env)
}

func toHTTP(err error) (int, Envelope) {
	if err == nil {
		return http.StatusInternalServerError, fail("Internal Server Error")
	}

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		env := fail("Validation failed")
		env.Errors = vErr.Fields
		return http.StatusBadRequest, env
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, fail("Invalid email or password")
	case errors.Is(err, service.ErrNoToken):
		return http.StatusUnauthorized, fail("No token provided, authorization denied")
	case errors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized, fail("Token has been revoked")
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrTokenExpired):
		return http.StatusForbidden, fail("Invalid or expired token")
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, fail("Access denied. Insufficient permissions")
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, fail("Not found")
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, fail("Email already registered")
	case errors.Is(err, service.ErrLicenseTaken):
		return http.StatusConflict, fail("License number already registered")
	case errors.Is(err, service.ErrPlateTaken):
		return http.StatusConflict, fail("Vehicle plate already registered")
	default:
		return http.StatusInternalServerError, fail("Internal Server Error")
	}
}

func fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
