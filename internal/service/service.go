// service содержит бизнес-логику ride-hail сервиса:
// регистрацию/аутентификацию пассажиров и водителей, выпуск/проверку
// bearer-токенов, деклист отозванных токенов и операции над профилями.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются сентинелами и далее маппятся HTTP-слоем на
//     статусы ответа (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-ride-hail/internal/cache"
	"github.com/pribylovaa/go-ride-hail/internal/config"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или аккаунт не найден.
	// HTTP 401.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoToken — в запросе нет bearer-токена (ни заголовка, ни cookie).
	// HTTP 401.
	ErrNoToken = errors.New("no token provided")

	// ErrInvalidToken — токен некорректен по формату/подписи.
	// HTTP 403: предъявленный, но невалидный креденшел — осознанная
	// асимметрия с отсутствующим токеном (401).
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP 403.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — токен числится в деклисте и недействителен
	// независимо от подписи. HTTP 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrForbidden — роль аутентифицированного аккаунта не даёт доступа.
	// HTTP 403.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrEmailTaken — e-mail уже занят. HTTP 409.
	ErrEmailTaken = errors.New("email already registered")

	// ErrLicenseTaken — номер лицензии уже занят другим водителем. HTTP 409.
	ErrLicenseTaken = errors.New("license number already registered")

	// ErrPlateTaken — номерной знак уже занят. HTTP 409.
	ErrPlateTaken = errors.New("vehicle plate already registered")

	// ErrNotFound — аккаунт не найден. HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrAvatarsDisabled — объектное хранилище аватаров не сконфигурировано.
	// HTTP 500.
	ErrAvatarsDisabled = errors.New("avatar storage is not configured")
)

// FieldError — ошибка валидации одного поля входного запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError агрегирует пополевые ошибки валидации. HTTP 400.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Service описывает бизнес-логику ride-hail сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
	rcache  cache.RevocationCache // может быть nil, если кэш не сконфигурирован
	avatars storage.AvatarStorage // может быть nil, если S3 не сконфигурирован
}

// New создаёт новый экземпляр Service.
// Секрет подписи приходит в составе cfg и далее не меняется.
func New(storage storage.Storage, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// SetRevocationCache устанавливает кэш деклиста (опционально).
func (s *Service) SetRevocationCache(c cache.RevocationCache) {
	s.rcache = c
}

// SetAvatarStorage устанавливает хранилище аватаров (опционально).
func (s *Service) SetAvatarStorage(a storage.AvatarStorage) {
	s.avatars = a
}
