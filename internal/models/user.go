// models содержит доменные сущности ride-hail сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль аккаунта в системе.
type Role string

const (
	RoleUser   Role = "user"
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

// Valid проверяет, что роль входит в допустимый набор.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleDriver, RoleAdmin:
		return true
	default:
		return false
	}
}

// User — внутренняя доменная модель пассажира.
// PasswordHash никогда не сериализуется наружу: транспортный слой
// конвертирует User в публичное представление без хэша.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	Role         Role
	IsActive     bool
	AvatarKey    string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
