package models

import (
	"time"

	"github.com/google/uuid"
)

// RevokeReason — причина попадания токена в деклист.
type RevokeReason string

const (
	ReasonLogout             RevokeReason = "logout"
	ReasonPasswordChange     RevokeReason = "password-change"
	ReasonAccountDelete      RevokeReason = "account-delete"
	ReasonSuspiciousActivity RevokeReason = "suspicious-activity"
	ReasonAdminAction        RevokeReason = "admin-action"
	ReasonTokenRefresh       RevokeReason = "token-refresh"
)

// RevokedToken — запись деклиста: токен, который нужно отклонять,
// даже если его подпись валидна.
//
// Описание:
//   - TokenHash — SHA-256 от строки токена (сам токен в БД не храним);
//   - ActorID — владелец токена (пассажир или водитель);
//   - ExpiresAt — момент, после которого запись считается отсутствующей:
//     выборки фильтруют по expires_at, фоновая зачистка удаляет строки.
type RevokedToken struct {
	TokenHash     string
	ActorID       uuid.UUID
	Reason        RevokeReason
	BlacklistedAt time.Time
	ExpiresAt     time.Time
}
