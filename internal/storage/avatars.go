package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFoundAvatar — объект аватара не найден в бакете.
	ErrNotFoundAvatar = errors.New("avatar not found")
	// ErrInvalidArgument — некорректные параметры загрузки (тип/размер/ключ).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UploadInfo — данные для прямой загрузки аватара клиентом.
type UploadInfo struct {
	// UploadURL — presigned PUT URL.
	UploadURL string
	// AvatarKey — ключ объекта в бакете.
	AvatarKey string
	// Expires — срок действия ссылки.
	Expires time.Duration
	// RequiredHeader — заголовки, которые клиент обязан передать при PUT.
	RequiredHeader map[string]string
}

// AvatarStorage — операции над файлами аватаров в объектном хранилище.
type AvatarStorage interface {
	// AvatarUploadURL генерирует presigned PUT URL для загрузки аватара.
	AvatarUploadURL(ctx context.Context, actorID uuid.UUID, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckAvatarUpload подтверждает факт загрузки по ключу и возвращает
	// публичный URL (пустая строка, если PublicBaseURL не задан).
	CheckAvatarUpload(ctx context.Context, actorID uuid.UUID, key string) (string, error)
}
