package storage

//go:generate mockgen -destination=../../mocks/mock_storage.go -package=mocks github.com/pribylovaa/go-ride-hail/internal/storage Storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-ride-hail/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/водитель/токен).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности email.
	ErrAlreadyExists = errors.New("already exists")
	// ErrLicenseExists — нарушение уникальности номера лицензии водителя.
	ErrLicenseExists = errors.New("license number already exists")
	// ErrPlateExists — нарушение уникальности номера транспортного средства.
	ErrPlateExists = errors.New("vehicle plate already exists")
)

// UpdateUserParams — частичное обновление профиля пользователя.
// Обновляются только поля с ненулевыми указателями; креденшелы
// (email, пароль) этим путем не меняются.
type UpdateUserParams struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *models.Role
	IsActive  *bool
}

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создает нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email (включая хэш пароля).
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser частично обновляет профиль и возвращает свежую запись.
	UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*models.User, error)
	// DeleteUser удаляет пользователя.
	DeleteUser(ctx context.Context, id uuid.UUID) error
	// SetUserAvatar сохраняет ключ/URL аватара и возвращает свежую запись.
	SetUserAvatar(ctx context.Context, id uuid.UUID, key, url string) (*models.User, error)
}

// CaptainStorage выполняет операции над водителями.
type CaptainStorage interface {
	// SaveCaptain создает нового водителя в БД.
	SaveCaptain(ctx context.Context, captain *models.Captain) error
	// CaptainByEmail находит водителя по email (включая хэш пароля).
	CaptainByEmail(ctx context.Context, email string) (*models.Captain, error)
	// CaptainByID находит водителя по ID.
	CaptainByID(ctx context.Context, id uuid.UUID) (*models.Captain, error)
	// ListCaptains возвращает всех водителей.
	ListCaptains(ctx context.Context) ([]models.Captain, error)
	// SetCaptainAvatar сохраняет ключ/URL аватара и возвращает свежую запись.
	SetCaptainAvatar(ctx context.Context, id uuid.UUID, key, url string) (*models.Captain, error)
}

// RevokedTokenStorage — деклист токенов с TTL-семантикой.
type RevokedTokenStorage interface {
	// SaveRevokedToken вставляет запись деклиста.
	// Повторная вставка того же хэша возвращает ErrAlreadyExists.
	SaveRevokedToken(ctx context.Context, token *models.RevokedToken) error
	// IsTokenRevoked сообщает, числится ли токен в деклисте на момент now.
	// Просроченные записи считаются отсутствующими независимо от того,
	// успела ли их удалить фоновая зачистка.
	IsTokenRevoked(ctx context.Context, tokenHash string, now time.Time) (bool, error)
	// PurgeActorTokens удаляет все записи деклиста для владельца.
	PurgeActorTokens(ctx context.Context, actorID uuid.UUID) (int64, error)
	// DeleteExpiredTokens удаляет все просроченные записи.
	DeleteExpiredTokens(ctx context.Context, now time.Time) error
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	CaptainStorage
	RevokedTokenStorage
	Close()
}
