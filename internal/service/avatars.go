package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

// AvatarUploadURL выдаёт presigned PUT URL для загрузки аватара.
// Работает одинаково для пассажиров и водителей: ключ привязан к actorID.
func (s *Service) AvatarUploadURL(ctx context.Context, actorID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service/avatars/AvatarUploadURL"

	if s.avatars == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrAvatarsDisabled)
	}

	info, err := s.avatars.AvatarUploadURL(ctx, actorID, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: []FieldError{
				{Field: "contentType", Message: "unsupported content type or size"},
			}})
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmUserAvatar подтверждает загрузку аватара пассажира и сохраняет
// ключ/URL в профиле.
func (s *Service) ConfirmUserAvatar(ctx context.Context, userID uuid.UUID, key string) (*models.User, error) {
	const op = "service/avatars/ConfirmUserAvatar"

	url, err := s.confirmAvatar(ctx, userID, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.SetUserAvatar(ctx, userID, key, url)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// ConfirmCaptainAvatar подтверждает загрузку аватара водителя.
func (s *Service) ConfirmCaptainAvatar(ctx context.Context, captainID uuid.UUID, key string) (*models.Captain, error) {
	const op = "service/avatars/ConfirmCaptainAvatar"

	url, err := s.confirmAvatar(ctx, captainID, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	captain, err := s.storage.SetCaptainAvatar(ctx, captainID, key, url)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return captain, nil
}

func (s *Service) confirmAvatar(ctx context.Context, actorID uuid.UUID, key string) (string, error) {
	if s.avatars == nil {
		return "", ErrAvatarsDisabled
	}

	url, err := s.avatars.CheckAvatarUpload(ctx, actorID, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundAvatar):
			return "", ErrNotFound
		case errors.Is(err, storage.ErrInvalidArgument):
			return "", &ValidationError{Fields: []FieldError{
				{Field: "avatarKey", Message: "invalid avatar key or object"},
			}}
		default:
			return "", err
		}
	}

	return url, nil
}
