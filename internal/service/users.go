package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/pkg/log"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

// UpdateUserInput — частичное обновление профиля пассажира.
// Меняются только мутабельные поля профиля; email и пароль — нет.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Role      *models.Role
	IsActive  *bool
}

// UserByID возвращает пассажира по идентификатору.
func (s *Service) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "service/users/UserByID"

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// ListUsers возвращает всех пассажиров.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "service/users/ListUsers"

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// UpdateUser частично обновляет профиль пассажира.
func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*models.User, error) {
	const op = "service/users/UpdateUser"

	var fieldErrs []FieldError

	if in.FirstName != nil {
		if e := nameError("fullName.firstName", *in.FirstName); e != nil {
			fieldErrs = append(fieldErrs, *e)
		}
	}
	if in.LastName != nil {
		if e := nameError("fullName.lastName", *in.LastName); e != nil {
			fieldErrs = append(fieldErrs, *e)
		}
	}
	if in.Phone != nil && *in.Phone != "" && !phoneRe.MatchString(*in.Phone) {
		fieldErrs = append(fieldErrs, FieldError{Field: "phone", Message: "invalid phone number"})
	}
	if in.Role != nil && !in.Role.Valid() {
		fieldErrs = append(fieldErrs, FieldError{Field: "role", Message: "role must be user, driver, or admin"})
	}

	if len(fieldErrs) > 0 {
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fieldErrs})
	}

	user, err := s.storage.UpdateUser(ctx, id, storage.UpdateUserParams{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Role:      in.Role,
		IsActive:  in.IsActive,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// DeleteUser удаляет аккаунт пассажира и зачищает его записи деклиста:
// хранить отзывы несуществующего аккаунта незачем.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	const op = "service/users/DeleteUser"

	lg := log.From(ctx)

	if err := s.storage.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if n, err := s.storage.PurgeActorTokens(ctx, id); err != nil {
		// Аккаунт уже удалён; ошибка зачистки не должна валить запрос.
		lg.Warn("purge_after_delete_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	} else if n > 0 {
		lg.Info("purged_revoked_tokens",
			slog.String("op", op),
			slog.Int64("count", n),
		)
	}

	return nil
}
