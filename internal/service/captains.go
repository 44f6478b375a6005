package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

// CaptainByID возвращает водителя по идентификатору.
func (s *Service) CaptainByID(ctx context.Context, id uuid.UUID) (*models.Captain, error) {
	const op = "service/captains/CaptainByID"

	captain, err := s.storage.CaptainByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return captain, nil
}

// ListCaptains возвращает всех водителей.
func (s *Service) ListCaptains(ctx context.Context) ([]models.Captain, error) {
	const op = "service/captains/ListCaptains"

	captains, err := s.storage.ListCaptains(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return captains, nil
}
