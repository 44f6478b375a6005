package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

// SaveRevokedToken вставляет запись деклиста.
func (s *Storage) SaveRevokedToken(ctx context.Context, token *models.RevokedToken) error {
	const op = "storage/postgres/SaveRevokedToken"

	query := `
		INSERT INTO revoked_tokens(token_hash, actor_id, reason, blacklisted_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.Exec(ctx, query,
		token.TokenHash,
		token.ActorID,
		token.Reason,
		token.BlacklistedAt,
		token.ExpiresAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IsTokenRevoked сообщает, числится ли токен в деклисте на момент now.
// Фильтрация по expires_at происходит в самом запросе: между срабатываниями
// фоновой зачистки просроченные строки не должны блокировать токен.
func (s *Storage) IsTokenRevoked(ctx context.Context, tokenHash string, now time.Time) (bool, error) {
	const op = "storage/postgres/IsTokenRevoked"

	query := `
		SELECT EXISTS(
			SELECT 1 FROM revoked_tokens
			WHERE token_hash = $1 AND expires_at > $2
		)
	`

	var revoked bool
	if err := s.db.QueryRow(ctx, query, tokenHash, now).Scan(&revoked); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return revoked, nil
}

// PurgeActorTokens удаляет все записи деклиста для владельца.
func (s *Storage) PurgeActorTokens(ctx context.Context, actorID uuid.UUID) (int64, error) {
	const op = "storage/postgres/PurgeActorTokens"

	cmdTag, err := s.db.Exec(ctx, `DELETE FROM revoked_tokens WHERE actor_id = $1`, actorID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected(), nil
}

// DeleteExpiredTokens удаляет все просроченные записи деклиста.
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) error {
	const op = "storage/postgres/DeleteExpiredTokens"

	if _, err := s.db.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at <= $1`, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
