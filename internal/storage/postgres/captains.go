package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

const captainColumns = `
	id, first_name, last_name, email, password_hash, phone,
	license_number, vehicle_type, status,
	vehicle_color, vehicle_plate, vehicle_capacity, vehicle_vehicle_type,
	latitude, longitude, avatar_key, avatar_url, created_at, updated_at
`

func scanCaptain(row pgx.Row) (*models.Captain, error) {
	var c models.Captain
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.PasswordHash,
		&c.Phone,
		&c.LicenseNumber,
		&c.VehicleType,
		&c.Status,
		&c.Vehicle.Color,
		&c.Vehicle.Plate,
		&c.Vehicle.Capacity,
		&c.Vehicle.Type,
		&c.Location.Latitude,
		&c.Location.Longitude,
		&c.AvatarKey,
		&c.AvatarURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// SaveCaptain создает нового водителя в БД.
// Конфликты уникальности разводим по имени constraint-а: email,
// номер лицензии и номерной знак дают разные ошибки хранилища.
func (s *Storage) SaveCaptain(ctx context.Context, captain *models.Captain) error {
	const op = "storage/postgres/SaveCaptain"

	query := `
		INSERT INTO captains(id, first_name, last_name, email, password_hash, phone,
		                     license_number, vehicle_type, status,
		                     vehicle_color, vehicle_plate, vehicle_capacity, vehicle_vehicle_type,
		                     latitude, longitude, avatar_key, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := s.db.Exec(ctx, query,
		captain.ID,
		captain.FirstName,
		captain.LastName,
		captain.Email,
		captain.PasswordHash,
		captain.Phone,
		captain.LicenseNumber,
		captain.VehicleType,
		captain.Status,
		captain.Vehicle.Color,
		captain.Vehicle.Plate,
		captain.Vehicle.Capacity,
		captain.Vehicle.Type,
		captain.Location.Latitude,
		captain.Location.Longitude,
		captain.AvatarKey,
		captain.AvatarURL,
		captain.CreatedAt,
		captain.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch {
			case strings.Contains(pgErr.ConstraintName, "license"):
				return fmt.Errorf("%s: %w", op, storage.ErrLicenseExists)
			case strings.Contains(pgErr.ConstraintName, "plate"):
				return fmt.Errorf("%s: %w", op, storage.ErrPlateExists)
			default:
				return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			}
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CaptainByEmail находит водителя по email.
func (s *Storage) CaptainByEmail(ctx context.Context, email string) (*models.Captain, error) {
	const op = "storage/postgres/CaptainByEmail"

	query := `SELECT ` + captainColumns + ` FROM captains WHERE email = $1`

	captain, err := scanCaptain(s.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return captain, nil
}

// CaptainByID находит водителя по ID.
func (s *Storage) CaptainByID(ctx context.Context, id uuid.UUID) (*models.Captain, error) {
	const op = "storage/postgres/CaptainByID"

	query := `SELECT ` + captainColumns + ` FROM captains WHERE id = $1`

	captain, err := scanCaptain(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return captain, nil
}

// ListCaptains возвращает всех водителей.
func (s *Storage) ListCaptains(ctx context.Context) ([]models.Captain, error) {
	const op = "storage/postgres/ListCaptains"

	query := `SELECT ` + captainColumns + ` FROM captains ORDER BY created_at`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var captains []models.Captain
	for rows.Next() {
		captain, err := scanCaptain(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		captains = append(captains, *captain)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return captains, nil
}

// SetCaptainAvatar сохраняет ключ и публичный URL аватара.
func (s *Storage) SetCaptainAvatar(ctx context.Context, id uuid.UUID, key, url string) (*models.Captain, error) {
	const op = "storage/postgres/SetCaptainAvatar"

	query := `
		UPDATE captains SET avatar_key = $2, avatar_url = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + captainColumns

	captain, err := scanCaptain(s.db.QueryRow(ctx, query, id, key, url))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return captain, nil
}
