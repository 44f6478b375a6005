package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
	"github.com/pribylovaa/go-ride-hail/migrations"
)

// Интеграционные тесты пакета postgres:
//   - поднимают реальный PostgreSQL через testcontainers-go (postgres:16-alpine);
//   - применяют goose-миграции из встроенной ФС;
//   - проверяют уникальность email/лицензии/номерного знака и TTL-семантику
//     деклиста токенов.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// startPostgres поднимает временный PostgreSQL, применяет миграции и
// возвращает инициализированное хранилище с функцией очистки.
// Без GO_TEST_INTEGRATION тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, "."))
	require.NoError(t, db.Close())

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func testUser(email string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:           uuid.New(),
		FirstName:    "Ivan",
		LastName:     "Petrov",
		Email:        email,
		PasswordHash: "hash",
		Role:         models.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func testCaptain(email, license, plate string) *models.Captain {
	now := time.Now().UTC()
	return &models.Captain{
		ID:            uuid.New(),
		FirstName:     "Oleg",
		LastName:      "Sidorov",
		Email:         email,
		PasswordHash:  "hash",
		LicenseNumber: license,
		VehicleType:   models.VehicleCar,
		Status:        models.StatusInactive,
		Vehicle: models.Vehicle{
			Color:    "white",
			Plate:    plate,
			Capacity: 4,
			Type:     models.VehicleCar,
		},
		Location:  models.Location{Latitude: 55.75, Longitude: 37.62},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestIntegration_SaveUser_And_Lookup_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := testUser("user@example.com")

	require.NoError(t, st.SaveUser(ctx, u))

	byEmail, err := st.UserByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
	require.WithinDuration(t, u.CreatedAt, byEmail.CreatedAt, time.Second)

	byID, err := st.UserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
}

func TestIntegration_SaveUser_UniqueEmail_CaseInsensitive(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, st.SaveUser(ctx, testUser("dup@example.com")))

	err := st.SaveUser(ctx, testUser("DUP@EXAMPLE.COM"))
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_UserByEmail_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UserByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UpdateUser_Partial(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := testUser("upd@example.com")
	require.NoError(t, st.SaveUser(ctx, u))

	phone := "+79001234567"
	role := models.RoleAdmin
	updated, err := st.UpdateUser(ctx, u.ID, storage.UpdateUserParams{
		Phone: &phone,
		Role:  &role,
	})
	require.NoError(t, err)

	// Нетронутые поля сохраняются, переданные обновляются.
	require.Equal(t, u.FirstName, updated.FirstName)
	require.Equal(t, phone, updated.Phone)
	require.Equal(t, role, updated.Role)
	require.True(t, updated.UpdatedAt.After(u.UpdatedAt) || updated.UpdatedAt.Equal(u.UpdatedAt))
}

func TestIntegration_DeleteUser(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := testUser("del@example.com")
	require.NoError(t, st.SaveUser(ctx, u))

	require.NoError(t, st.DeleteUser(ctx, u.ID))
	require.ErrorIs(t, st.DeleteUser(ctx, u.ID), storage.ErrNotFound)

	_, err := st.UserByID(ctx, u.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_SaveCaptain_UniqueViolations_Distinguished(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()

	base := testCaptain("cap@example.com", "LIC-1", "A111AA")
	require.NoError(t, st.SaveCaptain(ctx, base))

	dupEmail := testCaptain("cap@example.com", "LIC-2", "B222BB")
	require.ErrorIs(t, st.SaveCaptain(ctx, dupEmail), storage.ErrAlreadyExists)

	dupLicense := testCaptain("other@example.com", "LIC-1", "C333CC")
	require.ErrorIs(t, st.SaveCaptain(ctx, dupLicense), storage.ErrLicenseExists)

	dupPlate := testCaptain("third@example.com", "LIC-3", "A111AA")
	require.ErrorIs(t, st.SaveCaptain(ctx, dupPlate), storage.ErrPlateExists)
}

func TestIntegration_RevokedTokens_TTLSemantics(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()
	actor := uuid.New()

	live := &models.RevokedToken{
		TokenHash:     "live-hash",
		ActorID:       actor,
		Reason:        models.ReasonLogout,
		BlacklistedAt: now,
		ExpiresAt:     now.Add(time.Hour),
	}
	expired := &models.RevokedToken{
		TokenHash:     "expired-hash",
		ActorID:       actor,
		Reason:        models.ReasonLogout,
		BlacklistedAt: now.Add(-2 * time.Hour),
		ExpiresAt:     now.Add(-time.Hour),
	}

	require.NoError(t, st.SaveRevokedToken(ctx, live))
	require.NoError(t, st.SaveRevokedToken(ctx, expired))

	// Повторная вставка того же хэша — конфликт.
	require.ErrorIs(t, st.SaveRevokedToken(ctx, live), storage.ErrAlreadyExists)

	revoked, err := st.IsTokenRevoked(ctx, "live-hash", now)
	require.NoError(t, err)
	require.True(t, revoked)

	// Просроченная запись не блокирует токен даже до зачистки.
	revoked, err = st.IsTokenRevoked(ctx, "expired-hash", now)
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, st.DeleteExpiredTokens(ctx, now))

	revoked, err = st.IsTokenRevoked(ctx, "live-hash", now)
	require.NoError(t, err)
	require.True(t, revoked)

	n, err := st.PurgeActorTokens(ctx, actor)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}
