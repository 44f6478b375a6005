package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/pkg/log"
	"github.com/pribylovaa/go-ride-hail/internal/pkg/redact"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

// Bcrypt-стоимости повторяют исходные схемы: пассажиры 10, водители 12.
const (
	userBcryptCost    = 10
	captainBcryptCost = 12
)

// RegisterUserInput — вход регистрации пассажира.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Role      models.Role
}

// VehicleInput — данные транспортного средства при регистрации водителя.
type VehicleInput struct {
	Color    string
	Plate    string
	Capacity int32
	Type     models.VehicleType
}

// LocationInput — стартовая геопозиция водителя.
type LocationInput struct {
	Latitude  float64
	Longitude float64
}

// RegisterCaptainInput — вход регистрации водителя.
type RegisterCaptainInput struct {
	FirstName     string
	LastName      string
	Email         string
	Password      string
	Phone         string
	LicenseNumber string
	VehicleType   models.VehicleType
	Vehicle       VehicleInput
	Location      LocationInput
}

// AuthResult — результат регистрации/входа: аккаунт и выпущенный токен.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
}

// RegisterUser регистрирует нового пассажира и выпускает токен.
func (s *Service) RegisterUser(ctx context.Context, in RegisterUserInput) (*models.User, *AuthResult, error) {
	const op = "service/auth/RegisterUser"

	lg := log.From(ctx)

	if fieldErrs := ValidateUserRegistration(in); len(fieldErrs) > 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fieldErrs})
	}

	email := normalizeEmail(in.Email)

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	hash, err := hashPassword(in.Password, userBcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Уникальность email обеспечивает уникальный индекс: при гонке
	// конкурирующих регистраций второй писатель получает ErrAlreadyExists.
	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("register_duplicate_email",
				slog.String("op", op),
				slog.String("email", redact.Email(email)),
			)
			return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	token, expiresAt, err := s.IssueToken(ctx, user.ID, user.Role, now)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, &AuthResult{Token: token, ExpiresAt: expiresAt}, nil
}

// LoginUser выполняет вход пассажира по email+пароль.
// Несуществующий email и неверный пароль дают одну и ту же ошибку.
func (s *Service) LoginUser(ctx context.Context, email, password string) (*models.User, *AuthResult, error) {
	const op = "service/auth/LoginUser"

	lg := log.From(ctx)

	if fieldErrs := ValidateLogin(email, password); len(fieldErrs) > 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fieldErrs})
	}

	user, err := s.storage.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		lg.Warn("login_wrong_password",
			slog.String("op", op),
			slog.String("email", redact.Email(user.Email)),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, expiresAt, err := s.IssueToken(ctx, user.ID, user.Role, time.Now().UTC())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, &AuthResult{Token: token, ExpiresAt: expiresAt}, nil
}

// RegisterCaptain регистрирует нового водителя и выпускает токен.
// Конфликты уникальности (email, лицензия, номерной знак) дают
// различимые ошибки.
func (s *Service) RegisterCaptain(ctx context.Context, in RegisterCaptainInput) (*models.Captain, *AuthResult, error) {
	const op = "service/auth/RegisterCaptain"

	lg := log.From(ctx)

	if fieldErrs := ValidateCaptainRegistration(in); len(fieldErrs) > 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fieldErrs})
	}

	email := normalizeEmail(in.Email)

	hash, err := hashPassword(in.Password, captainBcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	captain := &models.Captain{
		ID:            uuid.New(),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         email,
		PasswordHash:  hash,
		Phone:         strings.TrimSpace(in.Phone),
		LicenseNumber: strings.TrimSpace(in.LicenseNumber),
		VehicleType:   in.VehicleType,
		Status:        models.StatusInactive,
		Vehicle: models.Vehicle{
			Color:    strings.TrimSpace(in.Vehicle.Color),
			Plate:    strings.ToUpper(strings.TrimSpace(in.Vehicle.Plate)),
			Capacity: in.Vehicle.Capacity,
			Type:     in.Vehicle.Type,
		},
		Location: models.Location{
			Latitude:  in.Location.Latitude,
			Longitude: in.Location.Longitude,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveCaptain(ctx, captain); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("register_duplicate_email",
				slog.String("op", op),
				slog.String("email", redact.Email(email)),
			)
			return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		case errors.Is(err, storage.ErrLicenseExists):
			return nil, nil, fmt.Errorf("%s: %w", op, ErrLicenseTaken)
		case errors.Is(err, storage.ErrPlateExists):
			return nil, nil, fmt.Errorf("%s: %w", op, ErrPlateTaken)
		default:
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	// Роль водителя фиксирована: токен всегда несёт RoleDriver.
	token, expiresAt, err := s.IssueToken(ctx, captain.ID, models.RoleDriver, now)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return captain, &AuthResult{Token: token, ExpiresAt: expiresAt}, nil
}

// LoginCaptain выполняет вход водителя по email+пароль.
func (s *Service) LoginCaptain(ctx context.Context, email, password string) (*models.Captain, *AuthResult, error) {
	const op = "service/auth/LoginCaptain"

	lg := log.From(ctx)

	if fieldErrs := ValidateLogin(email, password); len(fieldErrs) > 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fieldErrs})
	}

	captain, err := s.storage.CaptainByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(captain.PasswordHash, password) {
		lg.Warn("login_wrong_password",
			slog.String("op", op),
			slog.String("email", redact.Email(captain.Email)),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, expiresAt, err := s.IssueToken(ctx, captain.ID, models.RoleDriver, time.Now().UTC())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return captain, &AuthResult{Token: token, ExpiresAt: expiresAt}, nil
}

// hashPassword хэширует пароль с помощью bcrypt с заданной стоимостью.
func hashPassword(password string, cost int) (string, error) {
	const op = "service/auth/hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
