package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
)

func validUserInput() RegisterUserInput {
	return RegisterUserInput{
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     "Ivan.Petrov@Example.com",
		Password:  "secret123",
		Phone:     "+79001234567",
	}
}

func validCaptainInput() RegisterCaptainInput {
	return RegisterCaptainInput{
		FirstName:     "Oleg",
		LastName:      "Sidorov",
		Email:         "oleg@example.com",
		Password:      "secret123",
		LicenseNumber: "LIC-12345",
		VehicleType:   models.VehicleCar,
		Vehicle: VehicleInput{
			Color:    "white",
			Plate:    "a123bc",
			Capacity: 4,
			Type:     models.VehicleCar,
		},
		Location: LocationInput{Latitude: 55.75, Longitude: 37.62},
	}
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	var saved *models.User
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		})

	user, auth, err := svc.RegisterUser(context.Background(), validUserInput())
	require.NoError(t, err)
	require.NotNil(t, saved)

	// Email нормализуется, пароль хранится только в виде bcrypt-хэша.
	require.Equal(t, "ivan.petrov@example.com", user.Email)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "secret123", user.PasswordHash)
	require.True(t, checkPassword(user.PasswordHash, "secret123"))
	require.Equal(t, models.RoleUser, user.Role)
	require.True(t, user.IsActive)

	require.NotEmpty(t, auth.Token)
	require.WithinDuration(t, time.Now().Add(testAuthCfg().UserTokenTTL), auth.ExpiresAt, 2*time.Second)
}

func TestRegisterUser_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	in := validUserInput()
	in.FirstName = "I"
	in.Email = "not-an-email"
	in.Password = "short"

	_, _, err := svc.RegisterUser(context.Background(), in)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := make(map[string]bool, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields[f.Field] = true
	}
	require.True(t, fields["fullName.firstName"])
	require.True(t, fields["email"])
	require.True(t, fields["password"])
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, _, err := svc.RegisterUser(context.Background(), validUserInput())
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	hash, err := hashPassword("secret123", userBcryptCost)
	require.NoError(t, err)

	uid := uuid.New()
	st.EXPECT().UserByEmail(gomock.Any(), "ivan@example.com").
		Return(&models.User{ID: uid, Email: "ivan@example.com", PasswordHash: hash, Role: models.RoleUser}, nil)

	user, auth, err := svc.LoginUser(context.Background(), "Ivan@Example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, uid, user.ID)
	require.NotEmpty(t, auth.Token)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	hash, err := hashPassword("secret123", userBcryptCost)
	require.NoError(t, err)

	st.EXPECT().UserByEmail(gomock.Any(), "ivan@example.com").
		Return(&models.User{ID: uuid.New(), PasswordHash: hash}, nil)

	_, _, err = svc.LoginUser(context.Background(), "ivan@example.com", "wrong-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UnknownEmail_SameError(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

	_, _, err := svc.LoginUser(context.Background(), "ghost@example.com", "whatever1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterCaptain_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	var saved *models.Captain
	st.EXPECT().SaveCaptain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Captain) error {
			saved = c
			return nil
		})

	captain, auth, err := svc.RegisterCaptain(context.Background(), validCaptainInput())
	require.NoError(t, err)
	require.NotNil(t, saved)

	require.Equal(t, models.StatusInactive, captain.Status)
	// Номерной знак приводится к верхнему регистру.
	require.Equal(t, "A123BC", captain.Vehicle.Plate)
	require.NotEmpty(t, auth.Token)

	// Токен водителя всегда несёт роль driver.
	claims, err := svc.VerifyToken(auth.Token)
	require.NoError(t, err)
	require.Equal(t, models.RoleDriver, claims.Role)
	require.Equal(t, captain.ID, claims.ActorID)
}

func TestRegisterCaptain_DuplicateMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		stErr   error
		wantErr error
	}{
		{"email", storage.ErrAlreadyExists, ErrEmailTaken},
		{"license", storage.ErrLicenseExists, ErrLicenseTaken},
		{"plate", storage.ErrPlateExists, ErrPlateTaken},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, st, ctrl := newServiceWithMock(t)
			defer ctrl.Finish()

			st.EXPECT().SaveCaptain(gomock.Any(), gomock.Any()).Return(tc.stErr)

			_, _, err := svc.RegisterCaptain(context.Background(), validCaptainInput())
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoginCaptain_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	hash, err := hashPassword("secret123", captainBcryptCost)
	require.NoError(t, err)

	cid := uuid.New()
	st.EXPECT().CaptainByEmail(gomock.Any(), "oleg@example.com").
		Return(&models.Captain{ID: cid, Email: "oleg@example.com", PasswordHash: hash}, nil)

	captain, auth, err := svc.LoginCaptain(context.Background(), "oleg@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, cid, captain.ID)
	require.WithinDuration(t, time.Now().Add(testAuthCfg().CaptainTokenTTL), auth.ExpiresAt, 2*time.Second)
}

func TestLoginCaptain_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newServiceWithMock(t)
	defer ctrl.Finish()

	st.EXPECT().CaptainByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, _, err := svc.LoginCaptain(context.Background(), "oleg@example.com", "secret123")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}
