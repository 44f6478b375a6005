package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/go-ride-hail/internal/config"
	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/service"
	"github.com/pribylovaa/go-ride-hail/internal/storage"
	"github.com/pribylovaa/go-ride-hail/mocks"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Token   string            `json:"token"`
	Data    json.RawMessage   `json:"data"`
	Captain json.RawMessage   `json:"captain"`
	Errors  []json.RawMessage `json:"errors"`
}

func newTestRouter(t *testing.T) (http.Handler, *service.Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := service.New(st, config.AuthConfig{
		JWTSecret:       "router-test-secret",
		UserTokenTTL:    168 * time.Hour,
		CaptainTokenTTL: 24 * time.Hour,
		Issuer:          "ride-hail",
		Audience:        []string{"ride-hail-clients"},
	})

	router := NewRouter(RouterOptions{
		Service:        svc,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Env:            "local",
		RequestTimeout: 5 * time.Second,
	})

	return router, svc, st, ctrl
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func registerUserBody() map[string]any {
	return map[string]any{
		"fullName": map[string]any{"firstName": "Ivan", "lastName": "Petrov"},
		"email":    "ivan@example.com",
		"password": "secret123",
		"phone":    "+79001234567",
	}
}

func registerCaptainBody() map[string]any {
	return map[string]any{
		"fullName":      map[string]any{"firstName": "Oleg", "lastName": "Sidorov"},
		"email":         "oleg@example.com",
		"password":      "secret123",
		"licenseNumber": "LIC-12345",
		"vehicleType":   "car",
		"vehicle": map[string]any{
			"color":       "white",
			"plate":       "a123bc",
			"capacity":    4,
			"vehicleType": "car",
		},
		"location": map[string]any{"latitude": 55.75, "longitude": 37.62},
	}
}

func authCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestRegisterUser_Created_SetsCookie(t *testing.T) {
	router, _, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/users/register", "", registerUserBody())

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)
	require.NotEmpty(t, env.Token)

	// Хэш пароля не должен просачиваться в ответ.
	require.NotContains(t, string(env.Data), "password")
	require.Contains(t, string(env.Data), "ivan@example.com")

	c := authCookie(rec)
	require.NotNil(t, c)
	require.Equal(t, env.Token, c.Value)
	require.True(t, c.HttpOnly)
	require.Positive(t, c.MaxAge)
}

func TestRegisterUser_ValidationFailed_400(t *testing.T) {
	router, _, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	body := registerUserBody()
	body["email"] = "nope"
	body["password"] = "123"

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/users/register", "", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.Equal(t, "Validation failed", env.Message)
	require.NotEmpty(t, env.Errors)
}

func TestRegisterUser_DuplicateEmail_409(t *testing.T) {
	router, _, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/users/register", "", registerUserBody())

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "Email already registered", env.Message)
}

func TestLoginUser_WrongPassword_401(t *testing.T) {
	router, _, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	hash := mustBcrypt(t, "secret123")
	st.EXPECT().UserByEmail(gomock.Any(), "ivan@example.com").
		Return(&models.User{ID: uuid.New(), PasswordHash: hash, Role: models.RoleUser}, nil)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/users/login", "", map[string]any{
		"email":    "ivan@example.com",
		"password": "wrong-pass",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid email or password", env.Message)
}

func TestLogoutUser_RevokesToken_ClearsCookie(t *testing.T) {
	router, svc, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	uid := uuid.New()
	token, _, err := svc.IssueToken(context.Background(), uid, models.RoleUser, time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	var saved *models.RevokedToken
	st.EXPECT().SaveRevokedToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.RevokedToken) error {
			saved = entry
			return nil
		})

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/users/logout", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	require.NotNil(t, saved)
	require.Equal(t, uid, saved.ActorID)
	require.Equal(t, models.ReasonLogout, saved.Reason)

	c := authCookie(rec)
	require.NotNil(t, c)
	require.Empty(t, c.Value)
	require.Negative(t, c.MaxAge)
}

func TestProtectedRoute_NoToken_401(t *testing.T) {
	router, _, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/users/", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "No token provided, authorization denied", env.Message)
}

func TestProtectedRoute_BadToken_403(t *testing.T) {
	router, _, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/users/", "garbage-token", nil)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Invalid or expired token", env.Message)
}

func TestUserByID_BadID_400(t *testing.T) {
	router, svc, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	token, _, err := svc.IssueToken(context.Background(), uuid.New(), models.RoleUser, time.Now().UTC())
	require.NoError(t, err)
	st.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/users/not-a-uuid", token, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Validation failed", env.Message)
}

func TestUserByID_NotFound_404(t *testing.T) {
	router, svc, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	token, _, err := svc.IssueToken(context.Background(), uuid.New(), models.RoleUser, time.Now().UTC())
	require.NoError(t, err)
	st.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	ghost := uuid.New()
	st.EXPECT().UserByID(gomock.Any(), ghost).Return(nil, storage.ErrNotFound)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/users/"+ghost.String(), token, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_AdminOnly(t *testing.T) {
	router, svc, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	target := uuid.New()

	t.Run("user forbidden", func(t *testing.T) {
		token, _, err := svc.IssueToken(context.Background(), uuid.New(), models.RoleUser, time.Now().UTC())
		require.NoError(t, err)
		st.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		rec, env := doJSON(t, router, http.MethodDelete, "/api/v1/users/"+target.String(), token, nil)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, "Access denied. Insufficient permissions", env.Message)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token, _, err := svc.IssueToken(context.Background(), uuid.New(), models.RoleAdmin, time.Now().UTC())
		require.NoError(t, err)
		st.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		st.EXPECT().DeleteUser(gomock.Any(), target).Return(nil)
		st.EXPECT().PurgeActorTokens(gomock.Any(), target).Return(int64(0), nil)

		rec, env := doJSON(t, router, http.MethodDelete, "/api/v1/users/"+target.String(), token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, env.Success)
	})
}

func TestRegisterCaptain_Created_SessionCookie(t *testing.T) {
	router, _, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	st.EXPECT().SaveCaptain(gomock.Any(), gomock.Any()).Return(nil)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/captains/register", "", registerCaptainBody())

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)
	require.NotEmpty(t, env.Token)
	// Полезная нагрузка водительских эндпоинтов лежит в "captain".
	require.Contains(t, string(env.Captain), "oleg@example.com")
	require.NotContains(t, string(env.Captain), "password")
	// Номерной знак нормализован к верхнему регистру.
	require.Contains(t, string(env.Captain), "A123BC")

	c := authCookie(rec)
	require.NotNil(t, c)
	require.Zero(t, c.MaxAge)
}

func TestRegisterCaptain_DuplicateLicense_409(t *testing.T) {
	router, _, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	st.EXPECT().SaveCaptain(gomock.Any(), gomock.Any()).Return(storage.ErrLicenseExists)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/captains/register", "", registerCaptainBody())

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "License number already registered", env.Message)
}

func TestCaptainRoutes_RejectUserToken(t *testing.T) {
	router, svc, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	// Пассажирский токен на водительском маршруте — 403.
	token, _, err := svc.IssueToken(context.Background(), uuid.New(), models.RoleUser, time.Now().UTC())
	require.NoError(t, err)
	st.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/captains/logout", token, nil)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCaptainByID_DriverToken_OK(t *testing.T) {
	router, svc, st, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	cid := uuid.New()
	token, _, err := svc.IssueToken(context.Background(), cid, models.RoleDriver, time.Now().UTC())
	require.NoError(t, err)
	st.EXPECT().IsTokenRevoked(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	st.EXPECT().CaptainByID(gomock.Any(), cid).Return(&models.Captain{
		ID:     cid,
		Email:  "oleg@example.com",
		Status: models.StatusInactive,
	}, nil)

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/captains/"+cid.String(), token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, string(env.Captain), cid.String())
}

func TestMalformedBody_400(t *testing.T) {
	router, _, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func mustBcrypt(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}
