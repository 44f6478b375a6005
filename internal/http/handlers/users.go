package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-ride-hail/internal/http/middleware"
	"github.com/pribylovaa/go-ride-hail/internal/http/response"
	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/service"
)

// RegisterUser — POST /api/v1/users/register.
func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := decodeStrict(r, &req); err != nil {
		response.WriteError(w, r, errBadBody())
		return
	}

	user, auth, err := h.svc.RegisterUser(r.Context(), req.toInput())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.setAuthCookie(w, auth.Token, time.Until(auth.ExpiresAt))
	response.WriteJSON(w, http.StatusCreated, response.Envelope{
		Success: true,
		Message: "User registered successfully",
		Token:   auth.Token,
		Data:    toUserView(user),
	})
}

// LoginUser — POST /api/v1/users/login.
func (h *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeStrict(r, &req); err != nil {
		response.WriteError(w, r, errBadBody())
		return
	}

	user, auth, err := h.svc.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.setAuthCookie(w, auth.Token, time.Until(auth.ExpiresAt))
	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "User logged in successfully",
		Token:   auth.Token,
		Data:    toUserView(user),
	})
}

// LogoutUser — POST /api/v1/users/logout. Токен уходит в чёрный список,
// cookie сбрасывается.
func (h *Handlers) LogoutUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.WriteError(w, r, service.ErrNoToken)
		return
	}

	token := middleware.TokenFrom(r.Context())
	if err := h.svc.RevokeToken(r.Context(), token, identity.ID, models.ReasonLogout); err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.clearAuthCookie(w)
	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "User logged out successfully",
	})
}

// ListUsers — GET /api/v1/users.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    toUserViews(users),
	})
}

// UserByID — GET /api/v1/users/{id}.
func (h *Handlers) UserByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, errBadID())
		return
	}

	user, err := h.svc.UserByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "User retrieved successfully",
		Data:    toUserView(user),
	})
}

// UpdateUser — PUT /api/v1/users/{id}.
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, errBadID())
		return
	}

	var req updateUserRequest
	if err := decodeStrict(r, &req); err != nil {
		response.WriteError(w, r, errBadBody())
		return
	}

	in := service.UpdateUserInput{
		Phone:    req.Phone,
		IsActive: req.IsActive,
	}
	if req.FullName != nil {
		in.FirstName = &req.FullName.FirstName
		in.LastName = &req.FullName.LastName
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		in.Role = &role
	}

	user, err := h.svc.UpdateUser(r.Context(), id, in)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "User updated successfully",
		Data:    toUserView(user),
	})
}

// DeleteUser — DELETE /api/v1/users/{id}. Только администратор.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, errBadID())
		return
	}

	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "User deleted successfully",
	})
}

// PresignUserAvatar — POST /api/v1/users/{id}/avatar/presign.
// Пассажир может загружать только свой аватар; администратору можно любой.
func (h *Handlers) PresignUserAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, errBadID())
		return
	}

	if err := requireSelfOrAdmin(r, id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req presignAvatarRequest
	if err := decodeStrict(r, &req); err != nil {
		response.WriteError(w, r, errBadBody())
		return
	}

	info, err := h.svc.AvatarUploadURL(r.Context(), id, req.ContentType, req.ContentLength)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "Upload URL issued",
		Data:    toUploadView(info),
	})
}

// ConfirmUserAvatar — POST /api/v1/users/{id}/avatar/confirm.
func (h *Handlers) ConfirmUserAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, errBadID())
		return
	}

	if err := requireSelfOrAdmin(r, id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req confirmAvatarRequest
	if err := decodeStrict(r, &req); err != nil {
		response.WriteError(w, r, errBadBody())
		return
	}

	user, err := h.svc.ConfirmUserAvatar(r.Context(), id, req.Key)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "Avatar updated successfully",
		Data:    toUserView(user),
	})
}

// requireSelfOrAdmin пропускает владельца ресурса и администратора.
func requireSelfOrAdmin(r *http.Request, resourceID uuid.UUID) error {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		return service.ErrNoToken
	}

	if identity.ID != resourceID && identity.Role != models.RoleAdmin {
		return service.ErrForbidden
	}

	return nil
}
