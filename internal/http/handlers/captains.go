package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-ride-hail/internal/http/middleware"
	"github.com/pribylovaa/go-ride-hail/internal/http/response"
	"github.com/pribylovaa/go-ride-hail/internal/models"
	"github.com/pribylovaa/go-ride-hail/internal/service"
)

// RegisterCaptain — POST /api/v1/captains/register.
func (h *Handlers) RegisterCaptain(w http.ResponseWriter, r *http.Request) {
	var req registerCaptainRequest
	if err := decodeStrict(r, &req); err != nil {
		response.WriteError(w, r, errBadBody())
		return
	}

	captain, auth, err := h.svc.RegisterCaptain(r.Context(), req.toInput())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	// Водительская cookie сессионная: срок жизни ограничивает сам токен.
	h.setAuthCookie(w, auth.Token, 0)
	response.WriteJSON(w, http.StatusCreated, response.Envelope{
		Success: true,
		Message: "Captain registered successfully",
		Token:   auth.Token,
		Captain: toCaptainView(captain),
	})
}

// LoginCaptain — POST /api/v1/captains/login.
func (h *Handlers) LoginCaptain(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeStrict(r, &req); err != nil {
		response.WriteError(w, r, errBadBody())
		return
	}

	captain, auth, err := h.svc.LoginCaptain(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.setAuthCookie(w, auth.Token, 0)
	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "Captain logged in successfully",
		Token:   auth.Token,
		Captain: toCaptainView(captain),
	})
}

// LogoutCaptain — POST /api/v1/captains/logout.
func (h *Handlers) LogoutCaptain(w http.ResponseWriter, r *http.Request) {
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
		Message: "Captain logged out successfully",
	})
}

// ListCaptains — GET /api/v1/captains.
func (h *Handlers) ListCaptains(w http.ResponseWriter, r *http.Request) {
	captains, err := h.svc.ListCaptains(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "Captains retrieved successfully",
		Captain: toCaptainViews(captains),
	})
}

// CaptainByID — GET /api/v1/captains/{id}.
func (h *Handlers) CaptainByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, errBadID())
		return
	}

	captain, err := h.svc.CaptainByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "Captain retrieved successfully",
		Captain: toCaptainView(captain),
	})
}

// PresignCaptainAvatar — POST /api/v1/captains/{id}/avatar/presign.
func (h *Handlers) PresignCaptainAvatar(w http.ResponseWriter, r *http.Request) {
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

// ConfirmCaptainAvatar — POST /api/v1/captains/{id}/avatar/confirm.
func (h *Handlers) ConfirmCaptainAvatar(w http.ResponseWriter, r *http.Request) {
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

	captain, err := h.svc.ConfirmCaptainAvatar(r.Context(), id, req.Key)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Message: "Avatar updated successfully",
		Captain: toCaptainView(captain),
	})
}
