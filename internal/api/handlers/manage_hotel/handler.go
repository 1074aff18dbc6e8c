package manage_hotel

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelContentService/internal/domain"
	"github.com/m04kA/SMC-HotelContentService/internal/service/hotel"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "неверный админ-пароль"
)

var msgPasswordTooShort = fmt.Sprintf("пароль должен быть не короче %d символов", domain.MinPasswordLength)

type Handler struct {
	service HotelService
	logger  Logger
}

func NewHandler(service HotelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandlePatch POST /api/admin/hotel
// Частичное обновление профиля: применяются только разрешённые ключи,
// остальные молча игнорируются.
func (h *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		h.logger.Warn("POST /admin/hotel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.Patch(r.Context(), handlers.AdminPassword(r), raw)
	if err != nil {
		h.respondError(w, "POST /admin/hotel", err)
		return
	}

	h.logger.Info("POST /admin/hotel - Profile updated")
	handlers.RespondJSON(w, http.StatusOK, PatchResponse{OK: true, Hotel: profile})
}

// HandleVisitorCount POST /api/admin/visitor-count
func (h *Handler) HandleVisitorCount(w http.ResponseWriter, r *http.Request) {
	var req VisitorCountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/visitor-count - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	count, err := h.service.SetVisitorCount(r.Context(), handlers.AdminPassword(r), req.Count)
	if err != nil {
		h.respondError(w, "POST /admin/visitor-count", err)
		return
	}

	h.logger.Info("POST /admin/visitor-count - Visitor count set to %d", count)
	handlers.RespondJSON(w, http.StatusOK, VisitorCountResponse{OK: true, VisitorCount: count})
}

// HandlePassword POST /api/admin/password
// Новый пароль действует сразу после ответа.
func (h *Handler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ChangePassword(r.Context(), handlers.AdminPassword(r), req.NewPassword); err != nil {
		h.respondError(w, "POST /admin/password", err)
		return
	}

	h.logger.Info("POST /admin/password - Admin password changed")
	handlers.RespondJSON(w, http.StatusOK, ChangePasswordResponse{OK: true})
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, hotel.ErrUnauthorized):
		h.logger.Warn("%s - Unauthorized", route)
		handlers.RespondUnauthorized(w, msgUnauthorized)

	case errors.Is(err, hotel.ErrPasswordTooShort):
		h.logger.Warn("%s - Password too short", route)
		handlers.RespondBadRequest(w, msgPasswordTooShort)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
