package manage_tours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelContentService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "неверный админ-пароль"
	msgTitleRequired      = "название экскурсии обязательно"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/admin/tours
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	tours, err := h.service.ListTours(r.Context(), handlers.AdminPassword(r))
	if err != nil {
		h.respondError(w, "GET /admin/tours", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, tours)
}

// HandleUpsert POST /api/admin/tours
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		h.logger.Warn("POST /admin/tours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tour, err := h.service.UpsertTour(r.Context(), handlers.AdminPassword(r), raw)
	if err != nil {
		h.respondError(w, "POST /admin/tours", err)
		return
	}

	h.logger.Info("POST /admin/tours - Tour saved: id=%s", tour.ID)
	handlers.RespondJSON(w, http.StatusOK, UpsertTourResponse{OK: true, Tour: tour})
}

// HandleDelete DELETE /api/admin/tours/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteTour(r.Context(), handlers.AdminPassword(r), id); err != nil {
		h.respondError(w, "DELETE /admin/tours", err)
		return
	}

	h.logger.Info("DELETE /admin/tours - Tour deleted: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteTourResponse{OK: true})
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnauthorized):
		h.logger.Warn("%s - Unauthorized", route)
		handlers.RespondUnauthorized(w, msgUnauthorized)

	case errors.Is(err, catalog.ErrValidation):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, msgTitleRequired)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
