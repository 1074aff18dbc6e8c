package manage_categories

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
	msgNameRequired       = "название категории обязательно"
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

// HandleList GET /api/admin/categories
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context(), handlers.AdminPassword(r))
	if err != nil {
		h.respondError(w, "GET /admin/categories", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, categories)
}

// HandleUpsert POST /api/admin/categories
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		h.logger.Warn("POST /admin/categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.UpsertCategory(r.Context(), handlers.AdminPassword(r), raw)
	if err != nil {
		h.respondError(w, "POST /admin/categories", err)
		return
	}

	h.logger.Info("POST /admin/categories - Category saved: id=%s", category.ID)
	handlers.RespondJSON(w, http.StatusOK, UpsertCategoryResponse{OK: true, Category: category})
}

// HandleDelete DELETE /api/admin/categories/{id}
// Экскурсии, ссылающиеся на удалённую категорию, не трогаются.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteCategory(r.Context(), handlers.AdminPassword(r), id); err != nil {
		h.respondError(w, "DELETE /admin/categories", err)
		return
	}

	h.logger.Info("DELETE /admin/categories - Category deleted: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteCategoryResponse{OK: true})
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnauthorized):
		h.logger.Warn("%s - Unauthorized", route)
		handlers.RespondUnauthorized(w, msgUnauthorized)

	case errors.Is(err, catalog.ErrValidation):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, msgNameRequired)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
