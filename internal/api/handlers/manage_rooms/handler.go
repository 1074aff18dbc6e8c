package manage_rooms

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
	msgNameRequired       = "название номера обязательно"
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

// HandleList GET /api/admin/rooms
// Номера в порядке хранения, без сортировки по sort_order.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context(), handlers.AdminPassword(r))
	if err != nil {
		h.respondError(w, "GET /admin/rooms", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rooms)
}

// HandleUpsert POST /api/admin/rooms
// Вставка или замена номера по id.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		h.logger.Warn("POST /admin/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.UpsertRoom(r.Context(), handlers.AdminPassword(r), raw)
	if err != nil {
		h.respondError(w, "POST /admin/rooms", err)
		return
	}

	h.logger.Info("POST /admin/rooms - Room saved: id=%s", room.ID)
	handlers.RespondJSON(w, http.StatusOK, UpsertRoomResponse{OK: true, Room: room})
}

// HandleDelete DELETE /api/admin/rooms/{id}
// Идемпотентно: отсутствие номера — тоже успех.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteRoom(r.Context(), handlers.AdminPassword(r), id); err != nil {
		h.respondError(w, "DELETE /admin/rooms", err)
		return
	}

	h.logger.Info("DELETE /admin/rooms - Room deleted: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteRoomResponse{OK: true})
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
