package manage_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelContentService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "неверный админ-пароль"
	msgInvalidStatus      = "недопустимый статус заявки"
	msgBookingNotFound    = "заявка не найдена"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/admin/bookings
// Журнал заявок, новые первыми.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context(), handlers.AdminPassword(r))
	if err != nil {
		h.respondError(w, "GET /admin/bookings", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleUpdateStatus POST /api/admin/bookings/{id}
// Меняет только статус; остальные поля заявки неизменяемы.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), handlers.AdminPassword(r), id, req.Status)
	if err != nil {
		h.respondError(w, "POST /admin/bookings", err)
		return
	}

	h.logger.Info("POST /admin/bookings - Status updated: id=%s status=%s", booking.ID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{OK: true, Booking: booking})
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, bookings.ErrUnauthorized):
		h.logger.Warn("%s - Unauthorized", route)
		handlers.RespondUnauthorized(w, msgUnauthorized)

	case errors.Is(err, bookings.ErrInvalidStatus):
		h.logger.Warn("%s - Invalid status: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidStatus)

	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found", route)
		handlers.RespondNotFound(w, msgBookingNotFound)

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
