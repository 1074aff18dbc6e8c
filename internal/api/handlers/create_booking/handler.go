package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelContentService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNamePhoneRequired  = "имя и телефон обязательны"
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

// Handle POST /api/booking
// Публичная форма заявки: поля принимаются в свободном виде и нормализуются
// сервисом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := handlers.DecodeJSON(r, &raw); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.Create(r.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrValidation):
			h.logger.Warn("POST /booking - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgNamePhoneRequired)

		default:
			h.logger.Error("POST /booking - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking - Booking created: id=%s", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, CreateBookingResponse{OK: true, Booking: booking})
}
