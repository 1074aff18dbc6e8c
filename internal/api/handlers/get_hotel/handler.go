package get_hotel

import (
	"net/http"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
)

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

// Handle GET /api/hotel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.PublicProfile(r.Context())
	if err != nil {
		h.logger.Error("GET /hotel - Failed to load hotel profile: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
