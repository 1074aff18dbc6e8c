package get_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
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

// Handle GET /api/rooms
// Номера в порядке отображения (по sort_order).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.SortedRooms(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to load rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rooms)
}
