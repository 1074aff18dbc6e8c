package get_tours

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

// Handle GET /api/tours
// Экскурсии в порядке отображения (по sort_order).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tours, err := h.service.SortedTours(r.Context())
	if err != nil {
		h.logger.Error("GET /tours - Failed to load tours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, tours)
}
