package get_data

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

// Handle GET /api/data
// Полный документ без админ-пароля.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.PublicData(r.Context())
	if err != nil {
		h.logger.Error("GET /data - Failed to load site data: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, data)
}
