package get_backup

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelContentService/internal/service/hotel"
)

const msgUnauthorized = "неверный админ-пароль"

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

// Handle GET /api/admin/backup
// Полная копия файла данных для скачивания (пароль включён).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw, err := h.service.Backup(r.Context(), handlers.AdminPassword(r))
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrUnauthorized):
			h.logger.Warn("GET /admin/backup - Unauthorized")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("GET /admin/backup - Failed to export backup: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	fileName := fmt.Sprintf("backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)

	h.logger.Info("GET /admin/backup - Backup exported (%d bytes)", len(raw))
}
