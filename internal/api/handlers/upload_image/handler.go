package upload_image

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelContentService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelContentService/internal/infra/uploads"
)

const (
	msgNoFile       = "файл не передан"
	msgNotImage     = "допускаются только изображения"
	msgFileTooLarge = "файл слишком большой"
)

// formMemoryLimit память под multipart-парсинг; остальное уходит во временные файлы
const formMemoryLimit = 4 << 20

type Handler struct {
	saver  ImageSaver
	logger Logger
}

func NewHandler(saver ImageSaver, logger Logger) *Handler {
	return &Handler{
		saver:  saver,
		logger: logger,
	}
}

// Handle POST /api/upload
// Multipart-форма с полем image; в ответе URL сохранённого файла.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(formMemoryLimit); err != nil {
		h.logger.Warn("POST /upload - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgNoFile)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.logger.Warn("POST /upload - No file in request: %v", err)
		handlers.RespondBadRequest(w, msgNoFile)
		return
	}
	defer file.Close()

	url, err := h.saver.SaveImage(r.Context(), file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrNotImage):
			h.logger.Warn("POST /upload - Rejected non-image: %s", header.Filename)
			handlers.RespondBadRequest(w, msgNotImage)

		case errors.Is(err, uploads.ErrTooLarge):
			h.logger.Warn("POST /upload - Rejected oversized file: %s", header.Filename)
			handlers.RespondBadRequest(w, msgFileTooLarge)

		case errors.Is(err, uploads.ErrEmpty):
			h.logger.Warn("POST /upload - Empty file: %s", header.Filename)
			handlers.RespondBadRequest(w, msgNoFile)

		default:
			h.logger.Error("POST /upload - Failed to save image: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /upload - Image stored at %s", url)
	handlers.RespondJSON(w, http.StatusOK, UploadResponse{OK: true, URL: url})
}
