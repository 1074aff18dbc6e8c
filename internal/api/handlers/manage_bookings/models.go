package manage_bookings

import "github.com/m04kA/SMC-HotelContentService/internal/domain"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	OK      bool            `json:"ok"`
	Booking *domain.Booking `json:"booking"`
}
