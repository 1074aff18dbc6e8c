package create_booking

import "github.com/m04kA/SMC-HotelContentService/internal/domain"

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	OK      bool            `json:"ok"`
	Booking *domain.Booking `json:"booking"`
}
