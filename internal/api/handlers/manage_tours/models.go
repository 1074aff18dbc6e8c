package manage_tours

import "github.com/m04kA/SMC-HotelContentService/internal/domain"

// UpsertTourResponse HTTP response model
type UpsertTourResponse struct {
	OK   bool         `json:"ok"`
	Tour *domain.Tour `json:"tour"`
}

// DeleteTourResponse HTTP response model
type DeleteTourResponse struct {
	OK bool `json:"ok"`
}
