package manage_hotel

import "github.com/m04kA/SMC-HotelContentService/internal/service/hotel/models"

// PatchResponse HTTP response model
type PatchResponse struct {
	OK    bool                  `json:"ok"`
	Hotel *models.PublicProfile `json:"hotel"`
}

// VisitorCountRequest HTTP request model.
// Count принимается как любое JSON-значение и приводится сервисом.
type VisitorCountRequest struct {
	Count any `json:"count"`
}

// VisitorCountResponse HTTP response model
type VisitorCountResponse struct {
	OK           bool `json:"ok"`
	VisitorCount int  `json:"visitor_count"`
}

// ChangePasswordRequest HTTP request model
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ChangePasswordResponse HTTP response model
type ChangePasswordResponse struct {
	OK bool `json:"ok"`
}
