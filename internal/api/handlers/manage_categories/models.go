package manage_categories

import "github.com/m04kA/SMC-HotelContentService/internal/domain"

// UpsertCategoryResponse HTTP response model
type UpsertCategoryResponse struct {
	OK       bool             `json:"ok"`
	Category *domain.Category `json:"category"`
}

// DeleteCategoryResponse HTTP response model
type DeleteCategoryResponse struct {
	OK bool `json:"ok"`
}
