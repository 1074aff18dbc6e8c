package manage_rooms

import "github.com/m04kA/SMC-HotelContentService/internal/domain"

// UpsertRoomResponse HTTP response model
type UpsertRoomResponse struct {
	OK   bool         `json:"ok"`
	Room *domain.Room `json:"room"`
}

// DeleteRoomResponse HTTP response model
type DeleteRoomResponse struct {
	OK bool `json:"ok"`
}
