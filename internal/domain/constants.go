package domain

// Default values applied during normalization
const (
	DefaultCurrency      = "₽"
	DefaultCategoryIcon  = "✨"
	DefaultTourCategory  = "all"
	DefaultMaxGuests     = 2
	DefaultGuestsCount   = 1
	DefaultAdminPassword = "admin123"
)

// Business validation constants
const (
	MinMaxGuests      = 1
	MinGuestsCount    = 1
	MinPasswordLength = 6
)

// PatchableHotelKeys ключи профиля отеля, которые разрешено менять через патч.
// Все остальные ключи во входных данных молча игнорируются.
var PatchableHotelKeys = []string{
	"name",
	"tagline",
	"description",
	"about",
	"address",
	"phone",
	"email",
	"check_in",
	"check_out",
	"hero_image",
}
