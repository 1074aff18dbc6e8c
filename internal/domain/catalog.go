package domain

// Room represents a hotel room type shown on the public site.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ShortName   string   `json:"short_name"`
	Description string   `json:"description"`
	PriceFrom   float64  `json:"price_from"`
	Currency    string   `json:"currency"`
	Size        string   `json:"size"`
	Beds        string   `json:"beds"`
	MaxGuests   int      `json:"max_guests"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
	Popular     bool     `json:"popular"`
	SortOrder   int      `json:"sort_order"`
}

// Tour represents an excursion offer.
// Category ссылается на Category.ID, но ссылка не валидируется:
// удаление категории оставляет туры с "висячей" ссылкой (поведение исходной системы).
type Tour struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ShortDesc   string   `json:"short_desc"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Duration    string   `json:"duration"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
	Schedule    []string `json:"schedule"`
	Images      []string `json:"images"`
	SortOrder   int      `json:"sort_order"`
}

// Category groups tours on the public site.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}
