package domain

import "time"

// Document is the root aggregate: the entire persisted state of the site.
// Хранится одним JSON-файлом и целиком перезаписывается при каждой мутации.
type Document struct {
	Hotel      Hotel      `json:"hotel"`
	Rooms      []Room     `json:"rooms"`
	Tours      []Tour     `json:"tours"`
	Categories []Category `json:"categories"`
	Bookings   []Booking  `json:"bookings"`
	Analytics  Analytics  `json:"analytics"`
}

// Hotel is the singleton hotel profile.
// AdminPassword never leaves the server in public read responses.
type Hotel struct {
	Name          string    `json:"name"`
	Tagline       string    `json:"tagline"`
	Description   string    `json:"description"`
	About         string    `json:"about"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	CheckIn       string    `json:"check_in"`  // "14:00"
	CheckOut      string    `json:"check_out"` // "12:00"
	HeroImage     string    `json:"hero_image"`
	VisitorCount  int       `json:"visitor_count"`
	AdminPassword string    `json:"admin_password"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Analytics running site counters.
type Analytics struct {
	Bookings  int       `json:"bookings"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultDocument возвращает начальное состояние для первого запуска,
// когда файла данных ещё нет.
func DefaultDocument() *Document {
	return &Document{
		Hotel: Hotel{
			Name:          "Халачи",
			Tagline:       "Гостиница у моря",
			CheckIn:       "14:00",
			CheckOut:      "12:00",
			AdminPassword: DefaultAdminPassword,
		},
		Rooms:      []Room{},
		Tours:      []Tour{},
		Categories: []Category{},
		Bookings:   []Booking{},
	}
}
