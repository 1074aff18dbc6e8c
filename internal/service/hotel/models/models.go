package models

import (
	"time"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

// PublicProfile профиль отеля без админ-пароля.
// Единственная модель, ради которой существует конвертация: admin_password
// никогда не должен попадать в публичные ответы.
type PublicProfile struct {
	Name         string    `json:"name"`
	Tagline      string    `json:"tagline"`
	Description  string    `json:"description"`
	About        string    `json:"about"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	HeroImage    string    `json:"hero_image"`
	VisitorCount int       `json:"visitor_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SiteData полный документ для публичного чтения (без админ-пароля)
type SiteData struct {
	Hotel      PublicProfile     `json:"hotel"`
	Rooms      []domain.Room     `json:"rooms"`
	Tours      []domain.Tour     `json:"tours"`
	Categories []domain.Category `json:"categories"`
	Bookings   []domain.Booking  `json:"bookings"`
	Analytics  domain.Analytics  `json:"analytics"`
}

// FromDomainHotel конвертирует профиль отеля в публичную модель
func FromDomainHotel(h *domain.Hotel) *PublicProfile {
	if h == nil {
		return nil
	}
	return &PublicProfile{
		Name:         h.Name,
		Tagline:      h.Tagline,
		Description:  h.Description,
		About:        h.About,
		Address:      h.Address,
		Phone:        h.Phone,
		Email:        h.Email,
		CheckIn:      h.CheckIn,
		CheckOut:     h.CheckOut,
		HeroImage:    h.HeroImage,
		VisitorCount: h.VisitorCount,
		UpdatedAt:    h.UpdatedAt,
	}
}

// FromDomainDocument конвертирует документ в публичную модель
func FromDomainDocument(doc *domain.Document) *SiteData {
	if doc == nil {
		return nil
	}
	return &SiteData{
		Hotel:      *FromDomainHotel(&doc.Hotel),
		Rooms:      doc.Rooms,
		Tours:      doc.Tours,
		Categories: doc.Categories,
		Bookings:   doc.Bookings,
		Analytics:  doc.Analytics,
	}
}
