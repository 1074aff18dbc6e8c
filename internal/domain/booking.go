package domain

import "time"

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusNew        BookingStatus = "new"
	StatusInProgress BookingStatus = "in_progress"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusDone       BookingStatus = "done"
)

// AllStatuses полный список допустимых статусов заявки
var AllStatuses = []BookingStatus{
	StatusNew,
	StatusInProgress,
	StatusConfirmed,
	StatusCancelled,
	StatusDone,
}

// Valid returns true if the status is one of the fixed enum values
func (s BookingStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Booking represents a booking request left through the public site.
// ID, CreatedAt и начальный Status назначаются сервером и неизменяемы;
// после создания меняться может только Status.
type Booking struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	RoomType    string        `json:"room_type"` // свободный текст, не проверяется по Room.ID
	TourType    string        `json:"tour_type"`
	CheckIn     string        `json:"check_in"`
	CheckOut    string        `json:"check_out"`
	GuestsCount int           `json:"guests_count"`
	Notes       string        `json:"notes"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// IsOpen returns true if the booking still needs attention from the admin
func (b *Booking) IsOpen() bool {
	return b.Status == StatusNew || b.Status == StatusInProgress
}

// IsClosed returns true if the booking reached a terminal state
func (b *Booking) IsClosed() bool {
	return b.Status == StatusCancelled || b.Status == StatusDone
}
