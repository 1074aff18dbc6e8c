package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
	"github.com/m04kA/SMC-HotelContentService/internal/service/access"
	"github.com/m04kA/SMC-HotelContentService/pkg/coerce"
)

// Service журнал заявок на бронирование.
// Создание — только добавление: новая заявка встаёт в начало списка, так что
// журнал читается от новых к старым. Вместе с заявкой увеличивается счётчик
// analytics.bookings.
type Service struct {
	store  DocumentStore
	logger Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Create создает новую заявку из публичной формы.
// id, created_at и начальный статус "new" назначаются сервером.
func (s *Service) Create(ctx context.Context, raw map[string]any) (*domain.Booking, error) {
	name := coerce.TrimmedString(raw["name"])
	phone := coerce.TrimmedString(raw["phone"])
	if name == "" || phone == "" {
		s.logger.Warn("Create: name or phone is empty")
		return nil, fmt.Errorf("%w: name and phone are required", ErrValidation)
	}

	doc, err := s.loadDoc(ctx, "Create")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := domain.Booking{
		ID:          uuid.NewString(),
		Name:        name,
		Phone:       phone,
		Email:       coerce.TrimmedString(raw["email"]),
		RoomType:    coerce.TrimmedString(raw["room_type"]),
		TourType:    coerce.TrimmedString(raw["tour_type"]),
		CheckIn:     coerce.TrimmedString(raw["check_in"]),
		CheckOut:    coerce.TrimmedString(raw["check_out"]),
		GuestsCount: coerce.ClampInt(coerce.Int(raw["guests_count"], domain.DefaultGuestsCount), domain.MinGuestsCount),
		Notes:       coerce.TrimmedString(raw["notes"]),
		Status:      domain.StatusNew,
		CreatedAt:   now,
	}

	// Новая заявка — в начало, журнал хранится от новых к старым
	doc.Bookings = append([]domain.Booking{booking}, doc.Bookings...)
	doc.Analytics.Bookings++
	doc.Analytics.UpdatedAt = now

	if err := s.saveDoc(ctx, doc, "Create"); err != nil {
		return nil, err
	}

	s.logger.Info("Create: booking created id=%s name=%q", booking.ID, booking.Name)
	return &booking, nil
}

// List возвращает все заявки в порядке хранения (новые первыми)
func (s *Service) List(ctx context.Context, adminPass string) ([]domain.Booking, error) {
	doc, err := s.loadDoc(ctx, "List")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "List"); err != nil {
		return nil, err
	}
	return doc.Bookings, nil
}

// UpdateStatus меняет статус заявки. Меняется только поле status,
// остальные поля заявки остаются нетронутыми.
func (s *Service) UpdateStatus(ctx context.Context, adminPass, id, status string) (*domain.Booking, error) {
	doc, err := s.loadDoc(ctx, "UpdateStatus")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "UpdateStatus"); err != nil {
		return nil, err
	}

	newStatus := domain.BookingStatus(strings.TrimSpace(status))
	if !newStatus.Valid() {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	for i := range doc.Bookings {
		if doc.Bookings[i].ID != id {
			continue
		}
		doc.Bookings[i].Status = newStatus
		if err := s.saveDoc(ctx, doc, "UpdateStatus"); err != nil {
			return nil, err
		}
		s.logger.Info("UpdateStatus: booking id=%s status=%s", id, newStatus)
		return &doc.Bookings[i], nil
	}

	s.logger.Warn("UpdateStatus: booking id=%s not found", id)
	return nil, ErrBookingNotFound
}

func (s *Service) loadDoc(ctx context.Context, op string) (*domain.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("%s: failed to load document: %v", op, err)
		return nil, fmt.Errorf("%w: %s - load document: %v", ErrInternal, op, err)
	}
	return doc, nil
}

func (s *Service) saveDoc(ctx context.Context, doc *domain.Document, op string) error {
	if err := s.store.Save(ctx, doc); err != nil {
		s.logger.Error("%s: failed to save document: %v", op, err)
		return fmt.Errorf("%w: %s - save document: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) authorize(doc *domain.Document, adminPass, op string) error {
	if err := access.Authorize(doc, adminPass); err != nil {
		if errors.Is(err, access.ErrUnauthorized) {
			s.logger.Warn("%s: unauthorized request", op)
			return ErrUnauthorized
		}
		return fmt.Errorf("%w: %s - authorize: %v", ErrInternal, op, err)
	}
	return nil
}
