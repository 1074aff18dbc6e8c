package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
	"github.com/m04kA/SMC-HotelContentService/internal/service/access"
)

// Service сервис каталога: номера, экскурсии и категории.
// Один и тот же механизм upsert/delete по id, инстанцированный для трёх
// коллекций; различается только нормализация полей.
type Service struct {
	store  DocumentStore
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// --- Публичные чтения (порядок отображения: по sort_order, стабильно) ---

// SortedRooms возвращает номера для публичного сайта
func (s *Service) SortedRooms(ctx context.Context) ([]domain.Room, error) {
	doc, err := s.loadDoc(ctx, "SortedRooms")
	if err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, len(doc.Rooms))
	copy(rooms, doc.Rooms)
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].SortOrder < rooms[j].SortOrder })
	return rooms, nil
}

// SortedTours возвращает экскурсии для публичного сайта
func (s *Service) SortedTours(ctx context.Context) ([]domain.Tour, error) {
	doc, err := s.loadDoc(ctx, "SortedTours")
	if err != nil {
		return nil, err
	}

	tours := make([]domain.Tour, len(doc.Tours))
	copy(tours, doc.Tours)
	sort.SliceStable(tours, func(i, j int) bool { return tours[i].SortOrder < tours[j].SortOrder })
	return tours, nil
}

// --- Номера ---

// ListRooms возвращает номера в порядке хранения (для админки)
func (s *Service) ListRooms(ctx context.Context, adminPass string) ([]domain.Room, error) {
	doc, err := s.loadDoc(ctx, "ListRooms")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "ListRooms"); err != nil {
		return nil, err
	}
	return doc.Rooms, nil
}

// UpsertRoom создает или заменяет номер по id.
// При пустом id генерируется новый; при совпадении id существующий номер
// заменяется на месте с сохранением позиции.
func (s *Service) UpsertRoom(ctx context.Context, adminPass string, raw map[string]any) (*domain.Room, error) {
	doc, err := s.loadDoc(ctx, "UpsertRoom")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "UpsertRoom"); err != nil {
		return nil, err
	}

	room := normalizeRoom(raw)
	if room.Name == "" {
		s.logger.Warn("UpsertRoom: room name is empty")
		return nil, fmt.Errorf("%w: room name is required", ErrValidation)
	}

	doc.Rooms = upsertByID(doc.Rooms, room, func(r domain.Room) string { return r.ID })
	if err := s.saveDoc(ctx, doc, "UpsertRoom"); err != nil {
		return nil, err
	}

	s.logger.Info("UpsertRoom: saved room id=%s name=%q", room.ID, room.Name)
	return &room, nil
}

// DeleteRoom удаляет номер по id; отсутствие номера — не ошибка
func (s *Service) DeleteRoom(ctx context.Context, adminPass string, id string) error {
	doc, err := s.loadDoc(ctx, "DeleteRoom")
	if err != nil {
		return err
	}
	if err := s.authorize(doc, adminPass, "DeleteRoom"); err != nil {
		return err
	}

	doc.Rooms = deleteByID(doc.Rooms, id, func(r domain.Room) string { return r.ID })
	if err := s.saveDoc(ctx, doc, "DeleteRoom"); err != nil {
		return err
	}

	s.logger.Info("DeleteRoom: deleted room id=%s", id)
	return nil
}

// --- Экскурсии ---

// ListTours возвращает экскурсии в порядке хранения (для админки)
func (s *Service) ListTours(ctx context.Context, adminPass string) ([]domain.Tour, error) {
	doc, err := s.loadDoc(ctx, "ListTours")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "ListTours"); err != nil {
		return nil, err
	}
	return doc.Tours, nil
}

// UpsertTour создает или заменяет экскурсию по id.
// Ссылка на категорию не проверяется по коллекции категорий.
func (s *Service) UpsertTour(ctx context.Context, adminPass string, raw map[string]any) (*domain.Tour, error) {
	doc, err := s.loadDoc(ctx, "UpsertTour")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "UpsertTour"); err != nil {
		return nil, err
	}

	tour := normalizeTour(raw)
	if tour.Title == "" {
		s.logger.Warn("UpsertTour: tour title is empty")
		return nil, fmt.Errorf("%w: tour title is required", ErrValidation)
	}

	doc.Tours = upsertByID(doc.Tours, tour, func(t domain.Tour) string { return t.ID })
	if err := s.saveDoc(ctx, doc, "UpsertTour"); err != nil {
		return nil, err
	}

	s.logger.Info("UpsertTour: saved tour id=%s title=%q", tour.ID, tour.Title)
	return &tour, nil
}

// DeleteTour удаляет экскурсию по id; отсутствие экскурсии — не ошибка
func (s *Service) DeleteTour(ctx context.Context, adminPass string, id string) error {
	doc, err := s.loadDoc(ctx, "DeleteTour")
	if err != nil {
		return err
	}
	if err := s.authorize(doc, adminPass, "DeleteTour"); err != nil {
		return err
	}

	doc.Tours = deleteByID(doc.Tours, id, func(t domain.Tour) string { return t.ID })
	if err := s.saveDoc(ctx, doc, "DeleteTour"); err != nil {
		return err
	}

	s.logger.Info("DeleteTour: deleted tour id=%s", id)
	return nil
}

// --- Категории ---

// ListCategories возвращает категории в порядке хранения (для админки)
func (s *Service) ListCategories(ctx context.Context, adminPass string) ([]domain.Category, error) {
	doc, err := s.loadDoc(ctx, "ListCategories")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "ListCategories"); err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

// UpsertCategory создает или заменяет категорию по id.
// Удаление категории не трогает экскурсии, которые на неё ссылаются.
func (s *Service) UpsertCategory(ctx context.Context, adminPass string, raw map[string]any) (*domain.Category, error) {
	doc, err := s.loadDoc(ctx, "UpsertCategory")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "UpsertCategory"); err != nil {
		return nil, err
	}

	category := normalizeCategory(raw)
	if category.Name == "" {
		s.logger.Warn("UpsertCategory: category name is empty")
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	doc.Categories = upsertByID(doc.Categories, category, func(c domain.Category) string { return c.ID })
	if err := s.saveDoc(ctx, doc, "UpsertCategory"); err != nil {
		return nil, err
	}

	s.logger.Info("UpsertCategory: saved category id=%s name=%q", category.ID, category.Name)
	return &category, nil
}

// DeleteCategory удаляет категорию по id; отсутствие категории — не ошибка
func (s *Service) DeleteCategory(ctx context.Context, adminPass string, id string) error {
	doc, err := s.loadDoc(ctx, "DeleteCategory")
	if err != nil {
		return err
	}
	if err := s.authorize(doc, adminPass, "DeleteCategory"); err != nil {
		return err
	}

	doc.Categories = deleteByID(doc.Categories, id, func(c domain.Category) string { return c.ID })
	if err := s.saveDoc(ctx, doc, "DeleteCategory"); err != nil {
		return err
	}

	s.logger.Info("DeleteCategory: deleted category id=%s", id)
	return nil
}

// --- Вспомогательные ---

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
