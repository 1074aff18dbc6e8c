package hotel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
	"github.com/m04kA/SMC-HotelContentService/internal/service/access"
	"github.com/m04kA/SMC-HotelContentService/internal/service/hotel/models"
	"github.com/m04kA/SMC-HotelContentService/pkg/coerce"
)

// Service сервис профиля отеля: публичные чтения, патч профиля,
// счётчик посетителей, смена админ-пароля и выгрузка бэкапа.
type Service struct {
	store  DocumentStore
	logger Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// PublicProfile возвращает профиль отеля без админ-пароля
func (s *Service) PublicProfile(ctx context.Context) (*models.PublicProfile, error) {
	doc, err := s.loadDoc(ctx, "PublicProfile")
	if err != nil {
		return nil, err
	}
	return models.FromDomainHotel(&doc.Hotel), nil
}

// PublicData возвращает весь документ для публичного чтения.
// Админ-пароль вырезается: он не должен попадать ни в один читающий ответ.
func (s *Service) PublicData(ctx context.Context) (*models.SiteData, error) {
	doc, err := s.loadDoc(ctx, "PublicData")
	if err != nil {
		return nil, err
	}
	return models.FromDomainDocument(doc), nil
}

// Patch применяет к профилю только разрешённые ключи из входных данных.
// Неизвестные ключи молча игнорируются. Каждое принятое значение приводится
// к строке и обрезается.
func (s *Service) Patch(ctx context.Context, adminPass string, raw map[string]any) (*models.PublicProfile, error) {
	doc, err := s.loadDoc(ctx, "Patch")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "Patch"); err != nil {
		return nil, err
	}

	for _, key := range domain.PatchableHotelKeys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		value := coerce.TrimmedString(v)
		switch key {
		case "name":
			doc.Hotel.Name = value
		case "tagline":
			doc.Hotel.Tagline = value
		case "description":
			doc.Hotel.Description = value
		case "about":
			doc.Hotel.About = value
		case "address":
			doc.Hotel.Address = value
		case "phone":
			doc.Hotel.Phone = value
		case "email":
			doc.Hotel.Email = value
		case "check_in":
			doc.Hotel.CheckIn = value
		case "check_out":
			doc.Hotel.CheckOut = value
		case "hero_image":
			doc.Hotel.HeroImage = value
		}
	}
	doc.Hotel.UpdatedAt = time.Now().UTC()

	if err := s.saveDoc(ctx, doc, "Patch"); err != nil {
		return nil, err
	}

	s.logger.Info("Patch: hotel profile updated")
	return models.FromDomainHotel(&doc.Hotel), nil
}

// SetVisitorCount устанавливает счётчик посетителей.
// Непарсящееся значение оставляет текущий счётчик; результат не бывает
// отрицательным.
func (s *Service) SetVisitorCount(ctx context.Context, adminPass string, raw any) (int, error) {
	doc, err := s.loadDoc(ctx, "SetVisitorCount")
	if err != nil {
		return 0, err
	}
	if err := s.authorize(doc, adminPass, "SetVisitorCount"); err != nil {
		return 0, err
	}

	count := coerce.Int(raw, doc.Hotel.VisitorCount)
	doc.Hotel.VisitorCount = coerce.ClampInt(count, 0)
	doc.Hotel.UpdatedAt = time.Now().UTC()

	if err := s.saveDoc(ctx, doc, "SetVisitorCount"); err != nil {
		return 0, err
	}

	s.logger.Info("SetVisitorCount: visitor_count=%d", doc.Hotel.VisitorCount)
	return doc.Hotel.VisitorCount, nil
}

// ChangePassword меняет админ-пароль. Новый пароль действует сразу:
// следующая авторизация со старым паролем получит отказ.
func (s *Service) ChangePassword(ctx context.Context, adminPass, newPassword string) error {
	doc, err := s.loadDoc(ctx, "ChangePassword")
	if err != nil {
		return err
	}
	if err := s.authorize(doc, adminPass, "ChangePassword"); err != nil {
		return err
	}

	next := strings.TrimSpace(newPassword)
	if utf8.RuneCountInString(next) < domain.MinPasswordLength {
		s.logger.Warn("ChangePassword: new password is too short")
		return fmt.Errorf("%w: minimum %d characters", ErrPasswordTooShort, domain.MinPasswordLength)
	}

	doc.Hotel.AdminPassword = next
	doc.Hotel.UpdatedAt = time.Now().UTC()

	if err := s.saveDoc(ctx, doc, "ChangePassword"); err != nil {
		return err
	}

	s.logger.Info("ChangePassword: admin password changed")
	return nil
}

// Backup возвращает полный документ для выгрузки файлом.
// Пароль входит в бэкап: это полная копия файла данных.
func (s *Service) Backup(ctx context.Context, adminPass string) ([]byte, error) {
	doc, err := s.loadDoc(ctx, "Backup")
	if err != nil {
		return nil, err
	}
	if err := s.authorize(doc, adminPass, "Backup"); err != nil {
		return nil, err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.logger.Error("Backup: failed to marshal document: %v", err)
		return nil, fmt.Errorf("%w: Backup - marshal document: %v", ErrInternal, err)
	}

	s.logger.Info("Backup: document exported (%d bytes)", len(raw))
	return raw, nil
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
