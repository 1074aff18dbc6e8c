package hotel

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

const testPassword = "secret123"

type memStore struct {
	doc     *domain.Document
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load(ctx context.Context) (*domain.Document, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return cloneDoc(m.doc), nil
}

func (m *memStore) Save(ctx context.Context, doc *domain.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.doc = cloneDoc(doc)
	m.saves++
	return nil
}

func cloneDoc(doc *domain.Document) *domain.Document {
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var out domain.Document
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(doc *domain.Document) (*Service, *memStore) {
	if doc == nil {
		doc = domain.DefaultDocument()
	}
	doc.Hotel.AdminPassword = testPassword
	store := &memStore{doc: doc}
	return NewService(store, nopLogger{}), store
}

func TestPatch_AppliesOnlyAllowedKeys(t *testing.T) {
	svc, store := newTestService(nil)

	profile, err := svc.Patch(context.Background(), testPassword, map[string]any{
		"name":           "  Халачи Резорт  ",
		"phone":          "+7 900 000-00-00",
		"check_in":       "15:00",
		"admin_password": "hacked",   // не в списке разрешённых ключей
		"visitor_count":  9999,       // меняется только отдельной операцией
		"unknown_key":    "whatever", // молча игнорируется
	})
	require.NoError(t, err)

	assert.Equal(t, "Халачи Резорт", profile.Name)
	assert.Equal(t, "+7 900 000-00-00", profile.Phone)
	assert.Equal(t, "15:00", profile.CheckIn)
	assert.Equal(t, 0, profile.VisitorCount)
	assert.Equal(t, testPassword, store.doc.Hotel.AdminPassword)
	assert.False(t, profile.UpdatedAt.IsZero())
}

func TestPatch_MissingKeysStayUntouched(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Hotel.Tagline = "Гостиница у моря"
	svc, store := newTestService(doc)

	_, err := svc.Patch(context.Background(), testPassword, map[string]any{
		"name": "Новое имя",
	})
	require.NoError(t, err)

	assert.Equal(t, "Новое имя", store.doc.Hotel.Name)
	assert.Equal(t, "Гостиница у моря", store.doc.Hotel.Tagline)
}

func TestSetVisitorCount(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Hotel.VisitorCount = 120
	svc, _ := newTestService(doc)
	ctx := context.Background()

	count, err := svc.SetVisitorCount(ctx, testPassword, float64(150))
	require.NoError(t, err)
	assert.Equal(t, 150, count)

	// Строка с числом парсится
	count, err = svc.SetVisitorCount(ctx, testPassword, "200")
	require.NoError(t, err)
	assert.Equal(t, 200, count)

	// Непарсящееся значение оставляет текущий счётчик
	count, err = svc.SetVisitorCount(ctx, testPassword, "не число")
	require.NoError(t, err)
	assert.Equal(t, 200, count)

	// Отрицательное значение прижимается к нулю
	count, err = svc.SetVisitorCount(ctx, testPassword, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestChangePassword(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()

	// 5 символов — мало
	err := svc.ChangePassword(ctx, testPassword, "12345")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.Equal(t, testPassword, store.doc.Hotel.AdminPassword)

	// Пробелы вокруг не считаются
	err = svc.ChangePassword(ctx, testPassword, "  1234  ")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	// Длина считается в рунах, не в байтах
	require.NoError(t, svc.ChangePassword(ctx, testPassword, "пароль"))
	assert.Equal(t, "пароль", store.doc.Hotel.AdminPassword)

	// Старый пароль сразу перестаёт действовать
	err = svc.ChangePassword(ctx, testPassword, "another-one")
	assert.ErrorIs(t, err, ErrUnauthorized)
	require.NoError(t, svc.ChangePassword(ctx, "пароль", "another-one"))
}

func TestPublicData_StripsAdminPassword(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Rooms = []domain.Room{{ID: "r1", Name: "Стандарт"}}
	svc, _ := newTestService(doc)

	data, err := svc.PublicData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Халачи", data.Hotel.Name)
	assert.Len(t, data.Rooms, 1)

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "admin_password")
	assert.NotContains(t, string(raw), testPassword)
}

func TestPublicProfile_StripsAdminPassword(t *testing.T) {
	svc, _ := newTestService(nil)

	profile, err := svc.PublicProfile(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "admin_password")
	assert.NotContains(t, string(raw), testPassword)
}

func TestBackup_IsFullDocumentCopy(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Bookings = []domain.Booking{{ID: "b1", Name: "Анна", Status: domain.StatusNew}}
	svc, _ := newTestService(doc)
	ctx := context.Background()

	_, err := svc.Backup(ctx, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	raw, err := svc.Backup(ctx, testPassword)
	require.NoError(t, err)

	// Бэкап — полная копия, включая пароль
	assert.True(t, strings.Contains(string(raw), testPassword))

	var restored domain.Document
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, testPassword, restored.Hotel.AdminPassword)
	require.Len(t, restored.Bookings, 1)
	assert.Equal(t, "b1", restored.Bookings[0].ID)
}
