package bookings

import (
	"context"
	"testing"
	"time"

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

func TestCreate_NewBookingGoesFirst(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Bookings = []domain.Booking{{ID: "old", Name: "Старая", Status: domain.StatusDone}}
	doc.Analytics.Bookings = 1
	svc, store := newTestService(doc)

	booking, err := svc.Create(context.Background(), map[string]any{
		"name":  "  Анна  ",
		"phone": "+7 900 000-00-00",
		"email": "ana@example.com",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Анна", booking.Name)
	assert.Equal(t, domain.StatusNew, booking.Status)
	assert.Equal(t, domain.DefaultGuestsCount, booking.GuestsCount)
	assert.WithinDuration(t, time.Now().UTC(), booking.CreatedAt, 5*time.Second)

	// Новая заявка первой, старые следом; счётчик аналитики вырос
	require.Len(t, store.doc.Bookings, 2)
	assert.Equal(t, booking.ID, store.doc.Bookings[0].ID)
	assert.Equal(t, "old", store.doc.Bookings[1].ID)
	assert.Equal(t, 2, store.doc.Analytics.Bookings)
}

func TestCreate_NamePhoneRequired(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()

	cases := []map[string]any{
		{},
		{"name": "Анна"},
		{"phone": "+7 900 000-00-00"},
		{"name": "   ", "phone": "+7 900 000-00-00"},
		{"name": "Анна", "phone": "   "},
	}
	for _, raw := range cases {
		_, err := svc.Create(ctx, raw)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Equal(t, 0, store.saves)
}

func TestCreate_GuestsCountClamped(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	booking, err := svc.Create(ctx, map[string]any{
		"name": "Анна", "phone": "1", "guests_count": 0,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MinGuestsCount, booking.GuestsCount)

	booking, err = svc.Create(ctx, map[string]any{
		"name": "Анна", "phone": "1", "guests_count": "4",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, booking.GuestsCount)

	// Непарсящееся значение даёт значение по умолчанию
	booking, err = svc.Create(ctx, map[string]any{
		"name": "Анна", "phone": "1", "guests_count": "много",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGuestsCount, booking.GuestsCount)
}

func TestUpdateStatus_ChangesOnlyStatus(t *testing.T) {
	doc := domain.DefaultDocument()
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	doc.Bookings = []domain.Booking{{
		ID: "b1", Name: "Анна", Phone: "+7 900 000-00-00",
		GuestsCount: 3, Status: domain.StatusNew, CreatedAt: created,
	}}
	svc, store := newTestService(doc)

	booking, err := svc.UpdateStatus(context.Background(), testPassword, "b1", "confirmed")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Equal(t, "Анна", booking.Name)
	assert.Equal(t, 3, booking.GuestsCount)
	assert.Equal(t, created, booking.CreatedAt)
	assert.Equal(t, domain.StatusConfirmed, store.doc.Bookings[0].Status)
}

func TestUpdateStatus_AllEnumValues(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Bookings = []domain.Booking{{ID: "b1", Name: "Анна", Status: domain.StatusNew}}
	svc, _ := newTestService(doc)
	ctx := context.Background()

	for _, status := range domain.AllStatuses {
		booking, err := svc.UpdateStatus(ctx, testPassword, "b1", string(status))
		require.NoError(t, err)
		assert.Equal(t, status, booking.Status)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Bookings = []domain.Booking{{ID: "b1", Status: domain.StatusNew}}
	svc, store := newTestService(doc)

	_, err := svc.UpdateStatus(context.Background(), testPassword, "b1", "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, 0, store.saves)
	assert.Equal(t, domain.StatusNew, store.doc.Bookings[0].Status)
}

func TestUpdateStatus_BookingNotFound(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.UpdateStatus(context.Background(), testPassword, "no-such-id", "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListAndUpdateRequirePassword(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Bookings = []domain.Booking{{ID: "b1", Status: domain.StatusNew}}
	svc, _ := newTestService(doc)
	ctx := context.Background()

	_, err := svc.List(ctx, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.UpdateStatus(ctx, "", "b1", "confirmed")
	assert.ErrorIs(t, err, ErrUnauthorized)

	list, err := svc.List(ctx, testPassword)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
