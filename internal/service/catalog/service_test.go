package catalog

import (
	"context"
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

const testPassword = "secret123"

// memStore хранит документ в памяти и отдаёт глубокие копии,
// как это делает файловое хранилище
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

func TestUpsertRoom_CreateGeneratesID(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()

	room, err := svc.UpsertRoom(ctx, testPassword, map[string]any{
		"name":       "  Люкс  ",
		"price_from": "4500",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "Люкс", room.Name)
	assert.Equal(t, "Люкс", room.ShortName) // short_name наследует name
	assert.Equal(t, 4500.0, room.PriceFrom)
	assert.Equal(t, domain.DefaultCurrency, room.Currency)
	assert.Equal(t, domain.DefaultMaxGuests, room.MaxGuests)
	assert.NotNil(t, room.Features)
	assert.NotNil(t, room.Images)

	require.Len(t, store.doc.Rooms, 1)
	assert.Equal(t, room.ID, store.doc.Rooms[0].ID)
}

func TestUpsertRoom_ReplaceInPlace(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Rooms = []domain.Room{
		{ID: "a", Name: "Первый"},
		{ID: "b", Name: "Второй"},
		{ID: "c", Name: "Третий"},
	}
	svc, store := newTestService(doc)

	room, err := svc.UpsertRoom(context.Background(), testPassword, map[string]any{
		"id":   "b",
		"name": "Второй (обновлён)",
	})
	require.NoError(t, err)
	assert.Equal(t, "b", room.ID)

	// Длина и позиции сохраняются, заменён только элемент с совпавшим id
	require.Len(t, store.doc.Rooms, 3)
	assert.Equal(t, "a", store.doc.Rooms[0].ID)
	assert.Equal(t, "b", store.doc.Rooms[1].ID)
	assert.Equal(t, "Второй (обновлён)", store.doc.Rooms[1].Name)
	assert.Equal(t, "c", store.doc.Rooms[2].ID)
}

func TestUpsertRoom_NegativePriceClampedToZero(t *testing.T) {
	svc, _ := newTestService(nil)

	room, err := svc.UpsertRoom(context.Background(), testPassword, map[string]any{
		"name":       "Эконом",
		"price_from": -5,
		"max_guests": 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, room.PriceFrom)
	assert.Equal(t, domain.MinMaxGuests, room.MaxGuests)
}

func TestUpsertRoom_EmptyNameRejected(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Rooms = []domain.Room{{ID: "a", Name: "Существующий"}}
	svc, store := newTestService(doc)

	_, err := svc.UpsertRoom(context.Background(), testPassword, map[string]any{
		"name": "   ",
	})
	assert.ErrorIs(t, err, ErrValidation)

	// Коллекция не изменилась и ничего не сохранялось
	assert.Equal(t, 0, store.saves)
	require.Len(t, store.doc.Rooms, 1)
}

func TestUpsertRoom_WrongPassword(t *testing.T) {
	svc, store := newTestService(nil)

	_, err := svc.UpsertRoom(context.Background(), "wrong", map[string]any{"name": "Люкс"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 0, store.saves)
}

func TestDeleteRoom_Idempotent(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Rooms = []domain.Room{{ID: "a", Name: "Первый"}, {ID: "b", Name: "Второй"}}
	svc, store := newTestService(doc)
	ctx := context.Background()

	require.NoError(t, svc.DeleteRoom(ctx, testPassword, "a"))
	require.Len(t, store.doc.Rooms, 1)
	assert.Equal(t, "b", store.doc.Rooms[0].ID)

	// Повторное удаление того же id — не ошибка
	require.NoError(t, svc.DeleteRoom(ctx, testPassword, "a"))
	require.Len(t, store.doc.Rooms, 1)

	// Несуществующий id — тоже не ошибка
	require.NoError(t, svc.DeleteRoom(ctx, testPassword, "no-such-id"))
	require.Len(t, store.doc.Rooms, 1)
}

func TestSortedRooms_StableOrder(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Rooms = []domain.Room{
		{ID: "late", Name: "Поздний", SortOrder: 10},
		{ID: "first-equal", Name: "Первый из равных", SortOrder: 1},
		{ID: "second-equal", Name: "Второй из равных", SortOrder: 1},
		{ID: "early", Name: "Ранний", SortOrder: 0},
	}
	svc, store := newTestService(doc)

	rooms, err := svc.SortedRooms(context.Background())
	require.NoError(t, err)

	require.Len(t, rooms, 4)
	assert.Equal(t, "early", rooms[0].ID)
	// При равном sort_order сохраняется порядок хранения
	assert.Equal(t, "first-equal", rooms[1].ID)
	assert.Equal(t, "second-equal", rooms[2].ID)
	assert.Equal(t, "late", rooms[3].ID)

	// Порядок хранения не тронут
	assert.Equal(t, "late", store.doc.Rooms[0].ID)
}

func TestListRooms_StorageOrderRequiresPassword(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Rooms = []domain.Room{
		{ID: "z", SortOrder: 5},
		{ID: "a", SortOrder: 1},
	}
	svc, _ := newTestService(doc)
	ctx := context.Background()

	_, err := svc.ListRooms(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	rooms, err := svc.ListRooms(ctx, testPassword)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "z", rooms[0].ID) // порядок хранения, без сортировки
}

func TestUpsertTour_Defaults(t *testing.T) {
	svc, _ := newTestService(nil)

	tour, err := svc.UpsertTour(context.Background(), testPassword, map[string]any{
		"title": "Морская прогулка",
		"price": "2000",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTourCategory, tour.Category)
	assert.Equal(t, domain.DefaultCurrency, tour.Currency)
	assert.Equal(t, 2000.0, tour.Price)
	assert.NotNil(t, tour.Schedule)
	assert.NotNil(t, tour.Images)
}

func TestUpsertTour_EmptyTitleRejected(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.UpsertTour(context.Background(), testPassword, map[string]any{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpsertCategory_Defaults(t *testing.T) {
	svc, _ := newTestService(nil)

	category, err := svc.UpsertCategory(context.Background(), testPassword, map[string]any{
		"name": "Горы",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryIcon, category.Icon)
	assert.NotEmpty(t, category.ID)
}

func TestDeleteCategory_KeepsReferencingTours(t *testing.T) {
	doc := domain.DefaultDocument()
	doc.Categories = []domain.Category{{ID: "sea", Name: "Море"}}
	doc.Tours = []domain.Tour{{ID: "t1", Title: "Прогулка", Category: "sea"}}
	svc, store := newTestService(doc)

	require.NoError(t, svc.DeleteCategory(context.Background(), testPassword, "sea"))

	// Экскурсия с осиротевшей ссылкой остаётся как есть
	assert.Empty(t, store.doc.Categories)
	require.Len(t, store.doc.Tours, 1)
	assert.Equal(t, "sea", store.doc.Tours[0].Category)
}

func TestUpsertRoom_StoreFailures(t *testing.T) {
	svc, store := newTestService(nil)
	ctx := context.Background()

	store.loadErr = errors.New("disk gone")
	_, err := svc.UpsertRoom(ctx, testPassword, map[string]any{"name": "Люкс"})
	assert.ErrorIs(t, err, ErrInternal)

	store.loadErr = nil
	store.saveErr = errors.New("disk full")
	_, err = svc.UpsertRoom(ctx, testPassword, map[string]any{"name": "Люкс"})
	assert.ErrorIs(t, err, ErrInternal)
}
