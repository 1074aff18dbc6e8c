package catalog

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
	"github.com/m04kA/SMC-HotelContentService/pkg/coerce"
)

// entityID берет id из входных данных, если он непустой, иначе генерирует новый
func entityID(raw map[string]any) string {
	if id := coerce.TrimmedString(raw["id"]); id != "" {
		return id
	}
	return uuid.NewString()
}

// normalizeRoom приводит сырой ввод к сущности Room.
// short_name при пустом значении наследует name (уже обрезанный).
func normalizeRoom(raw map[string]any) domain.Room {
	name := coerce.TrimmedString(raw["name"])
	shortName := coerce.TrimmedString(raw["short_name"])
	if shortName == "" {
		shortName = name
	}

	return domain.Room{
		ID:          entityID(raw),
		Name:        name,
		ShortName:   shortName,
		Description: coerce.TrimmedString(raw["description"]),
		PriceFrom:   coerce.ClampFloat(coerce.Number(raw["price_from"], 0), 0),
		Currency:    coerce.StringOr(raw["currency"], domain.DefaultCurrency),
		Size:        coerce.String(raw["size"]),
		Beds:        coerce.String(raw["beds"]),
		MaxGuests:   coerce.ClampInt(coerce.Int(raw["max_guests"], domain.DefaultMaxGuests), domain.MinMaxGuests),
		Features:    coerce.StringSlice(raw["features"]),
		Images:      coerce.StringSlice(raw["images"]),
		Popular:     coerce.Bool(raw["popular"]),
		SortOrder:   coerce.Int(raw["sort_order"], 0),
	}
}

// normalizeTour приводит сырой ввод к сущности Tour
func normalizeTour(raw map[string]any) domain.Tour {
	return domain.Tour{
		ID:          entityID(raw),
		Title:       coerce.TrimmedString(raw["title"]),
		ShortDesc:   coerce.TrimmedString(raw["short_desc"]),
		Description: coerce.TrimmedString(raw["description"]),
		Price:       coerce.ClampFloat(coerce.Number(raw["price"], 0), 0),
		Currency:    coerce.StringOr(raw["currency"], domain.DefaultCurrency),
		Duration:    coerce.TrimmedString(raw["duration"]),
		Location:    coerce.TrimmedString(raw["location"]),
		Category:    coerce.StringOr(coerce.TrimmedString(raw["category"]), domain.DefaultTourCategory),
		Featured:    coerce.Bool(raw["featured"]),
		Schedule:    coerce.StringSlice(raw["schedule"]),
		Images:      coerce.StringSlice(raw["images"]),
		SortOrder:   coerce.Int(raw["sort_order"], 0),
	}
}

// normalizeCategory приводит сырой ввод к сущности Category
func normalizeCategory(raw map[string]any) domain.Category {
	return domain.Category{
		ID:        entityID(raw),
		Name:      coerce.TrimmedString(raw["name"]),
		Icon:      coerce.StringOr(raw["icon"], domain.DefaultCategoryIcon),
		SortOrder: coerce.Int(raw["sort_order"], 0),
	}
}

// upsertByID заменяет элемент с совпадающим id на месте (позиция и длина
// коллекции сохраняются) или добавляет новый в конец
func upsertByID[E any](list []E, item E, id func(E) string) []E {
	target := id(item)
	for i := range list {
		if id(list[i]) == target {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}

// deleteByID удаляет элемент с совпадающим id; отсутствие элемента — не ошибка
func deleteByID[E any](list []E, target string, id func(E) string) []E {
	out := list[:0]
	for _, item := range list {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}
