package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/m04kA/SMC-HotelContentService/internal/domain"
)

// Store хранилище документа: один JSON-файл на диске.
//
// Load всегда перечитывает файл (никакого кеша) — это дёшево для одного
// небольшого документа и позволяет подкладывать файл извне (восстановление
// из бэкапа). Save сериализует документ целиком и подменяет файл атомарно:
// запись во временный файл, затем rename поверх основного, так что читатели
// никогда не видят частично записанный файл.
//
// Записи сериализуются мьютексом, принадлежащим экземпляру Store (не пакету),
// поэтому независимые экземпляры в тестах не делят состояние. Пара
// Load → Save при этом НЕ атомарна как единое целое: две гонящиеся цепочки
// "прочитал-поправил-сохранил" могут потерять один из патчей. Для
// низконагруженной единственной админки это принятое ограничение.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore создает хранилище поверх указанного файла
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load читает и парсит документ с диска
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: Load - read file: %v", ErrRead, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: Load - parse document: %v", ErrCorrupt, err)
	}
	return &doc, nil
}

// Save атомарно записывает документ на диск.
// Конкурентные вызовы выстраиваются в очередь: каждый ждёт завершения
// предыдущей записи.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: Save - marshal document: %v", ErrWrite, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("%w: Save - write temp file: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: Save - replace data file: %v", ErrWrite, err)
	}
	return nil
}

// Init создает файл данных с начальным документом, если файла ещё нет
func (s *Store) Init(ctx context.Context, seed *domain.Document) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: Init - stat data file: %v", ErrRead, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: Init - create data dir: %v", ErrWrite, err)
		}
	}
	return s.Save(ctx, seed)
}
