package repo

import (
	"ItemGate/internal/model"
	"context"
	"sync"
)

// MemoryItemRepository — хранилище записей в памяти процесса.
// Один мьютекс сериализует все операции.
type MemoryItemRepository struct {
	mu     sync.Mutex
	items  []model.Item
	lastID int64
}

var _ ItemRepository = (*MemoryItemRepository)(nil)

// NewMemoryItemRepository создаёт пустое хранилище, первый id будет 1.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{items: make([]model.Item, 0)}
}

// List возвращает копию коллекции, чтобы вызывающий не мог изменить её напрямую.
func (r *MemoryItemRepository) List(_ context.Context) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryItemRepository) Create(_ context.Context, name string) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	it := model.Item{ID: r.lastID, Name: name}
	r.items = append(r.items, it)
	return &it, nil
}

func (r *MemoryItemRepository) Update(_ context.Context, id int64, name string) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	r.items[i].Name = name
	it := r.items[i]
	return &it, nil
}

func (r *MemoryItemRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *MemoryItemRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make([]model.Item, 0)
	r.lastID = 0
	return nil
}

// indexOf ищет позицию записи; вызывается под мьютексом.
func (r *MemoryItemRepository) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
