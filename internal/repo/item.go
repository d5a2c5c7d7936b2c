package repo

import (
	"ItemGate/internal/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound возвращается, когда записи с указанным id нет в хранилище.
var ErrNotFound = errors.New("item not found")

// itemSequence — имя счётчика, из которого выдаются id записей.
const itemSequence = "items"

// ItemRepository определяет контракт хранилища записей для слоя сервиса.
// Каждый метод атомарен относительно остальных.
type ItemRepository interface {
	// List возвращает все записи в порядке добавления.
	List(ctx context.Context) ([]model.Item, error)

	// Create выдаёт следующий id из счётчика и добавляет запись в конец.
	Create(ctx context.Context, name string) (*model.Item, error)

	// Update заменяет имя записи. ErrNotFound, если записи нет.
	Update(ctx context.Context, id int64, name string) (*model.Item, error)

	// Delete удаляет запись. ErrNotFound, если записи нет.
	Delete(ctx context.Context, id int64) error

	// Reset очищает хранилище и сбрасывает счётчик (для изоляции тестов).
	Reset(ctx context.Context) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория поверх gorm.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *itemRepo) Create(ctx context.Context, name string) (*model.Item, error) {
	var created model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq := model.Sequence{Name: itemSequence}
		if err := tx.FirstOrCreate(&seq, model.Sequence{Name: itemSequence}).Error; err != nil {
			return err
		}
		next := seq.Value + 1
		if err := tx.Model(&seq).Update("value", next).Error; err != nil {
			return err
		}
		created = model.Item{ID: next, Name: name}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &created, nil
}

func (r *itemRepo) Update(ctx context.Context, id int64, name string) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&it, id).Error; err != nil {
			return err
		}
		// Update по одной колонке пишет и пустую строку
		if err := tx.Model(&it).Update("name", name).Error; err != nil {
			return err
		}
		it.Name = name
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	return &it, nil
}

func (r *itemRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemRepo) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Item{}).Error; err != nil {
			return err
		}
		return tx.Where("name = ?", itemSequence).Delete(&model.Sequence{}).Error
	})
}
