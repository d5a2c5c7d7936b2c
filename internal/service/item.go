package service

import (
	"ItemGate/internal/model"
	"ItemGate/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"go.uber.org/zap"
)

var (
	// ErrNameRequired — имя новой записи отсутствует или состоит из пробелов.
	ErrNameRequired = errors.New("name is required")
	// ErrItemNotFound — записи с указанным id нет.
	ErrItemNotFound = errors.New("item not found")
)

// createItemInput описывает правила валидации при создании записи.
// При обновлении имя не проверяется.
type createItemInput struct {
	Name string `validate:"notblank"`
}

// ItemService инкапсулирует бизнес-логику работы со списком записей.
type ItemService struct {
	repo     repo.ItemRepository
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

// NewItemService создаёт сервис поверх переданного хранилища.
func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	v := validator.New()
	// notblank не входит в стандартный набор validator
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &ItemService{repo: r, validate: v, logger: logger}
}

// List возвращает все записи в порядке добавления, никогда не nil.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Create проверяет имя и добавляет запись со следующим id.
func (s *ItemService) Create(ctx context.Context, name string) (*model.Item, error) {
	if err := s.validate.Struct(createItemInput{Name: name}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, ErrNameRequired
		}
		return nil, fmt.Errorf("validate item: %w", err)
	}
	it, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("item created", "id", it.ID)
	return it, nil
}

// Update заменяет имя записи. Пустое имя допустимо.
func (s *ItemService) Update(ctx context.Context, id int64, name string) (*model.Item, error) {
	it, err := s.repo.Update(ctx, id, name)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	s.logger.Infow("item updated", "id", it.ID)
	return it, nil
}

// Delete удаляет запись по id.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	s.logger.Infow("item deleted", "id", id)
	return nil
}

// Reset очищает список и сбрасывает счётчик id. Используется в тестах.
func (s *ItemService) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
