// Package session держит состояние клиента: вошёл ли пользователь и какой список он видит.
// После каждого изменения список перечитывается с сервера, локально не патчится.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"ItemGate/internal/model"

	"go.uber.org/zap"
)

var (
	// ErrLoginFailed — вход не удался (неверная пара или сервер недоступен).
	ErrLoginFailed = errors.New("login failed")
	// ErrBlankName — пустое имя отклонено до отправки запроса.
	ErrBlankName = errors.New("name is blank")
	// ErrBusy — предыдущая операция ещё не завершилась.
	ErrBusy = errors.New("another request is in flight")
	// ErrNotLoggedIn — операция со списком до входа.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrRefreshFailed — запрос выполнен, но список перечитать не удалось.
	// Сервер уже принял изменение, повторять его нельзя.
	ErrRefreshFailed = errors.New("refresh failed")
)

// ItemsAPI — то, что сессии нужно от сервера.
type ItemsAPI interface {
	Login(ctx context.Context, username, password string) error
	ListItems(ctx context.Context) ([]model.Item, error)
	CreateItem(ctx context.Context, name string) (*model.Item, error)
	UpdateItem(ctx context.Context, id int64, name string) (*model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// Session — состояние клиента. Одновременно выполняется не больше одной цепочки запросов.
type Session struct {
	api    ItemsAPI
	logger *zap.SugaredLogger

	inflight sync.Mutex

	mu       sync.RWMutex
	loggedIn bool
	items    []model.Item
}

// New создаёт сессию в состоянии "не вошёл".
func New(api ItemsAPI, logger *zap.SugaredLogger) *Session {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Session{api: api, logger: logger, items: make([]model.Item, 0)}
}

// LoggedIn сообщает, пройден ли вход.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// Items возвращает копию последнего полученного списка.
func (s *Session) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Login проверяет пару на сервере. При успехе сразу загружает список.
// Неудачный вход возвращает ErrLoginFailed и оставляет сессию без входа.
// Если вход прошёл, а список не загрузился, сессия считается вошедшей,
// а ошибка оборачивает ErrRefreshFailed.
func (s *Session) Login(ctx context.Context, username, password string) error {
	if !s.inflight.TryLock() {
		return ErrBusy
	}
	defer s.inflight.Unlock()

	if err := s.api.Login(ctx, username, password); err != nil {
		s.logger.Warnw("login failed", "username", username, "error", err)
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	s.mu.Lock()
	s.loggedIn = true
	s.mu.Unlock()

	// ошибка загрузки списка не отменяет вход
	return s.refresh(ctx)
}

// Refresh перечитывает список. При ошибке прежний список сохраняется.
func (s *Session) Refresh(ctx context.Context) error {
	if !s.inflight.TryLock() {
		return ErrBusy
	}
	defer s.inflight.Unlock()
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}
	return s.refresh(ctx)
}

// Add создаёт запись. Пустое имя отклоняется без запроса.
func (s *Session) Add(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	return s.mutate(ctx, "create item", func() error {
		_, err := s.api.CreateItem(ctx, name)
		return err
	})
}

// Edit переименовывает запись. Пустое имя означает отмену, запрос не отправляется.
func (s *Session) Edit(ctx context.Context, id int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	return s.mutate(ctx, "update item", func() error {
		_, err := s.api.UpdateItem(ctx, id, name)
		return err
	})
}

// Delete удаляет запись без предварительных проверок.
func (s *Session) Delete(ctx context.Context, id int64) error {
	return s.mutate(ctx, "delete item", func() error {
		return s.api.DeleteItem(ctx, id)
	})
}

// mutate выполняет изменение и перечитывает список. При ошибке список не трогается.
// Ошибка чтения после успешного изменения оборачивает ErrRefreshFailed.
func (s *Session) mutate(ctx context.Context, op string, call func() error) error {
	if !s.inflight.TryLock() {
		return ErrBusy
	}
	defer s.inflight.Unlock()
	if !s.LoggedIn() {
		return ErrNotLoggedIn
	}

	if err := call(); err != nil {
		s.logger.Warnw(op+" failed", "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.refresh(ctx); err != nil {
		return fmt.Errorf("%s applied: %w", op, err)
	}
	return nil
}

func (s *Session) refresh(ctx context.Context) error {
	items, err := s.api.ListItems(ctx)
	if err != nil {
		s.logger.Warnw("list items failed", "error", err)
		return fmt.Errorf("%w: list items: %v", ErrRefreshFailed, err)
	}
	if items == nil {
		items = make([]model.Item, 0)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}
