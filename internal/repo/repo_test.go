package repo

import (
	"testing"

	"gorm.io/gorm"
)

// newTestDB инициализирует отдельную in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB()
	if err != nil {
		t.Fatalf("failed to init sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// backends возвращает обе реализации хранилища, чтобы гонять по ним одни и те же сценарии
func backends() map[string]func(t *testing.T) ItemRepository {
	return map[string]func(t *testing.T) ItemRepository{
		"memory": func(*testing.T) ItemRepository { return NewMemoryItemRepository() },
		"sqlite": func(t *testing.T) ItemRepository { return NewItemRepository(newTestDB(t)) },
	}
}
