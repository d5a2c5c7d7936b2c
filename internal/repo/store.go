package repo

import (
	"fmt"
)

// Имена хранилищ, принимаемые OpenStore.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// OpenStore создаёт хранилище по имени драйвера. closeFn освобождает ресурсы хранилища.
func OpenStore(driver string) (store ItemRepository, closeFn func() error, err error) {
	switch driver {
	case DriverMemory, "":
		return NewMemoryItemRepository(), func() error { return nil }, nil
	case DriverSQLite:
		db, err := InitDB()
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("get sql.DB: %w", err)
		}
		return NewItemRepository(db), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
