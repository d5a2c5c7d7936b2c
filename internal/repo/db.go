package repo

import (
	"ItemGate/internal/model"
	"fmt"

	"github.com/google/uuid"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает отдельную in-memory базу SQLite (драйвер modernc) и применяет миграции.
// Каждый вызов получает свою базу: имя генерируется через uuid.
// База живёт, пока открыто её единственное соединение, то есть до конца процесса.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:itemgate-%s?mode=memory&cache=shared", uuid.NewString())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	// одно соединение: запросы идут последовательно, и база не пропадает вместе с простаивающим соединением
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&model.Item{}, &model.Sequence{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
