package model

// Sequence хранит последнее выданное значение счётчика идентификаторов.
// Значение только растёт: удаление записей его не откатывает.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}
