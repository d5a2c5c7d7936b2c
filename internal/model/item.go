package model

// Item — элемент списка. ID выдаёт хранилище, меняется только Name.
type Item struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"not null" json:"name"`
}
