package models

// ProductFactory is a manufacturing plant reference entry.
type ProductFactory struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null"`
}
