package models

// BrickBody is the body-color reference entry for a tile.
type BrickBody struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null"`
}
