package models

// Material is a tile material reference entry.
type Material struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;not null"`
	ShortName string `gorm:"column:short_name;not null;default:''"`
}
