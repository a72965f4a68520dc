package models

import "time"

// BrickPattern is a tile pattern reference entry.
type BrickPattern struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	ShortName string    `gorm:"column:short_name;not null;default:''"`
	ShortCode string    `gorm:"column:short_code;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
