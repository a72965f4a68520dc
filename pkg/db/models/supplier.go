package models

import "time"

// Supplier is a sourcing partner; its codes feed the generated product codes.
type Supplier struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;not null"`
	ShortCode    string    `gorm:"column:short_code;not null"`
	CombinedCode string    `gorm:"column:combined_code;not null;default:''"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
