package models

// SurfaceFeature is a tile surface reference entry; the first letter of its
// short code selects the display surface name.
type SurfaceFeature struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;not null"`
	ShortCode string `gorm:"column:short_code;not null;default:''"`
}
