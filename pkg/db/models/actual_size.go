package models

// ActualSize stores tile dimensions in fixed-point tenths of a centimeter.
type ActualSize struct {
	ID     int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name   string  `gorm:"column:name;not null;default:''"`
	Wide   float64 `gorm:"column:wide;type:numeric(10,2);not null"`
	Length float64 `gorm:"column:length;type:numeric(10,2);not null"`
}
