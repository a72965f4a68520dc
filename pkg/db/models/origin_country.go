package models

// OriginCountry is a manufacturing origin reference entry.
type OriginCountry struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;not null"`
	UpperName string `gorm:"column:upper_name;not null;default:''"`
}
