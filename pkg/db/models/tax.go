package models

// Tax is a VAT rate reference entry.
type Tax struct {
	ID   int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name string  `gorm:"column:name;not null"`
	Rate float64 `gorm:"column:rate;type:numeric(5,2);not null;default:0"`
}
