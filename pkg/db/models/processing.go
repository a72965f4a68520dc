package models

// Processing is a post-processing reference entry (cutting, polishing, ...).
type Processing struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null"`
}
