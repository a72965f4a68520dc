package models

// CompanyCode is an internal company prefix used in SKUs and SAPO names.
type CompanyCode struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CodeName string `gorm:"column:code_name;not null"`
}
