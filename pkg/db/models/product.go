package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the catalog entry under construction or maintenance in the
// dashboard. Selection ids reference the session-static reference lists; the
// code/name and price columns are derived server-side and never accepted from
// the client as-is.
type Product struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`

	SupplierID       *int64 `gorm:"column:supplier_id"`
	CompanyCodeID    *int64 `gorm:"column:company_code_id"`
	BrickPatternID   *int64 `gorm:"column:brick_pattern_id"`
	ActualSizeID     *int64 `gorm:"column:actual_size_id"`
	ColorID          *int64 `gorm:"column:color_id"`
	BrickBodyID      *int64 `gorm:"column:brick_body_id"`
	MaterialID       *int64 `gorm:"column:material_id"`
	SurfaceFeatureID *int64 `gorm:"column:surface_feature_id"`
	OriginCountryID  *int64 `gorm:"column:origin_country_id"`
	ProductFactoryID *int64 `gorm:"column:product_factory_id"`
	ProcessingID     *int64 `gorm:"column:processing_id"`
	TaxID            *int64 `gorm:"column:tax_id"`

	SupplierItemCode   string  `gorm:"column:supplier_item_code;not null;default:''"`
	ProductSpecialNote string  `gorm:"column:product_special_note;not null;default:''"`
	OrderNumber        string  `gorm:"column:order_number;not null;default:''"`
	QuantityPerBox     float64 `gorm:"column:quantity_per_box;type:numeric(10,2);not null;default:0"`
	WeightPerBox       float64 `gorm:"column:weight_per_box;type:numeric(10,2);not null;default:0"`

	AutoBarCode     string `gorm:"column:auto_bar_code;not null;default:''"`
	ProductCode     string `gorm:"column:product_code;not null;default:''"`
	SKU             string `gorm:"column:sku;not null;default:''"`
	ConfirmItemCode string `gorm:"column:confirm_item_code;not null;default:''"`
	WebsiteName     string `gorm:"column:website_name;not null;default:''"`
	SapoName        string `gorm:"column:sapo_name;not null;default:''"`

	ListPrice               decimal.Decimal `gorm:"column:list_price;type:numeric(18,2);not null;default:0"`
	SupplierRisingPrice     decimal.Decimal `gorm:"column:supplier_rising_price;type:numeric(18,2);not null;default:0"`
	OtherPriceByCompany     decimal.Decimal `gorm:"column:other_price_by_company;type:numeric(18,2);not null;default:0"`
	ShippingFee             decimal.Decimal `gorm:"column:shipping_fee;type:numeric(18,2);not null;default:0"`
	DiscountPercent         decimal.Decimal `gorm:"column:discount_percent;type:numeric(7,2);not null;default:0"`
	SupplierDiscountCash    decimal.Decimal `gorm:"column:supplier_discount_cash;type:numeric(18,2);not null;default:0"`
	SupplierDiscountPercent decimal.Decimal `gorm:"column:supplier_discount_percent;type:numeric(7,2);not null;default:0"`
	PolicyStandardPercent   decimal.Decimal `gorm:"column:policy_standard_percent;type:numeric(7,2);not null;default:0"`
	FirstPolicyPercent      decimal.Decimal `gorm:"column:first_policy_percent;type:numeric(7,2);not null;default:0"`
	SecondPolicyPercent     decimal.Decimal `gorm:"column:second_policy_percent;type:numeric(7,2);not null;default:0"`

	ConfirmListPrice          decimal.Decimal     `gorm:"column:confirm_list_price;type:numeric(18,2);not null;default:0"`
	SupplierEstimatedPayable  decimal.Decimal     `gorm:"column:supplier_estimated_payable;type:numeric(18,2);not null;default:0"`
	EstimatedPurchasePrice    decimal.Decimal     `gorm:"column:estimated_purchase_price;type:numeric(18,2);not null;default:0"`
	RetailPrice               decimal.NullDecimal `gorm:"column:retail_price;type:numeric(18,2)"`
	FirstFixedPolicyPrice     decimal.NullDecimal `gorm:"column:first_fixed_policy_price;type:numeric(18,2)"`
	SecondFixedPolicyPrice    decimal.NullDecimal `gorm:"column:second_fixed_policy_price;type:numeric(18,2)"`
	FirstActualReceivedPrice  decimal.NullDecimal `gorm:"column:first_actual_received_price;type:numeric(18,2)"`
	SecondActualReceivedPrice decimal.NullDecimal `gorm:"column:second_actual_received_price;type:numeric(18,2)"`
	FirstRemainingPrice       decimal.NullDecimal `gorm:"column:first_remaining_price;type:numeric(18,2)"`
	SecondRemainingPrice      decimal.NullDecimal `gorm:"column:second_remaining_price;type:numeric(18,2)"`
	OutOfPolicyOne            bool                `gorm:"column:out_of_policy_one;not null;default:false"`
	OutOfPolicyTwo            bool                `gorm:"column:out_of_policy_two;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
