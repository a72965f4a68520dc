package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// DraftInput is the client-submitted product draft. Derived fields are never
// part of the payload; the service recomputes them from these inputs on every
// create and update.
type DraftInput struct {
	SupplierID       *int64 `json:"supplierId" validate:"omitempty,gt=0"`
	CompanyCodeID    *int64 `json:"companyCodeId" validate:"omitempty,gt=0"`
	BrickPatternID   *int64 `json:"brickPatternId" validate:"omitempty,gt=0"`
	ActualSizeID     *int64 `json:"actualSizeId" validate:"omitempty,gt=0"`
	ColorID          *int64 `json:"colorId" validate:"omitempty,gt=0"`
	BrickBodyID      *int64 `json:"brickBodyId" validate:"omitempty,gt=0"`
	MaterialID       *int64 `json:"materialId" validate:"omitempty,gt=0"`
	SurfaceFeatureID *int64 `json:"surfaceFeatureId" validate:"omitempty,gt=0"`
	OriginCountryID  *int64 `json:"originCountryId" validate:"omitempty,gt=0"`
	ProductFactoryID *int64 `json:"productFactoryId" validate:"omitempty,gt=0"`
	ProcessingID     *int64 `json:"processingId" validate:"omitempty,gt=0"`
	TaxID            *int64 `json:"taxId" validate:"omitempty,gt=0"`

	SupplierItemCode   string  `json:"supplierItemCode" validate:"max=64"`
	ProductSpecialNote string  `json:"productSpecialNote" validate:"max=255"`
	OrderNumber        string  `json:"orderNumber" validate:"max=32"`
	QuantityPerBox     float64 `json:"quantityPerBox" validate:"gte=0"`
	WeightPerBox       float64 `json:"weightPerBox" validate:"gte=0"`

	ListPrice               decimal.Decimal `json:"listPrice"`
	SupplierRisingPrice     decimal.Decimal `json:"supplierRisingPrice"`
	OtherPriceByCompany     decimal.Decimal `json:"otherPriceByCompany"`
	ShippingFee             decimal.Decimal `json:"shippingFee"`
	DiscountPercent         decimal.Decimal `json:"discountPercent"`
	SupplierDiscountCash    decimal.Decimal `json:"supplierDiscountCash"`
	SupplierDiscountPercent decimal.Decimal `json:"supplierDiscountPercent"`
	PolicyStandardPercent   decimal.Decimal `json:"policyStandardPercent"`
	FirstPolicyPercent      decimal.Decimal `json:"firstPolicyPercent"`
	SecondPolicyPercent     decimal.Decimal `json:"secondPolicyPercent"`
}

// StrategyInput feeds the pricing preview endpoint: the cascade inputs plus
// the selected tax entry.
type StrategyInput struct {
	TaxID *int64 `json:"taxId" validate:"omitempty,gt=0"`

	ListPrice               decimal.Decimal `json:"listPrice"`
	SupplierRisingPrice     decimal.Decimal `json:"supplierRisingPrice"`
	OtherPriceByCompany     decimal.Decimal `json:"otherPriceByCompany"`
	ShippingFee             decimal.Decimal `json:"shippingFee"`
	DiscountPercent         decimal.Decimal `json:"discountPercent"`
	SupplierDiscountCash    decimal.Decimal `json:"supplierDiscountCash"`
	SupplierDiscountPercent decimal.Decimal `json:"supplierDiscountPercent"`
	PolicyStandardPercent   decimal.Decimal `json:"policyStandardPercent"`
	FirstPolicyPercent      decimal.Decimal `json:"firstPolicyPercent"`
	SecondPolicyPercent     decimal.Decimal `json:"secondPolicyPercent"`
}

// PricingDTO is the cascade output. Prices behind the policy-standard guard
// serialize as null when undefined.
type PricingDTO struct {
	ConfirmListPrice          decimal.Decimal     `json:"confirmListPrice"`
	SupplierEstimatedPayable  decimal.Decimal     `json:"supplierEstimatedPayable"`
	EstimatedPurchasePrice    decimal.Decimal     `json:"estimatedPurchasePrice"`
	RetailPrice               decimal.NullDecimal `json:"retailPrice"`
	FirstFixedPolicyPrice     decimal.NullDecimal `json:"firstFixedPolicyPrice"`
	SecondFixedPolicyPrice    decimal.NullDecimal `json:"secondFixedPolicyPrice"`
	FirstActualReceivedPrice  decimal.NullDecimal `json:"firstActualReceivedPrice"`
	SecondActualReceivedPrice decimal.NullDecimal `json:"secondActualReceivedPrice"`
	FirstRemainingPrice       decimal.NullDecimal `json:"firstRemainingPrice"`
	SecondRemainingPrice      decimal.NullDecimal `json:"secondRemainingPrice"`
	OutOfPolicyOne            bool                `json:"outOfPolicyOne"`
	OutOfPolicyTwo            bool                `json:"outOfPolicyTwo"`
}

// ProductDTO is the API representation of a persisted product.
type ProductDTO struct {
	ID uuid.UUID `json:"id"`

	SupplierID       *int64 `json:"supplierId"`
	CompanyCodeID    *int64 `json:"companyCodeId"`
	BrickPatternID   *int64 `json:"brickPatternId"`
	ActualSizeID     *int64 `json:"actualSizeId"`
	ColorID          *int64 `json:"colorId"`
	BrickBodyID      *int64 `json:"brickBodyId"`
	MaterialID       *int64 `json:"materialId"`
	SurfaceFeatureID *int64 `json:"surfaceFeatureId"`
	OriginCountryID  *int64 `json:"originCountryId"`
	ProductFactoryID *int64 `json:"productFactoryId"`
	ProcessingID     *int64 `json:"processingId"`
	TaxID            *int64 `json:"taxId"`

	SupplierItemCode   string  `json:"supplierItemCode"`
	ProductSpecialNote string  `json:"productSpecialNote"`
	OrderNumber        string  `json:"orderNumber"`
	QuantityPerBox     float64 `json:"quantityPerBox"`
	WeightPerBox       float64 `json:"weightPerBox"`

	AutoBarCode     string `json:"autoBarCode"`
	ProductCode     string `json:"productCode"`
	SKU             string `json:"sku"`
	ConfirmItemCode string `json:"confirmItemCode"`
	WebsiteName     string `json:"websiteName"`
	SapoName        string `json:"sapoName"`

	ListPrice               decimal.Decimal `json:"listPrice"`
	SupplierRisingPrice     decimal.Decimal `json:"supplierRisingPrice"`
	OtherPriceByCompany     decimal.Decimal `json:"otherPriceByCompany"`
	ShippingFee             decimal.Decimal `json:"shippingFee"`
	DiscountPercent         decimal.Decimal `json:"discountPercent"`
	SupplierDiscountCash    decimal.Decimal `json:"supplierDiscountCash"`
	SupplierDiscountPercent decimal.Decimal `json:"supplierDiscountPercent"`
	PolicyStandardPercent   decimal.Decimal `json:"policyStandardPercent"`
	FirstPolicyPercent      decimal.Decimal `json:"firstPolicyPercent"`
	SecondPolicyPercent     decimal.Decimal `json:"secondPolicyPercent"`

	Pricing PricingDTO `json:"pricing"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CodeCheckDTO answers the uniqueness endpoint.
type CodeCheckDTO struct {
	Code   string `json:"code"`
	Exists bool   `json:"exists"`
}

// OrderNumberDTO carries a freshly allocated sequence value.
type OrderNumberDTO struct {
	OrderNumber string `json:"orderNumber"`
}

func toDTO(p *models.Product) *ProductDTO {
	return &ProductDTO{
		ID: p.ID,

		SupplierID:       p.SupplierID,
		CompanyCodeID:    p.CompanyCodeID,
		BrickPatternID:   p.BrickPatternID,
		ActualSizeID:     p.ActualSizeID,
		ColorID:          p.ColorID,
		BrickBodyID:      p.BrickBodyID,
		MaterialID:       p.MaterialID,
		SurfaceFeatureID: p.SurfaceFeatureID,
		OriginCountryID:  p.OriginCountryID,
		ProductFactoryID: p.ProductFactoryID,
		ProcessingID:     p.ProcessingID,
		TaxID:            p.TaxID,

		SupplierItemCode:   p.SupplierItemCode,
		ProductSpecialNote: p.ProductSpecialNote,
		OrderNumber:        p.OrderNumber,
		QuantityPerBox:     p.QuantityPerBox,
		WeightPerBox:       p.WeightPerBox,

		AutoBarCode:     p.AutoBarCode,
		ProductCode:     p.ProductCode,
		SKU:             p.SKU,
		ConfirmItemCode: p.ConfirmItemCode,
		WebsiteName:     p.WebsiteName,
		SapoName:        p.SapoName,

		ListPrice:               p.ListPrice,
		SupplierRisingPrice:     p.SupplierRisingPrice,
		OtherPriceByCompany:     p.OtherPriceByCompany,
		ShippingFee:             p.ShippingFee,
		DiscountPercent:         p.DiscountPercent,
		SupplierDiscountCash:    p.SupplierDiscountCash,
		SupplierDiscountPercent: p.SupplierDiscountPercent,
		PolicyStandardPercent:   p.PolicyStandardPercent,
		FirstPolicyPercent:      p.FirstPolicyPercent,
		SecondPolicyPercent:     p.SecondPolicyPercent,

		Pricing: PricingDTO{
			ConfirmListPrice:          p.ConfirmListPrice,
			SupplierEstimatedPayable:  p.SupplierEstimatedPayable,
			EstimatedPurchasePrice:    p.EstimatedPurchasePrice,
			RetailPrice:               p.RetailPrice,
			FirstFixedPolicyPrice:     p.FirstFixedPolicyPrice,
			SecondFixedPolicyPrice:    p.SecondFixedPolicyPrice,
			FirstActualReceivedPrice:  p.FirstActualReceivedPrice,
			SecondActualReceivedPrice: p.SecondActualReceivedPrice,
			FirstRemainingPrice:       p.FirstRemainingPrice,
			SecondRemainingPrice:      p.SecondRemainingPrice,
			OutOfPolicyOne:            p.OutOfPolicyOne,
			OutOfPolicyTwo:            p.OutOfPolicyTwo,
		},

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out
}
