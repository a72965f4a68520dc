package derive

import "github.com/shopspring/decimal"

// Field names an editable or derived draft attribute. Input field names match
// the wire names the dashboard sends.
type Field string

const (
	FieldSupplierID    Field = "supplierId"
	FieldCompanyCodeID Field = "companyCodeId"
	FieldPatternID     Field = "brickPatternId"
	FieldSizeID        Field = "actualSizeId"
	FieldColorID       Field = "colorId"
	FieldBodyColorID   Field = "brickBodyId"
	FieldMaterialID    Field = "materialId"
	FieldSurfaceID     Field = "surfaceFeatureId"
	FieldOriginID      Field = "originCountryId"
	FieldItemCode      Field = "supplierItemCode"
	FieldSpecialNote   Field = "productSpecialNote"
	FieldOrderNumber   Field = "orderNumber"
	FieldTaxID         Field = "taxId"

	FieldAutoBarCode     Field = "autoBarCode"
	FieldProductCode     Field = "productCode"
	FieldSKU             Field = "sku"
	FieldConfirmItemCode Field = "confirmItemCode"
	FieldWebsiteName     Field = "websiteName"
	FieldSapoName        Field = "sapoName"
	FieldPrices          Field = "prices"
)

// derivationOrder lists the derived fields in topological order. The only
// chain is autoBarCode feeding websiteName, so one ordered pass suffices.
var derivationOrder = []Field{
	FieldAutoBarCode,
	FieldProductCode,
	FieldSKU,
	FieldConfirmItemCode,
	FieldWebsiteName,
	FieldSapoName,
	FieldPrices,
}

// dependencies maps each derived field to its declared input set. Entries may
// name other derived fields; those must appear earlier in derivationOrder.
var dependencies = map[Field][]Field{
	FieldAutoBarCode:     {FieldSupplierID, FieldOrderNumber, FieldPatternID},
	FieldProductCode:     {FieldSupplierID, FieldOrderNumber},
	FieldSKU:             {FieldCompanyCodeID, FieldSupplierID, FieldItemCode, FieldSurfaceID},
	FieldConfirmItemCode: {FieldItemCode, FieldCompanyCodeID},
	FieldWebsiteName:     {FieldAutoBarCode, FieldSizeID, FieldPatternID, FieldColorID, FieldBodyColorID, FieldMaterialID, FieldSurfaceID},
	FieldSapoName:        {FieldPatternID, FieldColorID, FieldMaterialID, FieldSurfaceID, FieldOriginID, FieldCompanyCodeID, FieldSpecialNote, FieldItemCode},
	FieldPrices:          {FieldTaxID},
}

// Draft is the in-memory product record the engine derives from. Selection
// ids of 0 mean "not selected".
type Draft struct {
	SupplierID    int64
	CompanyCodeID int64
	PatternID     int64
	SizeID        int64
	ColorID       int64
	BodyColorID   int64
	MaterialID    int64
	SurfaceID     int64
	OriginID      int64
	TaxID         int64

	SupplierItemCode string
	SpecialNote      string
	OrderNumber      string

	Pricing PricingInputs

	AutoBarCode     string
	ProductCode     string
	SKU             string
	ConfirmItemCode string
	WebsiteName     string
	SapoName        string
	Prices          PricingResult
}

// productName is the display name source: the special note when present,
// falling back to the supplier item code.
func (d *Draft) productName() string {
	if d.SpecialNote != "" {
		return d.SpecialNote
	}
	return d.SupplierItemCode
}

func (d *Draft) compute(t *Tables, field Field) {
	switch field {
	case FieldAutoBarCode:
		d.AutoBarCode = AutoBarCode(t, d.SupplierID, d.OrderNumber, d.PatternID)
	case FieldProductCode:
		d.ProductCode = ProductCode(t, d.SupplierID, d.OrderNumber)
	case FieldSKU:
		d.SKU = SKU(t, d.CompanyCodeID, d.SupplierID, d.SupplierItemCode, d.SurfaceID)
	case FieldConfirmItemCode:
		d.ConfirmItemCode = ConfirmItemCode(t, d.SupplierItemCode, d.CompanyCodeID)
	case FieldWebsiteName:
		d.WebsiteName = WebsiteName(t, d.AutoBarCode, d.SizeID, d.PatternID, d.ColorID, d.BodyColorID, d.MaterialID, d.SurfaceID)
	case FieldSapoName:
		d.SapoName = SapoName(t, d.PatternID, d.OriginID, d.ColorID, d.MaterialID, d.SurfaceID, d.CompanyCodeID, d.productName())
	case FieldPrices:
		in := d.Pricing
		if tax, ok := t.Tax(d.TaxID); ok {
			in.TaxRate = decimal.NewFromFloat(tax.Rate)
		}
		d.Prices = ComputePricing(in)
	}
}

// Recompute refreshes exactly the derived fields whose input set includes the
// changed field, cascading through derived-field dependencies in topological
// order. It returns the derived fields it recomputed. Passing a derived field
// refreshes that field itself and its dependents; any edit to a raw pricing
// amount maps to FieldPrices this way.
func (d *Draft) Recompute(t *Tables, changed Field) []Field {
	dirty := map[Field]bool{changed: true}
	var recomputed []Field
	for _, derived := range derivationOrder {
		refresh := dirty[derived]
		if !refresh {
			for _, dep := range dependencies[derived] {
				if dirty[dep] {
					refresh = true
					break
				}
			}
		}
		if !refresh {
			continue
		}
		d.compute(t, derived)
		dirty[derived] = true
		recomputed = append(recomputed, derived)
	}
	return recomputed
}

// RecomputeAll refreshes every derived field from the current inputs. Used
// when hydrating a draft for edit and on every create/update submission.
func (d *Draft) RecomputeAll(t *Tables) {
	for _, derived := range derivationOrder {
		d.compute(t, derived)
	}
}
