package derive

import "github.com/shopspring/decimal"

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// PricingInputs carries the raw figures the strategy cascade reads. Absent
// form fields arrive as zero values, which the cascade treats as 0.
type PricingInputs struct {
	ListPrice               decimal.Decimal
	SupplierRisingPrice     decimal.Decimal
	OtherPriceByCompany     decimal.Decimal
	ShippingFee             decimal.Decimal
	DiscountPercent         decimal.Decimal
	SupplierDiscountCash    decimal.Decimal
	SupplierDiscountPercent decimal.Decimal
	PolicyStandardPercent   decimal.Decimal
	FirstPolicyPercent      decimal.Decimal
	SecondPolicyPercent     decimal.Decimal
	TaxRate                 decimal.Decimal
}

// PricingResult holds every derived price in cascade order. Prices downstream
// of the retail division are null whenever the policy-standard guard trips,
// never infinite and never NaN.
type PricingResult struct {
	ConfirmListPrice          decimal.Decimal
	SupplierEstimatedPayable  decimal.Decimal
	EstimatedPurchasePrice    decimal.Decimal
	RetailPrice               decimal.NullDecimal
	FirstFixedPolicyPrice     decimal.NullDecimal
	SecondFixedPolicyPrice    decimal.NullDecimal
	FirstActualReceivedPrice  decimal.NullDecimal
	SecondActualReceivedPrice decimal.NullDecimal
	FirstRemainingPrice       decimal.NullDecimal
	SecondRemainingPrice      decimal.NullDecimal
	OutOfPolicyOne            bool
	OutOfPolicyTwo            bool
}

// ComputePricing runs the strategy cascade in its fixed stage order. Each
// stage reads only raw inputs and earlier-stage outputs, so the result is a
// pure function of the inputs.
func ComputePricing(in PricingInputs) PricingResult {
	var out PricingResult

	out.ConfirmListPrice = in.ListPrice.
		Add(in.SupplierRisingPrice).
		Add(in.OtherPriceByCompany).
		Add(in.ShippingFee)

	payable := out.ConfirmListPrice.Mul(percentComplement(in.DiscountPercent))
	out.SupplierEstimatedPayable = roundToThousand(payable)

	out.EstimatedPurchasePrice = out.SupplierEstimatedPayable.
		Sub(in.SupplierDiscountCash).
		Sub(out.SupplierEstimatedPayable.Mul(in.SupplierDiscountPercent).Div(hundred))

	// policyStandard >= 100 would divide by zero or flip the sign; the retail
	// price and everything downstream stay null in that case.
	margin := percentComplement(in.PolicyStandardPercent)
	if margin.Sign() <= 0 {
		return out
	}
	retail := out.EstimatedPurchasePrice.Div(margin)
	out.RetailPrice = decimal.NullDecimal{Decimal: retail, Valid: true}

	firstFixed := retail.Mul(percentComplement(in.FirstPolicyPercent))
	secondFixed := retail.Mul(percentComplement(in.SecondPolicyPercent))
	out.FirstFixedPolicyPrice = decimal.NullDecimal{Decimal: firstFixed, Valid: true}
	out.SecondFixedPolicyPrice = decimal.NullDecimal{Decimal: secondFixed, Valid: true}

	taxFactor := decimal.NewFromInt(1).Add(in.TaxRate.Div(hundred))
	firstActual := firstFixed.Mul(taxFactor)
	secondActual := secondFixed.Mul(taxFactor)
	out.FirstActualReceivedPrice = decimal.NullDecimal{Decimal: firstActual, Valid: true}
	out.SecondActualReceivedPrice = decimal.NullDecimal{Decimal: secondActual, Valid: true}

	out.FirstRemainingPrice = decimal.NullDecimal{Decimal: retail.Sub(firstFixed), Valid: true}
	out.SecondRemainingPrice = decimal.NullDecimal{Decimal: retail.Sub(secondFixed), Valid: true}

	out.OutOfPolicyOne = out.EstimatedPurchasePrice.GreaterThan(firstActual)
	out.OutOfPolicyTwo = out.EstimatedPurchasePrice.GreaterThan(secondActual)
	return out
}

// percentComplement returns (1 - pct/100).
func percentComplement(pct decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(pct.Div(hundred))
}

// roundToThousand rounds to the nearest 1,000 currency minor units, matching
// how payable amounts are settled with suppliers.
func roundToThousand(v decimal.Decimal) decimal.Decimal {
	return v.Div(thousand).Round(0).Mul(thousand)
}
