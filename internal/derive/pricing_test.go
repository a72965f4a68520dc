package derive

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputePricingCascade(t *testing.T) {
	in := PricingInputs{
		ListPrice:               dec("200000"),
		SupplierRisingPrice:     dec("10000"),
		OtherPriceByCompany:     dec("5000"),
		ShippingFee:             dec("15000"),
		DiscountPercent:         dec("10"),
		SupplierDiscountCash:    dec("2000"),
		SupplierDiscountPercent: dec("5"),
		PolicyStandardPercent:   dec("40"),
		FirstPolicyPercent:      dec("30"),
		SecondPolicyPercent:     dec("35"),
		TaxRate:                 dec("10"),
	}
	out := ComputePricing(in)

	if !out.ConfirmListPrice.Equal(dec("230000")) {
		t.Fatalf("confirm list price: got %s", out.ConfirmListPrice)
	}
	// 230000 * 0.9 = 207000, already on a 1000 boundary.
	if !out.SupplierEstimatedPayable.Equal(dec("207000")) {
		t.Fatalf("supplier estimated payable: got %s", out.SupplierEstimatedPayable)
	}
	// 207000 - 2000 - 207000*0.05 = 194650
	if !out.EstimatedPurchasePrice.Equal(dec("194650")) {
		t.Fatalf("estimated purchase price: got %s", out.EstimatedPurchasePrice)
	}
	if !out.RetailPrice.Valid {
		t.Fatal("retail price should be defined")
	}
	// 194650 / 0.6
	retail := dec("194650").Div(dec("0.6"))
	if !out.RetailPrice.Decimal.Equal(retail) {
		t.Fatalf("retail price: got %s want %s", out.RetailPrice.Decimal, retail)
	}
	firstFixed := retail.Mul(dec("0.7"))
	if !out.FirstFixedPolicyPrice.Decimal.Equal(firstFixed) {
		t.Fatalf("first fixed policy price: got %s", out.FirstFixedPolicyPrice.Decimal)
	}
	firstActual := firstFixed.Mul(dec("1.1"))
	if !out.FirstActualReceivedPrice.Decimal.Equal(firstActual) {
		t.Fatalf("first actual received price: got %s", out.FirstActualReceivedPrice.Decimal)
	}
	if !out.FirstRemainingPrice.Decimal.Equal(retail.Sub(firstFixed)) {
		t.Fatalf("first remaining price: got %s", out.FirstRemainingPrice.Decimal)
	}
	if out.OutOfPolicyOne {
		t.Fatal("purchase price below actual received, flag should be false")
	}
}

func TestComputePricingRoundsPayableToThousand(t *testing.T) {
	out := ComputePricing(PricingInputs{
		ListPrice:       dec("100500"),
		DiscountPercent: dec("0"),
	})
	// 100500 rounds up to 101000.
	if !out.SupplierEstimatedPayable.Equal(dec("101000")) {
		t.Fatalf("expected 101000, got %s", out.SupplierEstimatedPayable)
	}

	out = ComputePricing(PricingInputs{ListPrice: dec("100499")})
	if !out.SupplierEstimatedPayable.Equal(dec("100000")) {
		t.Fatalf("expected 100000, got %s", out.SupplierEstimatedPayable)
	}
}

func TestComputePricingPolicyGuard(t *testing.T) {
	for _, policy := range []string{"100", "120"} {
		out := ComputePricing(PricingInputs{
			ListPrice:             dec("100000"),
			PolicyStandardPercent: dec(policy),
		})
		if out.RetailPrice.Valid {
			t.Fatalf("policy %s: retail price should be undefined", policy)
		}
		if out.FirstFixedPolicyPrice.Valid || out.FirstActualReceivedPrice.Valid || out.FirstRemainingPrice.Valid {
			t.Fatalf("policy %s: downstream prices should be undefined", policy)
		}
		if out.OutOfPolicyOne || out.OutOfPolicyTwo {
			t.Fatalf("policy %s: out-of-policy flags should stay false", policy)
		}
		// Upstream stages still compute.
		if !out.ConfirmListPrice.Equal(dec("100000")) {
			t.Fatalf("policy %s: confirm list price got %s", policy, out.ConfirmListPrice)
		}
	}
}

func TestComputePricingMonotonicity(t *testing.T) {
	base := PricingInputs{ListPrice: dec("100000")}

	prev := decimal.Zero
	for _, policy := range []string{"10", "30", "50", "70", "90", "99"} {
		in := base
		in.PolicyStandardPercent = dec(policy)
		out := ComputePricing(in)
		if !out.RetailPrice.Valid {
			t.Fatalf("policy %s: retail price should be defined", policy)
		}
		if !out.RetailPrice.Decimal.GreaterThan(prev) {
			t.Fatalf("policy %s: retail %s not greater than %s", policy, out.RetailPrice.Decimal, prev)
		}
		prev = out.RetailPrice.Decimal
	}
}

func TestComputePricingOutOfPolicyFlag(t *testing.T) {
	// High first-policy discount pushes the actual received price below the
	// purchase price.
	out := ComputePricing(PricingInputs{
		ListPrice:             dec("100000"),
		PolicyStandardPercent: dec("10"),
		FirstPolicyPercent:    dec("50"),
		SecondPolicyPercent:   dec("0"),
	})
	if !out.OutOfPolicyOne {
		t.Fatal("expected out-of-policy-one")
	}
	if out.OutOfPolicyTwo {
		t.Fatal("did not expect out-of-policy-two")
	}
}

func TestComputePricingZeroInputs(t *testing.T) {
	out := ComputePricing(PricingInputs{})
	if !out.ConfirmListPrice.IsZero() || !out.SupplierEstimatedPayable.IsZero() || !out.EstimatedPurchasePrice.IsZero() {
		t.Fatal("zero inputs should cascade to zero")
	}
	if !out.RetailPrice.Valid || !out.RetailPrice.Decimal.IsZero() {
		t.Fatalf("retail price should be zero, got %+v", out.RetailPrice)
	}
}
