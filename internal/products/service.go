package products

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lamnguyen-dev/tilecat-backend/internal/catalog"
	"github.com/lamnguyen-dev/tilecat-backend/internal/derive"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/config"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/db"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/db/models"
	pkgerrors "github.com/lamnguyen-dev/tilecat-backend/pkg/errors"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/logger"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sequencer allocates order numbers. The redis client satisfies it.
type Sequencer interface {
	NextSequence(ctx context.Context, name string, start int64) (int64, error)
}

// Service owns the product lifecycle. Every write path recomputes all derived
// fields from the submitted inputs; derived values sent by the client are
// ignored.
type Service interface {
	Create(ctx context.Context, input DraftInput) (*ProductDTO, error)
	Update(ctx context.Context, id uuid.UUID, input DraftInput) (*ProductDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter Filter, page pagination.Params) ([]ProductDTO, int64, error)
	CheckItemCode(ctx context.Context, code string) (*CodeCheckDTO, error)
	AllocateOrderNumber(ctx context.Context) (*OrderNumberDTO, error)
	PreviewStrategy(ctx context.Context, input StrategyInput) (*PricingDTO, error)
}

type service struct {
	repo    *Repository
	catalog catalog.Service
	seq     Sequencer
	seqCfg  config.SequenceConfig
	uniqCfg config.UniquenessConfig
	logg    *logger.Logger
}

// NewService wires the product service. seq may be nil in environments without
// redis; order-number allocation then reports a dependency error and the
// dashboard falls back to manual entry.
func NewService(repo *Repository, cat catalog.Service, seq Sequencer, seqCfg config.SequenceConfig, uniqCfg config.UniquenessConfig, logg *logger.Logger) Service {
	return &service{repo: repo, catalog: cat, seq: seq, seqCfg: seqCfg, uniqCfg: uniqCfg, logg: logg}
}

// NewItemCodeChecker builds the debounced checker that backs live item-code
// feedback, with the window and per-lookup timeout taken from configuration.
func NewItemCodeChecker(svc Service, cfg config.UniquenessConfig, report func(derive.CheckResult)) *derive.Checker {
	exists := func(ctx context.Context, code string) (bool, error) {
		out, err := svc.CheckItemCode(ctx, code)
		if err != nil {
			return false, err
		}
		return out.Exists, nil
	}
	return derive.NewChecker(exists, report, derive.CheckerOptions{
		Debounce: cfg.Debounce,
		Timeout:  cfg.Timeout,
	})
}

func (s *service) Create(ctx context.Context, input DraftInput) (*ProductDTO, error) {
	if err := validatePrices(input); err != nil {
		return nil, err
	}
	tables, err := s.catalog.Tables(ctx)
	if err != nil {
		return nil, err
	}

	product := &models.Product{ID: uuid.New()}
	applyInput(product, input, tables)

	if err := s.repo.Create(ctx, product); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "supplier item code already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithProductID(ctx, product.ID.String()), "product created")
	}
	return toDTO(product), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input DraftInput) (*ProductDTO, error) {
	if err := validatePrices(input); err != nil {
		return nil, err
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err)
	}
	tables, err := s.catalog.Tables(ctx)
	if err != nil {
		return nil, err
	}

	applyInput(product, input, tables)

	if err := s.repo.Update(ctx, product); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "supplier item code already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithProductID(ctx, product.ID.String()), "product updated")
	}
	return toDTO(product), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err)
	}
	return toDTO(product), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapLookupError(err)
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithProductID(ctx, id.String()), "product deleted")
	}
	return nil
}

func (s *service) List(ctx context.Context, filter Filter, page pagination.Params) ([]ProductDTO, int64, error) {
	page = pagination.Normalize(page)
	rows, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return toDTOs(rows), total, nil
}

func (s *service) CheckItemCode(ctx context.Context, code string) (*CodeCheckDTO, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return &CodeCheckDTO{Code: "", Exists: false}, nil
	}
	if s.uniqCfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uniqCfg.Timeout)
		defer cancel()
	}
	exists, err := s.repo.ExistsItemCode(ctx, code, uuid.Nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking item code")
	}
	return &CodeCheckDTO{Code: code, Exists: exists}, nil
}

func (s *service) AllocateOrderNumber(ctx context.Context) (*OrderNumberDTO, error) {
	if s.seq == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "order number sequence unavailable")
	}
	n, err := s.seq.NextSequence(ctx, s.seqCfg.CounterName, s.seqCfg.Start)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "order number sequence unavailable")
	}
	return &OrderNumberDTO{OrderNumber: strconv.FormatInt(n, 10)}, nil
}

func (s *service) PreviewStrategy(ctx context.Context, input StrategyInput) (*PricingDTO, error) {
	in := derive.PricingInputs{
		ListPrice:               input.ListPrice,
		SupplierRisingPrice:     input.SupplierRisingPrice,
		OtherPriceByCompany:     input.OtherPriceByCompany,
		ShippingFee:             input.ShippingFee,
		DiscountPercent:         input.DiscountPercent,
		SupplierDiscountCash:    input.SupplierDiscountCash,
		SupplierDiscountPercent: input.SupplierDiscountPercent,
		PolicyStandardPercent:   input.PolicyStandardPercent,
		FirstPolicyPercent:      input.FirstPolicyPercent,
		SecondPolicyPercent:     input.SecondPolicyPercent,
	}
	if input.TaxID != nil {
		tables, err := s.catalog.Tables(ctx)
		if err != nil {
			return nil, err
		}
		tax, ok := tables.Tax(*input.TaxID)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown tax id")
		}
		in.TaxRate = decimal.NewFromFloat(tax.Rate)
	}
	result := derive.ComputePricing(in)
	dto := toPricingDTO(result)
	return &dto, nil
}

// applyInput overwrites the product's inputs with the submitted draft and
// recomputes every derived column through the engine.
func applyInput(product *models.Product, input DraftInput, tables *derive.Tables) {
	product.SupplierID = input.SupplierID
	product.CompanyCodeID = input.CompanyCodeID
	product.BrickPatternID = input.BrickPatternID
	product.ActualSizeID = input.ActualSizeID
	product.ColorID = input.ColorID
	product.BrickBodyID = input.BrickBodyID
	product.MaterialID = input.MaterialID
	product.SurfaceFeatureID = input.SurfaceFeatureID
	product.OriginCountryID = input.OriginCountryID
	product.ProductFactoryID = input.ProductFactoryID
	product.ProcessingID = input.ProcessingID
	product.TaxID = input.TaxID

	product.SupplierItemCode = strings.TrimSpace(input.SupplierItemCode)
	product.ProductSpecialNote = strings.TrimSpace(input.ProductSpecialNote)
	product.OrderNumber = strings.TrimSpace(input.OrderNumber)
	product.QuantityPerBox = input.QuantityPerBox
	product.WeightPerBox = input.WeightPerBox

	product.ListPrice = input.ListPrice
	product.SupplierRisingPrice = input.SupplierRisingPrice
	product.OtherPriceByCompany = input.OtherPriceByCompany
	product.ShippingFee = input.ShippingFee
	product.DiscountPercent = input.DiscountPercent
	product.SupplierDiscountCash = input.SupplierDiscountCash
	product.SupplierDiscountPercent = input.SupplierDiscountPercent
	product.PolicyStandardPercent = input.PolicyStandardPercent
	product.FirstPolicyPercent = input.FirstPolicyPercent
	product.SecondPolicyPercent = input.SecondPolicyPercent

	draft := derive.Draft{
		SupplierID:    derefID(input.SupplierID),
		CompanyCodeID: derefID(input.CompanyCodeID),
		PatternID:     derefID(input.BrickPatternID),
		SizeID:        derefID(input.ActualSizeID),
		ColorID:       derefID(input.ColorID),
		BodyColorID:   derefID(input.BrickBodyID),
		MaterialID:    derefID(input.MaterialID),
		SurfaceID:     derefID(input.SurfaceFeatureID),
		OriginID:      derefID(input.OriginCountryID),
		TaxID:         derefID(input.TaxID),

		SupplierItemCode: product.SupplierItemCode,
		SpecialNote:      product.ProductSpecialNote,
		OrderNumber:      product.OrderNumber,

		Pricing: derive.PricingInputs{
			ListPrice:               input.ListPrice,
			SupplierRisingPrice:     input.SupplierRisingPrice,
			OtherPriceByCompany:     input.OtherPriceByCompany,
			ShippingFee:             input.ShippingFee,
			DiscountPercent:         input.DiscountPercent,
			SupplierDiscountCash:    input.SupplierDiscountCash,
			SupplierDiscountPercent: input.SupplierDiscountPercent,
			PolicyStandardPercent:   input.PolicyStandardPercent,
			FirstPolicyPercent:      input.FirstPolicyPercent,
			SecondPolicyPercent:     input.SecondPolicyPercent,
		},
	}
	draft.RecomputeAll(tables)

	product.AutoBarCode = draft.AutoBarCode
	product.ProductCode = draft.ProductCode
	product.SKU = draft.SKU
	product.ConfirmItemCode = draft.ConfirmItemCode
	product.WebsiteName = draft.WebsiteName
	product.SapoName = draft.SapoName

	product.ConfirmListPrice = draft.Prices.ConfirmListPrice
	product.SupplierEstimatedPayable = draft.Prices.SupplierEstimatedPayable
	product.EstimatedPurchasePrice = draft.Prices.EstimatedPurchasePrice
	product.RetailPrice = draft.Prices.RetailPrice
	product.FirstFixedPolicyPrice = draft.Prices.FirstFixedPolicyPrice
	product.SecondFixedPolicyPrice = draft.Prices.SecondFixedPolicyPrice
	product.FirstActualReceivedPrice = draft.Prices.FirstActualReceivedPrice
	product.SecondActualReceivedPrice = draft.Prices.SecondActualReceivedPrice
	product.FirstRemainingPrice = draft.Prices.FirstRemainingPrice
	product.SecondRemainingPrice = draft.Prices.SecondRemainingPrice
	product.OutOfPolicyOne = draft.Prices.OutOfPolicyOne
	product.OutOfPolicyTwo = draft.Prices.OutOfPolicyTwo
}

func toPricingDTO(result derive.PricingResult) PricingDTO {
	return PricingDTO{
		ConfirmListPrice:          result.ConfirmListPrice,
		SupplierEstimatedPayable:  result.SupplierEstimatedPayable,
		EstimatedPurchasePrice:    result.EstimatedPurchasePrice,
		RetailPrice:               result.RetailPrice,
		FirstFixedPolicyPrice:     result.FirstFixedPolicyPrice,
		SecondFixedPolicyPrice:    result.SecondFixedPolicyPrice,
		FirstActualReceivedPrice:  result.FirstActualReceivedPrice,
		SecondActualReceivedPrice: result.SecondActualReceivedPrice,
		FirstRemainingPrice:       result.FirstRemainingPrice,
		SecondRemainingPrice:      result.SecondRemainingPrice,
		OutOfPolicyOne:            result.OutOfPolicyOne,
		OutOfPolicyTwo:            result.OutOfPolicyTwo,
	}
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

// validatePrices rejects negative monetary inputs and out-of-range
// percentages before they reach the cascade.
func validatePrices(input DraftInput) error {
	amounts := map[string]decimal.Decimal{
		"listPrice":            input.ListPrice,
		"supplierRisingPrice":  input.SupplierRisingPrice,
		"otherPriceByCompany":  input.OtherPriceByCompany,
		"shippingFee":          input.ShippingFee,
		"supplierDiscountCash": input.SupplierDiscountCash,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, field+" must not be negative").
				WithDetails(map[string]string{"field": field})
		}
	}
	percents := map[string]decimal.Decimal{
		"discountPercent":         input.DiscountPercent,
		"supplierDiscountPercent": input.SupplierDiscountPercent,
		"policyStandardPercent":   input.PolicyStandardPercent,
		"firstPolicyPercent":      input.FirstPolicyPercent,
		"secondPolicyPercent":     input.SecondPolicyPercent,
	}
	for field, pct := range percents {
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return pkgerrors.New(pkgerrors.CodeValidation, field+" must be between 0 and 100").
				WithDetails(map[string]string{"field": field})
		}
	}
	return nil
}

func mapLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product")
}
