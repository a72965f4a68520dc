package products

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lamnguyen-dev/tilecat-backend/internal/catalog"
	"github.com/lamnguyen-dev/tilecat-backend/internal/derive"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/config"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/db/models"
	pkgerrors "github.com/lamnguyen-dev/tilecat-backend/pkg/errors"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:products_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Supplier{}, &models.BrickPattern{}, &models.ActualSize{},
		&models.Color{}, &models.BrickBody{}, &models.Material{},
		&models.SurfaceFeature{}, &models.OriginCountry{}, &models.CompanyCode{},
		&models.Processing{}, &models.ProductFactory{}, &models.Tax{},
		&models.Product{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func seedReferenceData(t *testing.T, db *gorm.DB) {
	t.Helper()
	fixtures := []any{
		&models.Supplier{Name: "HCM Distributor 5", ShortCode: "HCMD5", CombinedCode: "SUP9"},
		&models.BrickPattern{Name: "Vân đá", ShortName: "VĐ", ShortCode: "VN"},
		&models.ActualSize{Name: "60x60", Wide: 600, Length: 600},
		&models.Color{Name: "Trắng"},
		&models.BrickBody{Name: "Xương trắng"},
		&models.Material{Name: "Porcelain", ShortName: "PCL"},
		&models.SurfaceFeature{Name: "Men mờ", ShortCode: "M1"},
		&models.OriginCountry{Name: "Việt Nam", UpperName: "VIỆT NAM"},
		&models.CompanyCode{CodeName: "AK01"},
		&models.Processing{Name: "Cắt cạnh"},
		&models.ProductFactory{Name: "Nhà máy 1"},
		&models.Tax{Name: "VAT 10%", Rate: 10},
	}
	for _, fixture := range fixtures {
		if err := db.Create(fixture).Error; err != nil {
			t.Fatalf("seed %T: %v", fixture, err)
		}
	}
}

type fakeSequencer struct {
	n   int64
	err error
}

func (f *fakeSequencer) NextSequence(_ context.Context, _ string, start int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.n++
	return start + f.n, nil
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedReferenceData(t, db)
	cat := catalog.NewService(catalog.NewRepository(db), nil, time.Minute, nil)
	seqCfg := config.SequenceConfig{CounterName: "order_number", Start: 10000}
	uniqCfg := config.UniquenessConfig{Timeout: time.Second}
	svc := NewService(NewRepository(db), cat, &fakeSequencer{}, seqCfg, uniqCfg, nil)
	return svc, db
}

func ptr(v int64) *int64 { return &v }

func fullDraft() DraftInput {
	return DraftInput{
		SupplierID:       ptr(1),
		CompanyCodeID:    ptr(1),
		BrickPatternID:   ptr(1),
		ActualSizeID:     ptr(1),
		ColorID:          ptr(1),
		BrickBodyID:      ptr(1),
		MaterialID:       ptr(1),
		SurfaceFeatureID: ptr(1),
		OriginCountryID:  ptr(1),
		TaxID:            ptr(1),

		SupplierItemCode:   "X7Y8Z9",
		ProductSpecialNote: "Gạch lát nền",
		OrderNumber:        "42",

		ListPrice:             decimal.NewFromInt(200000),
		PolicyStandardPercent: decimal.NewFromInt(40),
		FirstPolicyPercent:    decimal.NewFromInt(30),
	}
}

func TestCreateDerivesEverything(t *testing.T) {
	svc, _ := newTestService(t)

	out, err := svc.Create(context.Background(), fullDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.ID == uuid.Nil {
		t.Fatal("expected assigned id")
	}
	if out.AutoBarCode != "HCMD5.42VN" {
		t.Fatalf("autoBarCode: got %q", out.AutoBarCode)
	}
	if out.ProductCode != "HCMD5.42" {
		t.Fatalf("productCode: got %q", out.ProductCode)
	}
	if out.SKU != "AK01-SUP9-X7Y8Z9-M1" {
		t.Fatalf("sku: got %q", out.SKU)
	}
	if out.WebsiteName == "" || out.SapoName == "" {
		t.Fatalf("display names missing: %q / %q", out.WebsiteName, out.SapoName)
	}
	if !out.Pricing.RetailPrice.Valid {
		t.Fatal("retail price should be derived")
	}
	if !out.Pricing.ConfirmListPrice.Equal(decimal.NewFromInt(200000)) {
		t.Fatalf("confirm list price: got %s", out.Pricing.ConfirmListPrice)
	}
}

func TestCreateIncompleteInputLeavesSentinels(t *testing.T) {
	svc, _ := newTestService(t)

	input := fullDraft()
	input.OrderNumber = ""
	out, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.AutoBarCode != "" || out.ProductCode != "" || out.WebsiteName != "" {
		t.Fatalf("expected empty sentinels, got %q / %q / %q", out.AutoBarCode, out.ProductCode, out.WebsiteName)
	}
	if out.SKU == "" {
		t.Fatal("sku does not need the order number")
	}
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc, _ := newTestService(t)

	input := fullDraft()
	input.ListPrice = decimal.NewFromInt(-1)
	_, err := svc.Create(context.Background(), input)
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateRecomputesDerivedFields(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	if err := db.Create(&models.Supplier{Name: "Other", ShortCode: "OTH1", CombinedCode: "SUP2"}).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}

	created, err := svc.Create(ctx, fullDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	input := fullDraft()
	input.SupplierID = ptr(2)
	updated, err := svc.Update(ctx, created.ID, input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.AutoBarCode != "OTH1.42VN" {
		t.Fatalf("autoBarCode after update: got %q", updated.AutoBarCode)
	}
	if updated.SKU != "AK01-SUP2-X7Y8Z9-M1" {
		t.Fatalf("sku after update: got %q", updated.SKU)
	}
}

func TestGetAndDeleteNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, uuid.New())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("get: expected not-found, got %v", err)
	}
	err = svc.Delete(ctx, uuid.New())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("delete: expected not-found, got %v", err)
	}
}

func TestDeleteRemovesProduct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, fullDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = svc.Get(ctx, created.ID)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestListFiltersAndPaginates(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	if err := db.Create(&models.Supplier{Name: "Other", ShortCode: "OTH1", CombinedCode: "SUP2"}).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}

	for i := 0; i < 3; i++ {
		input := fullDraft()
		input.SupplierItemCode = fmt.Sprintf("CODE%02d", i)
		if _, err := svc.Create(ctx, input); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	other := fullDraft()
	other.SupplierID = ptr(2)
	other.SupplierItemCode = "OTHER1"
	if _, err := svc.Create(ctx, other); err != nil {
		t.Fatalf("create other: %v", err)
	}

	rows, total, err := svc.List(ctx, Filter{}, pagination.Params{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 4 || len(rows) != 2 {
		t.Fatalf("expected total 4 page of 2, got total %d len %d", total, len(rows))
	}

	rows, total, err = svc.List(ctx, Filter{SupplierID: ptr(2)}, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].SupplierItemCode != "OTHER1" {
		t.Fatalf("supplier filter failed: total %d rows %+v", total, rows)
	}

	rows, total, err = svc.List(ctx, Filter{Search: "CODE01"}, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list search: %v", err)
	}
	if total != 1 || rows[0].SupplierItemCode != "CODE01" {
		t.Fatalf("search filter failed: total %d", total)
	}
}

func TestCheckItemCode(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.CheckItemCode(ctx, "  ")
	if err != nil || out.Exists {
		t.Fatalf("blank code: %+v err %v", out, err)
	}

	if _, err := svc.Create(ctx, fullDraft()); err != nil {
		t.Fatalf("create: %v", err)
	}
	out, err = svc.CheckItemCode(ctx, "X7Y8Z9")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !out.Exists {
		t.Fatal("expected existing code to be reported")
	}
	out, err = svc.CheckItemCode(ctx, "FRESH1")
	if err != nil || out.Exists {
		t.Fatalf("fresh code: %+v err %v", out, err)
	}
}

func TestAllocateOrderNumber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.AllocateOrderNumber(ctx)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if first.OrderNumber != "10001" {
		t.Fatalf("expected 10001, got %q", first.OrderNumber)
	}
	second, err := svc.AllocateOrderNumber(ctx)
	if err != nil {
		t.Fatalf("allocate again: %v", err)
	}
	if second.OrderNumber != "10002" {
		t.Fatalf("expected 10002, got %q", second.OrderNumber)
	}
}

func TestAllocateOrderNumberDependencyErrors(t *testing.T) {
	db := newTestDB(t)
	seedReferenceData(t, db)
	cat := catalog.NewService(catalog.NewRepository(db), nil, time.Minute, nil)
	seqCfg := config.SequenceConfig{CounterName: "order_number", Start: 10000}

	svc := NewService(NewRepository(db), cat, nil, seqCfg, config.UniquenessConfig{}, nil)
	_, err := svc.AllocateOrderNumber(context.Background())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("nil sequencer: expected dependency error, got %v", err)
	}

	svc = NewService(NewRepository(db), cat, &fakeSequencer{err: errors.New("connection refused")}, seqCfg, config.UniquenessConfig{}, nil)
	_, err = svc.AllocateOrderNumber(context.Background())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("failing sequencer: expected dependency error, got %v", err)
	}
}

func TestNewItemCodeCheckerReportsForFinalInput(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Create(context.Background(), fullDraft()); err != nil {
		t.Fatalf("create: %v", err)
	}

	var mu sync.Mutex
	var results []derive.CheckResult
	report := func(r derive.CheckResult) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	}
	cfg := config.UniquenessConfig{Debounce: 20 * time.Millisecond, Timeout: time.Second}
	checker := NewItemCodeChecker(svc, cfg, report)
	defer checker.Stop()

	checker.Submit("X7")
	checker.Submit("X7Y8Z9")

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(results)
		mu.Unlock()
		if n >= 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("checker never reported")
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	got := results[0]
	mu.Unlock()
	if got.Code != "X7Y8Z9" || got.Status != derive.StatusDuplicate {
		t.Fatalf("expected duplicate for the final input, got %+v", got)
	}
}

func TestPreviewStrategy(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	out, err := svc.PreviewStrategy(ctx, StrategyInput{
		TaxID:                 ptr(1),
		ListPrice:             decimal.NewFromInt(100000),
		PolicyStandardPercent: decimal.NewFromInt(40),
		FirstPolicyPercent:    decimal.NewFromInt(30),
	})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !out.RetailPrice.Valid {
		t.Fatal("retail price should be defined")
	}
	wantActual := out.FirstFixedPolicyPrice.Decimal.Mul(decimal.NewFromFloat(1.1))
	if !out.FirstActualReceivedPrice.Decimal.Equal(wantActual) {
		t.Fatalf("tax not applied: got %s want %s", out.FirstActualReceivedPrice.Decimal, wantActual)
	}

	_, err = svc.PreviewStrategy(ctx, StrategyInput{TaxID: ptr(99)})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unknown tax: expected validation error, got %v", err)
	}
}
