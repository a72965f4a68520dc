package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lamnguyen-dev/tilecat-backend/pkg/db/models"
	pkgerrors "github.com/lamnguyen-dev/tilecat-backend/pkg/errors"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/redis"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:catalog_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Supplier{}, &models.BrickPattern{}, &models.ActualSize{},
		&models.Color{}, &models.BrickBody{}, &models.Material{},
		&models.SurfaceFeature{}, &models.OriginCountry{}, &models.CompanyCode{},
		&models.Processing{}, &models.ProductFactory{}, &models.Tax{},
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

type fakeCache struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload, ok := value.([]byte)
	if !ok {
		return errors.New("unexpected cache payload type")
	}
	f.data[key] = string(payload)
	f.sets++
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeCache) CacheKey(parts ...string) string {
	return "tc:cache:" + strings.Join(parts, ":")
}

func TestListUnknownName(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)), nil, time.Minute, nil)

	_, err := svc.List(context.Background(), "no-such-list")
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestListReadsThroughCache(t *testing.T) {
	db := newTestDB(t)
	seedReferenceData(t, db)
	cache := newFakeCache()
	svc := NewService(NewRepository(db), cache, time.Minute, nil)
	ctx := context.Background()

	out, err := svc.List(ctx, ListSuppliers)
	if err != nil {
		t.Fatalf("list suppliers: %v", err)
	}
	suppliers, ok := out.([]SupplierDTO)
	if !ok || len(suppliers) != 1 {
		t.Fatalf("unexpected payload %#v", out)
	}
	if suppliers[0].ShortCode != "HCMD5" {
		t.Fatalf("unexpected supplier %+v", suppliers[0])
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// Second read is served from the cache, so wiping the table changes nothing.
	if err := db.Where("1 = 1").Delete(&models.Supplier{}).Error; err != nil {
		t.Fatalf("delete suppliers: %v", err)
	}
	out, err = svc.List(ctx, ListSuppliers)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if suppliers = out.([]SupplierDTO); len(suppliers) != 1 {
		t.Fatalf("expected cached supplier, got %d rows", len(suppliers))
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit should not rewrite, got %d writes", cache.sets)
	}
}

func TestListSurvivesCacheFailure(t *testing.T) {
	db := newTestDB(t)
	seedReferenceData(t, db)
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	svc := NewService(NewRepository(db), cache, time.Minute, nil)

	out, err := svc.List(context.Background(), ListTaxes)
	if err != nil {
		t.Fatalf("list taxes with broken cache: %v", err)
	}
	taxes := out.([]TaxDTO)
	if len(taxes) != 1 || taxes[0].Rate != 10 {
		t.Fatalf("unexpected taxes %+v", taxes)
	}
}

func TestTablesSnapshot(t *testing.T) {
	db := newTestDB(t)
	seedReferenceData(t, db)
	svc := NewService(NewRepository(db), newFakeCache(), time.Minute, nil)

	tables, err := svc.Tables(context.Background())
	if err != nil {
		t.Fatalf("tables: %v", err)
	}

	supplier, ok := tables.Supplier(1)
	if !ok || supplier.ShortCode != "HCMD5" || supplier.CombinedCode != "SUP9" {
		t.Fatalf("supplier snapshot: %+v ok=%v", supplier, ok)
	}
	size, ok := tables.Size(1)
	if !ok || size.Wide != 600 || size.Length != 600 {
		t.Fatalf("size snapshot: %+v ok=%v", size, ok)
	}
	tax, ok := tables.Tax(1)
	if !ok || tax.Rate != 10 {
		t.Fatalf("tax snapshot: %+v ok=%v", tax, ok)
	}
	if _, ok := tables.Supplier(99); ok {
		t.Fatal("unknown id should miss")
	}
}

func TestInvalidateDropsEveryList(t *testing.T) {
	db := newTestDB(t)
	seedReferenceData(t, db)
	cache := newFakeCache()
	svc := NewService(NewRepository(db), cache, time.Minute, nil)
	ctx := context.Background()

	for _, name := range ListNames() {
		if _, err := svc.List(ctx, name); err != nil {
			t.Fatalf("list %s: %v", name, err)
		}
	}
	cache.mu.Lock()
	cached := len(cache.data)
	cache.mu.Unlock()
	if cached != len(ListNames()) {
		t.Fatalf("expected %d cached lists, got %d", len(ListNames()), cached)
	}

	if err := svc.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	cache.mu.Lock()
	cached = len(cache.data)
	cache.mu.Unlock()
	if cached != 0 {
		t.Fatalf("expected empty cache, got %d keys", cached)
	}
}
