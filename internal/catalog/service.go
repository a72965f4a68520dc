package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lamnguyen-dev/tilecat-backend/internal/derive"
	pkgerrors "github.com/lamnguyen-dev/tilecat-backend/pkg/errors"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/logger"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/redis"
)

// Cache is the slice of the redis client the catalog needs. Reference lists
// are cached as JSON blobs under one key per list.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CacheKey(parts ...string) string
}

// Service serves the reference lists to the dashboard and snapshots them for
// the derivation engine.
type Service interface {
	List(ctx context.Context, name string) (any, error)
	Tables(ctx context.Context) (*derive.Tables, error)
	Invalidate(ctx context.Context) error
}

type service struct {
	repo  *Repository
	cache Cache
	ttl   time.Duration
	logg  *logger.Logger
}

// NewService wires the repository behind an optional cache. A nil cache means
// every read goes to the database.
func NewService(repo *Repository, cache Cache, ttl time.Duration, logg *logger.Logger) Service {
	return &service{repo: repo, cache: cache, ttl: ttl, logg: logg}
}

// List returns the named reference list as its DTO slice.
func (s *service) List(ctx context.Context, name string) (any, error) {
	switch name {
	case ListSuppliers:
		return s.suppliers(ctx)
	case ListBrickPatterns:
		return s.patterns(ctx)
	case ListActualSizes:
		return s.sizes(ctx)
	case ListColors:
		return s.colors(ctx)
	case ListBrickBodies:
		return s.brickBodies(ctx)
	case ListMaterials:
		return s.materials(ctx)
	case ListSurfaceFeatures:
		return s.surfaces(ctx)
	case ListOriginCountries:
		return s.origins(ctx)
	case ListCompanyCodes:
		return s.companyCodes(ctx)
	case ListProcessings:
		return s.processings(ctx)
	case ListProductFactories:
		return s.factories(ctx)
	case ListTaxes:
		return s.taxes(ctx)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown reference list")
	}
}

// Tables snapshots every reference list into the lookup maps the derivation
// engine reads. Lists come through the cache like any other read.
func (s *service) Tables(ctx context.Context) (*derive.Tables, error) {
	t := derive.NewTables()

	suppliers, err := s.suppliers(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range suppliers {
		t.Suppliers[row.ID] = derive.Supplier{ID: row.ID, Name: row.Name, ShortCode: row.ShortCode, CombinedCode: row.CombinedCode}
	}

	patterns, err := s.patterns(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range patterns {
		t.Patterns[row.ID] = derive.Pattern{ID: row.ID, Name: row.Name, ShortName: row.ShortName, ShortCode: row.ShortCode}
	}

	sizes, err := s.sizes(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range sizes {
		t.Sizes[row.ID] = derive.Size{ID: row.ID, Wide: row.Wide, Length: row.Length}
	}

	colors, err := s.colors(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range colors {
		t.Colors[row.ID] = derive.Color{ID: row.ID, Name: row.Name}
	}

	bodies, err := s.brickBodies(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range bodies {
		t.BodyColors[row.ID] = derive.BodyColor{ID: row.ID, Name: row.Name}
	}

	materials, err := s.materials(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range materials {
		t.Materials[row.ID] = derive.Material{ID: row.ID, Name: row.Name, ShortName: row.ShortName}
	}

	surfaces, err := s.surfaces(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range surfaces {
		t.Surfaces[row.ID] = derive.Surface{ID: row.ID, Name: row.Name, ShortCode: row.ShortCode}
	}

	origins, err := s.origins(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range origins {
		t.Origins[row.ID] = derive.Origin{ID: row.ID, Name: row.Name, UpperName: row.UpperName}
	}

	codes, err := s.companyCodes(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range codes {
		t.CompanyCodes[row.ID] = derive.CompanyCode{ID: row.ID, CodeName: row.CodeName}
	}

	processings, err := s.processings(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range processings {
		t.Processings[row.ID] = derive.Processing{ID: row.ID, Name: row.Name}
	}

	factories, err := s.factories(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range factories {
		t.Factories[row.ID] = derive.Factory{ID: row.ID, Name: row.Name}
	}

	taxes, err := s.taxes(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range taxes {
		t.Taxes[row.ID] = derive.Tax{ID: row.ID, Name: row.Name, Rate: row.Rate}
	}

	return t, nil
}

// Invalidate drops every cached reference list. Called after reference data
// maintenance so the next read repopulates from the database.
func (s *service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	keys := make([]string, 0, len(ListNames()))
	for _, name := range ListNames() {
		keys = append(keys, s.cache.CacheKey("reference", name))
	}
	return s.cache.Del(ctx, keys...)
}

func (s *service) suppliers(ctx context.Context) ([]SupplierDTO, error) {
	return cachedList(ctx, s, ListSuppliers, func(ctx context.Context) ([]SupplierDTO, error) {
		rows, err := s.repo.Suppliers(ctx)
		return toSupplierDTOs(rows), err
	})
}

func (s *service) patterns(ctx context.Context) ([]PatternDTO, error) {
	return cachedList(ctx, s, ListBrickPatterns, func(ctx context.Context) ([]PatternDTO, error) {
		rows, err := s.repo.BrickPatterns(ctx)
		return toPatternDTOs(rows), err
	})
}

func (s *service) sizes(ctx context.Context) ([]SizeDTO, error) {
	return cachedList(ctx, s, ListActualSizes, func(ctx context.Context) ([]SizeDTO, error) {
		rows, err := s.repo.ActualSizes(ctx)
		return toSizeDTOs(rows), err
	})
}

func (s *service) colors(ctx context.Context) ([]NamedDTO, error) {
	return cachedList(ctx, s, ListColors, func(ctx context.Context) ([]NamedDTO, error) {
		rows, err := s.repo.Colors(ctx)
		return toColorDTOs(rows), err
	})
}

func (s *service) brickBodies(ctx context.Context) ([]NamedDTO, error) {
	return cachedList(ctx, s, ListBrickBodies, func(ctx context.Context) ([]NamedDTO, error) {
		rows, err := s.repo.BrickBodies(ctx)
		return toBrickBodyDTOs(rows), err
	})
}

func (s *service) materials(ctx context.Context) ([]MaterialDTO, error) {
	return cachedList(ctx, s, ListMaterials, func(ctx context.Context) ([]MaterialDTO, error) {
		rows, err := s.repo.Materials(ctx)
		return toMaterialDTOs(rows), err
	})
}

func (s *service) surfaces(ctx context.Context) ([]SurfaceDTO, error) {
	return cachedList(ctx, s, ListSurfaceFeatures, func(ctx context.Context) ([]SurfaceDTO, error) {
		rows, err := s.repo.SurfaceFeatures(ctx)
		return toSurfaceDTOs(rows), err
	})
}

func (s *service) origins(ctx context.Context) ([]OriginDTO, error) {
	return cachedList(ctx, s, ListOriginCountries, func(ctx context.Context) ([]OriginDTO, error) {
		rows, err := s.repo.OriginCountries(ctx)
		return toOriginDTOs(rows), err
	})
}

func (s *service) companyCodes(ctx context.Context) ([]CompanyCodeDTO, error) {
	return cachedList(ctx, s, ListCompanyCodes, func(ctx context.Context) ([]CompanyCodeDTO, error) {
		rows, err := s.repo.CompanyCodes(ctx)
		return toCompanyCodeDTOs(rows), err
	})
}

func (s *service) processings(ctx context.Context) ([]NamedDTO, error) {
	return cachedList(ctx, s, ListProcessings, func(ctx context.Context) ([]NamedDTO, error) {
		rows, err := s.repo.Processings(ctx)
		return toProcessingDTOs(rows), err
	})
}

func (s *service) factories(ctx context.Context) ([]NamedDTO, error) {
	return cachedList(ctx, s, ListProductFactories, func(ctx context.Context) ([]NamedDTO, error) {
		rows, err := s.repo.ProductFactories(ctx)
		return toFactoryDTOs(rows), err
	})
}

func (s *service) taxes(ctx context.Context) ([]TaxDTO, error) {
	return cachedList(ctx, s, ListTaxes, func(ctx context.Context) ([]TaxDTO, error) {
		rows, err := s.repo.Taxes(ctx)
		return toTaxDTOs(rows), err
	})
}

// cachedList reads the named list from the cache, falling back to the loader
// on miss or cache failure. Cache trouble never fails a read; it only costs a
// database round trip.
func cachedList[T any](ctx context.Context, s *service, name string, load func(context.Context) ([]T, error)) ([]T, error) {
	var key string
	if s.cache != nil {
		key = s.cache.CacheKey("reference", name)
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var out []T
			if jsonErr := json.Unmarshal([]byte(raw), &out); jsonErr == nil {
				return out, nil
			}
			if s.logg != nil {
				s.logg.Warn(s.logg.WithReferenceList(ctx, name), "discarding undecodable cached reference list")
			}
		case !errors.Is(err, redis.Nil):
			if s.logg != nil {
				s.logg.Error(s.logg.WithReferenceList(ctx, name), "reference cache read failed", err)
			}
		}
	}

	out, err := load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading reference list "+name)
	}

	if s.cache != nil {
		payload, err := json.Marshal(out)
		if err == nil {
			if setErr := s.cache.Set(ctx, key, payload, s.ttl); setErr != nil && s.logg != nil {
				s.logg.Error(s.logg.WithReferenceList(ctx, name), "reference cache write failed", setErr)
			}
		}
	}
	return out, nil
}
