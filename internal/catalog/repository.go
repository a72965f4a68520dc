package catalog

import (
	"context"

	"github.com/lamnguyen-dev/tilecat-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository loads the reference lists from the database. Lists are small and
// session-static, so every read is a plain ordered scan.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	var rows []models.Supplier
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) BrickPatterns(ctx context.Context) ([]models.BrickPattern, error) {
	var rows []models.BrickPattern
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) ActualSizes(ctx context.Context) ([]models.ActualSize, error) {
	var rows []models.ActualSize
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) Colors(ctx context.Context) ([]models.Color, error) {
	var rows []models.Color
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) BrickBodies(ctx context.Context) ([]models.BrickBody, error) {
	var rows []models.BrickBody
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) Materials(ctx context.Context) ([]models.Material, error) {
	var rows []models.Material
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) SurfaceFeatures(ctx context.Context) ([]models.SurfaceFeature, error) {
	var rows []models.SurfaceFeature
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) OriginCountries(ctx context.Context) ([]models.OriginCountry, error) {
	var rows []models.OriginCountry
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) CompanyCodes(ctx context.Context) ([]models.CompanyCode, error) {
	var rows []models.CompanyCode
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) Processings(ctx context.Context) ([]models.Processing, error) {
	var rows []models.Processing
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) ProductFactories(ctx context.Context) ([]models.ProductFactory, error) {
	var rows []models.ProductFactory
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *Repository) Taxes(ctx context.Context) ([]models.Tax, error) {
	var rows []models.Tax
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}
