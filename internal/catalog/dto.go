package catalog

import "github.com/lamnguyen-dev/tilecat-backend/pkg/db/models"

// List names as they appear in the reference API path. The dashboard renders
// one dropdown per list.
const (
	ListSuppliers        = "suppliers"
	ListBrickPatterns    = "brick-patterns"
	ListActualSizes      = "actual-sizes"
	ListColors           = "colors"
	ListBrickBodies      = "brick-bodies"
	ListMaterials        = "materials"
	ListSurfaceFeatures  = "surface-features"
	ListOriginCountries  = "origin-countries"
	ListCompanyCodes     = "company-codes"
	ListProcessings      = "processings"
	ListProductFactories = "product-factories"
	ListTaxes            = "taxes"
)

// ListNames returns every reference list name in display order.
func ListNames() []string {
	return []string{
		ListSuppliers,
		ListBrickPatterns,
		ListActualSizes,
		ListColors,
		ListBrickBodies,
		ListMaterials,
		ListSurfaceFeatures,
		ListOriginCountries,
		ListCompanyCodes,
		ListProcessings,
		ListProductFactories,
		ListTaxes,
	}
}

type SupplierDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortCode    string `json:"shortCode"`
	CombinedCode string `json:"combinedCode"`
}

type PatternDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	ShortCode string `json:"shortCode"`
}

type SizeDTO struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Wide   float64 `json:"wide"`
	Length float64 `json:"length"`
}

// NamedDTO covers the lists that only carry a display name: colors, brick
// bodies, processings and product factories.
type NamedDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MaterialDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type SurfaceDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
}

type OriginDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UpperName string `json:"upperName"`
}

type CompanyCodeDTO struct {
	ID       int64  `json:"id"`
	CodeName string `json:"codeName"`
}

type TaxDTO struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

func toSupplierDTOs(rows []models.Supplier) []SupplierDTO {
	out := make([]SupplierDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, SupplierDTO{
			ID:           row.ID,
			Name:         row.Name,
			ShortCode:    row.ShortCode,
			CombinedCode: row.CombinedCode,
		})
	}
	return out
}

func toPatternDTOs(rows []models.BrickPattern) []PatternDTO {
	out := make([]PatternDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, PatternDTO{
			ID:        row.ID,
			Name:      row.Name,
			ShortName: row.ShortName,
			ShortCode: row.ShortCode,
		})
	}
	return out
}

func toSizeDTOs(rows []models.ActualSize) []SizeDTO {
	out := make([]SizeDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, SizeDTO{ID: row.ID, Name: row.Name, Wide: row.Wide, Length: row.Length})
	}
	return out
}

func toColorDTOs(rows []models.Color) []NamedDTO {
	out := make([]NamedDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, NamedDTO{ID: row.ID, Name: row.Name})
	}
	return out
}

func toBrickBodyDTOs(rows []models.BrickBody) []NamedDTO {
	out := make([]NamedDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, NamedDTO{ID: row.ID, Name: row.Name})
	}
	return out
}

func toMaterialDTOs(rows []models.Material) []MaterialDTO {
	out := make([]MaterialDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, MaterialDTO{ID: row.ID, Name: row.Name, ShortName: row.ShortName})
	}
	return out
}

func toSurfaceDTOs(rows []models.SurfaceFeature) []SurfaceDTO {
	out := make([]SurfaceDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, SurfaceDTO{ID: row.ID, Name: row.Name, ShortCode: row.ShortCode})
	}
	return out
}

func toOriginDTOs(rows []models.OriginCountry) []OriginDTO {
	out := make([]OriginDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, OriginDTO{ID: row.ID, Name: row.Name, UpperName: row.UpperName})
	}
	return out
}

func toCompanyCodeDTOs(rows []models.CompanyCode) []CompanyCodeDTO {
	out := make([]CompanyCodeDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, CompanyCodeDTO{ID: row.ID, CodeName: row.CodeName})
	}
	return out
}

func toProcessingDTOs(rows []models.Processing) []NamedDTO {
	out := make([]NamedDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, NamedDTO{ID: row.ID, Name: row.Name})
	}
	return out
}

func toFactoryDTOs(rows []models.ProductFactory) []NamedDTO {
	out := make([]NamedDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, NamedDTO{ID: row.ID, Name: row.Name})
	}
	return out
}

func toTaxDTOs(rows []models.Tax) []TaxDTO {
	out := make([]TaxDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, TaxDTO{ID: row.ID, Name: row.Name, Rate: row.Rate})
	}
	return out
}
