package postgres

import (
	"context"

	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var _ output.CatalogSource = (*CatalogRepository)(nil)

// CatalogRepository struct - Reads the product catalog from the products table
type CatalogRepository struct {
	dbGorm *gorm.DB
}

// NewCatalogRepository func - Creates new PostgreSQL catalog source
func NewCatalogRepository(dbGorm *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		dbGorm: dbGorm,
	}
}

// LoadCatalog func - Returns all products in display order
func (p *CatalogRepository) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := p.dbGorm.WithContext(ctx).Order("position ASC").Order("id ASC").Find(&products).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return products, nil
}

// SeedIfEmpty inserts products when the table has none. It returns the
// number of rows written.
func (p *CatalogRepository) SeedIfEmpty(ctx context.Context, products []domain.Product) (int, error) {
	var count int64
	if err := p.dbGorm.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 || len(products) == 0 {
		return 0, nil
	}
	rows := make([]domain.Product, len(products))
	copy(rows, products)
	if err := p.dbGorm.WithContext(ctx).Create(&rows).Error; err != nil {
		logrus.Errorln(err)
		return 0, err
	}
	return len(rows), nil
}
