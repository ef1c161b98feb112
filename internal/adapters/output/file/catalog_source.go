package file

import (
	"context"
	"fmt"
	"os"

	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var _ output.CatalogSource = (*CatalogSource)(nil)

// catalogFile is the on-disk layout of the product list
type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// CatalogSource struct - Reads the product catalog from a YAML file
type CatalogSource struct {
	path string
}

// NewCatalogSource func - Creates a catalog source for the given file
func NewCatalogSource(path string) *CatalogSource {
	return &CatalogSource{path: path}
}

// LoadCatalog reads products in file order. Position follows the file order.
func (s *CatalogSource) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", s.path, err)
	}

	for i := range doc.Products {
		doc.Products[i].Position = i
	}
	logrus.Debugf("Read %d products from %s", len(doc.Products), s.path)
	return doc.Products, nil
}
