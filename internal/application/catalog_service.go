package application

import "whatsapp-leadbot/internal/domain"

// CatalogService struct - Application service exposing the loaded catalog
type CatalogService struct {
	catalog *domain.Catalog
	images  domain.ProductImages
}

// NewCatalogService func - Creates new catalog service
func NewCatalogService(catalog *domain.Catalog, images domain.ProductImages) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		images:  images,
	}
}

// GetProducts func - Use case: List products in display order with their card image
func (s *CatalogService) GetProducts() []domain.ProductResponse {
	products := s.catalog.Products()
	out := make([]domain.ProductResponse, 0, len(products))
	for i, p := range products {
		imageURL, _ := s.images.Lookup(p.Name)
		out = append(out, domain.ProductResponse{
			Index:       i,
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    imageURL,
		})
	}
	return out
}
