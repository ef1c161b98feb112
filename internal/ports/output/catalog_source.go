package output

import (
	"context"

	"whatsapp-leadbot/internal/domain"
)

// CatalogSource interface - Output port
// Loads the ordered product list once at startup
type CatalogSource interface {
	LoadCatalog(ctx context.Context) ([]domain.Product, error)
}
