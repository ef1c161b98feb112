package input

import "whatsapp-leadbot/internal/domain"

// LeadService interface - Input port (use case)
// Defines what the application can do with persisted leads
type LeadService interface {
	GetLeads(condition domain.QueryLeadRequest) (*domain.LeadListResponse, error)
}

// CatalogService interface - Input port (use case)
// Exposes the catalog loaded at startup
type CatalogService interface {
	GetProducts() []domain.ProductResponse
}
