package domain

import "errors"

// Catalog error types

var (
	// ErrEmptyCatalog indicates the catalog source returned no products
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrDuplicateProduct indicates two catalog items share a name
	ErrDuplicateProduct = errors.New("duplicate product name")

	// ErrProductImageNotFound indicates a catalog item has no configured image
	ErrProductImageNotFound = errors.New("product image not found")
)

// WhatsApp error types

var (
	// ErrWhatsAppUnavailable indicates the Graph API could not be reached or returned 5xx
	ErrWhatsAppUnavailable = errors.New("whatsapp api unavailable")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")
)

// Persistence error types

var (
	// ErrLeadNotPersisted indicates the collected lead could not be appended,
	// so the conversation must stay open
	ErrLeadNotPersisted = errors.New("lead could not be persisted")
)
