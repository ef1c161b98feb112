package output

import (
	"context"

	"whatsapp-leadbot/internal/domain"
)

// LeadRepository interface - Output port
// Defines what the application needs from lead persistence
type LeadRepository interface {
	// AppendLead stores one completed enquiry
	AppendLead(ctx context.Context, data domain.LeadData) (*domain.Lead, error)

	// GetLeads lists stored enquiries with filtering and pagination
	GetLeads(condition domain.QueryLeadRequest) (*domain.LeadListResponse, error)
}
