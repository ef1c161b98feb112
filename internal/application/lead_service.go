package application

import (
	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const (
	defaultLeadPage    = 1
	defaultLeadPerPage = 100
	defaultLeadOrderBy = "created_at"
)

// LeadService struct - Application service implementing lead queries
type LeadService struct {
	repo output.LeadRepository
}

// NewLeadService func - Creates new lead service
func NewLeadService(repo output.LeadRepository) *LeadService {
	return &LeadService{
		repo: repo,
	}
}

// GetLeads func - Use case: Get leads with pagination and filtering
func (s *LeadService) GetLeads(condition domain.QueryLeadRequest) (*domain.LeadListResponse, error) {
	var (
		page    int
		perPage int
		offset  int
	)
	if condition.Page != nil && *condition.Page > 0 {
		page = *condition.Page
	} else {
		page = defaultLeadPage
	}
	condition.Page = &page
	if condition.Limit != nil && *condition.Limit > 0 {
		perPage = *condition.Limit
	} else {
		perPage = defaultLeadPerPage
	}
	condition.Limit = &perPage
	offset = (page - 1) * perPage
	condition.Pagination = &domain.Pagination{
		Limit:  perPage,
		Offset: offset,
	}

	// Newest first unless asked otherwise
	asc := false
	if condition.Asc != nil {
		asc = *condition.Asc
	}
	orderBy := defaultLeadOrderBy
	if condition.OrderBy != nil && *condition.OrderBy != "" {
		orderBy = *condition.OrderBy
	}
	condition.SortMethod = &domain.SortMethod{
		Asc:     asc,
		OrderBy: orderBy,
	}

	result, err := s.repo.GetLeads(condition)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}
