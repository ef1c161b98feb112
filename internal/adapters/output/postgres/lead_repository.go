package postgres

import (
	"context"
	"net/url"

	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var _ output.LeadRepository = (*LeadRepository)(nil)

// orderableColumns lists the lead columns accepted in order_by
var orderableColumns = map[string]bool{
	"created_at":       true,
	"full_name":        true,
	"country":          true,
	"company_name":     true,
	"email":            true,
	"selected_product": true,
}

// LeadRepository struct - Secondary/Driven adapter for PostgreSQL
type LeadRepository struct {
	dbGorm *gorm.DB
}

// NewLeadRepository func - Creates new PostgreSQL repository
func NewLeadRepository(dbGorm *gorm.DB) *LeadRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &LeadRepository{
		dbGorm: dbGorm,
	}
}

// AppendLead func - Inserts one completed enquiry
func (p *LeadRepository) AppendLead(ctx context.Context, data domain.LeadData) (*domain.Lead, error) {
	lead := domain.NewLead(data)
	if err := p.dbGorm.WithContext(ctx).Create(lead).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return lead, nil
}

func (p *LeadRepository) condition(tx *gorm.DB, condition domain.QueryLeadRequest) (*gorm.DB, error) {
	if condition.Country != nil {
		keyword, err := url.QueryUnescape(*condition.Country)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("country ILIKE ? ", "%"+keyword+"%")
	}
	if condition.Email != nil {
		keyword, err := url.QueryUnescape(*condition.Email)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("email ILIKE ? ", "%"+keyword+"%")
	}
	return tx, nil
}

// orderClause builds a safe ORDER BY from the sort method
func orderClause(sort *domain.SortMethod) string {
	order := "created_at"
	asc := false
	if sort != nil {
		if orderableColumns[sort.OrderBy] {
			order = sort.OrderBy
		}
		asc = sort.Asc
	}
	if asc {
		return order + " ASC"
	}
	return order + " DESC"
}

// GetLeads func - Retrieves leads with filtering and pagination
func (p *LeadRepository) GetLeads(condition domain.QueryLeadRequest) (*domain.LeadListResponse, error) {
	var (
		lead  domain.Lead
		leads []domain.Lead
	)
	tx, err := p.condition(p.dbGorm.Model(&lead), condition)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	var totalItem int64
	if err := tx.Count(&totalItem).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	tx = tx.Order(orderClause(condition.SortMethod))
	if condition.Pagination != nil {
		tx = tx.Limit(condition.Pagination.Limit).Offset(condition.Pagination.Offset)
	}

	if err := tx.Find(&leads).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	result := domain.LeadListResponse{
		Leads: []domain.LeadResponse{},
	}
	result.CurrentPage = condition.Page
	if condition.Pagination != nil {
		result.PerPage = &condition.Pagination.Limit
	}
	result.TotalItem = &totalItem
	for _, l := range leads {
		result.Leads = append(result.Leads, domain.NewLeadResponse(l))
	}
	return &result, nil
}
