package http

import (
	"context"
	"time"

	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/input"
	gormdriver "whatsapp-leadbot/pkg/database_driver/gorm"
	"whatsapp-leadbot/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

// HTTPHandler struct - Primary/Driving adapter for the admin HTTP API
type HTTPHandler struct {
	leadSrv    input.LeadService
	catalogSrv input.CatalogService
	db         *gorm.DB
	validator  validator.Validator
}

// New func - Creates new HTTP handler. leadSrv and db may be nil when no
// database is configured.
func New(leadSrv input.LeadService, catalogSrv input.CatalogService, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		leadSrv:    leadSrv,
		catalogSrv: catalogSrv,
		db:         db,
		validator:  validator.New(),
	}
}

// HealthCheck func
// HealthCheck godoc
// @Summary Health check
// @Description Pings the database when one is configured
// @Tags Health
// @Produce json
// @Success 200 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /health [get]
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if hdl.db != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()
		if err := gormdriver.Ping(ctx, hdl.db); err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// GetLeads func
// GetLeads godoc
// @Summary List leads
// @Description Lists collected enquiries, newest first by default
// @Tags Leads
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/leads [get]
// @Produce json
// @param page query int false "page"
// @param limit query int false "limit"
// @param order_by query string false "order_by"
// @param asc query bool false "asc"
// @param country query string false "country"
// @param email query string false "email"
func (hdl *HTTPHandler) GetLeads(c *fiber.Ctx) error {
	if hdl.leadSrv == nil {
		return c.Status(fiber.StatusNotFound).JSON(ResponseBody{Status: Status{Code: fiber.StatusNotFound, Message: []string{"Lead storage is not configured"}}})
	}

	condition := QueryLeadRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(condition); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	// Convert HTTP query request to domain query request
	domainCondition := domain.QueryLeadRequest{
		Country: condition.Country,
		Email:   condition.Email,
		Limit:   condition.Limit,
		Page:    condition.Page,
		OrderBy: condition.OrderBy,
		Asc:     condition.Asc,
	}
	result, err := hdl.leadSrv.GetLeads(domainCondition)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	data := make([]LeadResponse, 0, len(result.Leads))
	for _, lead := range result.Leads {
		data = append(data, LeadResponse{
			ID:              lead.ID,
			PhoneNumber:     lead.PhoneNumber,
			FullName:        lead.FullName,
			Country:         lead.Country,
			CompanyName:     lead.CompanyName,
			Email:           lead.Email,
			SelectedProduct: lead.SelectedProduct,
			CreatedAt:       lead.CreatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        data,
		CurrentPage: result.CurrentPage,
		PerPage:     result.PerPage,
		TotalItem:   result.TotalItem,
	})
}

// GetProducts func
// GetProducts godoc
// @Summary List products
// @Description Lists the catalog in display order with each card image
// @Tags Products
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/products [get]
// @Produce json
func (hdl *HTTPHandler) GetProducts(c *fiber.Ctx) error {
	products := hdl.catalogSrv.GetProducts()
	data := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, ProductResponse{
			Index:       p.Index,
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
		})
	}
	total := int64(len(data))
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: data, TotalItem: &total})
}
