package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Forbidden response
	Forbidden = Status{Code: http.StatusForbidden, Message: []string{"Sorry, Permission denied"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`

	CurrentPage *int   `json:"current_page,omitempty"`
	PerPage     *int   `json:"per_page,omitempty"`
	TotalItem   *int64 `json:"total_item,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// LeadResponse struct - HTTP response DTO for a single lead
	LeadResponse struct {
		ID              *uuid.UUID `json:"id,omitempty" mapstructure:"id"`
		PhoneNumber     string     `json:"phone_number" mapstructure:"phone_number"`
		FullName        string     `json:"full_name" mapstructure:"full_name"`
		Country         string     `json:"country" mapstructure:"country"`
		CompanyName     string     `json:"company_name" mapstructure:"company_name"`
		Email           string     `json:"email" mapstructure:"email"`
		SelectedProduct string     `json:"selected_product" mapstructure:"selected_product"`
		CreatedAt       *time.Time `json:"created_at,omitempty" mapstructure:"created_at"`
	}

	// ProductResponse struct - HTTP response DTO for a catalog item
	ProductResponse struct {
		Index       int    `json:"index" mapstructure:"index"`
		Name        string `json:"name" mapstructure:"name"`
		Description string `json:"description" mapstructure:"description"`
		ImageURL    string `json:"image_url,omitempty" mapstructure:"image_url"`
	}
)
