package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// TemplateMessageRequest struct - Domain WhatsApp template message request DTO
	TemplateMessageRequest struct {
		PhoneNumberID string
		To            string
		Name          string
		LanguageCode  string
		Components    []TemplateComponent
	}

	// TemplateComponent struct - Header or body section of a template
	TemplateComponent struct {
		Type       TemplateComponentType
		Parameters []TemplateParameter
	}

	// TemplateParameter struct - Value substituted into a template placeholder
	TemplateParameter struct {
		Type      TemplateParameterType
		Text      string // For text
		ImageLink string // For image
	}

	// TextMessageRequest struct - Domain WhatsApp text message request DTO
	TextMessageRequest struct {
		PhoneNumberID string
		To            string
		Body          string
	}

	// MarkReadRequest struct - Domain WhatsApp read receipt request DTO
	MarkReadRequest struct {
		PhoneNumberID string
		MessageID     string
	}

	// MessageResponse struct - Domain WhatsApp API response DTO
	MessageResponse struct {
		MessageID string
		Success   bool
	}

	// QueryLeadRequest struct - Domain query request DTO
	QueryLeadRequest struct {
		Country *string
		Email   *string

		Limit      *int
		Page       *int
		OrderBy    *string
		Asc        *bool
		Pagination *Pagination
		SortMethod *SortMethod
	}

	// Pagination struct
	Pagination struct {
		Limit  int
		Offset int
	}

	// SortMethod struct
	SortMethod struct {
		Asc     bool
		OrderBy string
	}

	// LeadResponse struct - Domain response DTO
	LeadResponse struct {
		ID              *uuid.UUID `json:"id,omitempty"`
		PhoneNumber     string     `json:"phone_number"`
		FullName        string     `json:"full_name"`
		Country         string     `json:"country"`
		CompanyName     string     `json:"company_name"`
		Email           string     `json:"email"`
		SelectedProduct string     `json:"selected_product"`
		CreatedAt       *time.Time `json:"created_at,omitempty"`
	}

	// LeadListResponse struct - Domain list response DTO
	LeadListResponse struct {
		Leads       []LeadResponse
		CurrentPage *int
		PerPage     *int
		TotalItem   *int64
	}

	// ProductResponse struct - Catalog item with its card image
	ProductResponse struct {
		Index       int
		Name        string
		Description string
		ImageURL    string
	}
)

// TemplateComponentType represents a template section
type TemplateComponentType string

const (
	// TemplateComponentHeader - Header section
	TemplateComponentHeader TemplateComponentType = "header"
	// TemplateComponentBody - Body section
	TemplateComponentBody TemplateComponentType = "body"
)

// TemplateParameterType represents the type of a template parameter
type TemplateParameterType string

const (
	// TemplateParameterText - Text parameter
	TemplateParameterText TemplateParameterType = "text"
	// TemplateParameterImage - Image parameter
	TemplateParameterImage TemplateParameterType = "image"
)

// NewLeadResponse func - Converts a lead entity into a response DTO
func NewLeadResponse(lead Lead) LeadResponse {
	return LeadResponse{
		ID:              lead.ID,
		PhoneNumber:     lead.PhoneNumber,
		FullName:        lead.FullName,
		Country:         lead.Country,
		CompanyName:     lead.CompanyName,
		Email:           lead.Email,
		SelectedProduct: lead.SelectedProduct,
		CreatedAt:       lead.CreatedAt,
	}
}
