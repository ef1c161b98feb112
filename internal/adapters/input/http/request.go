package http

type (
	// QueryLeadRequest struct - HTTP query request DTO
	QueryLeadRequest struct {
		Country *string `json:"country" form:"country" query:"country"`
		Email   *string `json:"email" validate:"omitempty,max=255" form:"email" query:"email"`

		Limit      *int        `json:"limit,omitempty" validate:"omitempty,gte=1,lte=1000" form:"limit" query:"limit"`
		Page       *int        `json:"page,omitempty" validate:"omitempty,gte=1" form:"page" query:"page"`
		OrderBy    *string     `json:"order_by,omitempty" validate:"omitempty,oneof=created_at full_name country company_name email selected_product" form:"order_by" query:"order_by"`
		Asc        *bool       `json:"asc,omitempty" form:"asc" query:"asc"`
		Pagination *Pagination `json:"-"`
		SortMethod *SortMethod `json:"-"`
	}

	// VerifyWebhookRequest struct - Subscription handshake query
	VerifyWebhookRequest struct {
		Mode        string `query:"hub.mode"`
		VerifyToken string `query:"hub.verify_token"`
		Challenge   string `query:"hub.challenge"`
	}
)

// Pagination struct
type Pagination struct {
	Limit  int `json:"limit" query:"limit" validate:"gte=-1,lte=100"`
	Offset int `json:"offset" query:"offset"`
}

// SortMethod struct
type SortMethod struct {
	Asc     bool   `json:"asc" query:"asc"`
	OrderBy string `json:"order_by" query:"order_by"`
}

// WhatsApp Cloud API webhook payload. Only the fields the conversation reads
// are declared.
type (
	// WebhookPayload struct
	WebhookPayload struct {
		Object string         `json:"object"`
		Entry  []WebhookEntry `json:"entry"`
	}

	// WebhookEntry struct
	WebhookEntry struct {
		ID      string          `json:"id"`
		Changes []WebhookChange `json:"changes"`
	}

	// WebhookChange struct
	WebhookChange struct {
		Field string       `json:"field"`
		Value WebhookValue `json:"value"`
	}

	// WebhookValue struct
	WebhookValue struct {
		MessagingProduct string          `json:"messaging_product"`
		Metadata         WebhookMetadata `json:"metadata"`
		Messages         []WebhookMessage `json:"messages"`
	}

	// WebhookMetadata struct
	WebhookMetadata struct {
		DisplayPhoneNumber string `json:"display_phone_number"`
		PhoneNumberID      string `json:"phone_number_id" validate:"required"`
	}

	// WebhookMessage struct
	WebhookMessage struct {
		From        string              `json:"from" validate:"required,wa_id"`
		ID          string              `json:"id" validate:"required"`
		Timestamp   string              `json:"timestamp"`
		Type        string              `json:"type" validate:"required"`
		Text        *WebhookText        `json:"text,omitempty"`
		Interactive *WebhookInteractive `json:"interactive,omitempty"`
	}

	// WebhookText struct
	WebhookText struct {
		Body string `json:"body"`
	}

	// WebhookInteractive struct
	WebhookInteractive struct {
		Type        string              `json:"type"`
		ButtonReply *WebhookButtonReply `json:"button_reply,omitempty"`
	}

	// WebhookButtonReply struct
	WebhookButtonReply struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
)

// firstMessage returns the first message of the first change together with
// the receiving phone number id, or nil when the delivery carries none
func (p WebhookPayload) firstMessage() (*WebhookMessage, WebhookMetadata) {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return nil, WebhookMetadata{}
	}
	value := p.Entry[0].Changes[0].Value
	if len(value.Messages) == 0 {
		return nil, value.Metadata
	}
	return &value.Messages[0], value.Metadata
}
