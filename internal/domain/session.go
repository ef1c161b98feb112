package domain

// Stage represents the question a conversation is waiting on, or the product browsing mode
type Stage string

const (
	// StageAskName - Waiting for the user's full name
	StageAskName Stage = "ask_name"
	// StageAskCountry - Waiting for the user's country
	StageAskCountry Stage = "ask_country"
	// StageAskCompany - Waiting for the user's company name
	StageAskCompany Stage = "ask_company"
	// StageAskEmail - Waiting for the user's e-mail address
	StageAskEmail Stage = "ask_email"
	// StageProductMenu - User is paging through the catalog
	StageProductMenu Stage = "product_menu"
)

// LeadData holds the answers collected from a user during the question flow.
// Fields are filled in stage order and never cleared once set.
type LeadData struct {
	PhoneNumber     string `json:"phone_number"`
	FullName        string `json:"full_name,omitempty"`
	Country         string `json:"country,omitempty"`
	CompanyName     string `json:"company_name,omitempty"`
	Email           string `json:"email,omitempty"`
	SelectedProduct string `json:"selected_product,omitempty"`
}

// ConversationSession represents one user's in-progress conversation
type ConversationSession struct {
	UserID       string   `json:"user_id"`       // WhatsApp sender id (phone number)
	Stage        Stage    `json:"stage"`         // Question currently awaiting an answer
	Data         LeadData `json:"data"`          // Answers collected so far
	ProductIndex int      `json:"product_index"` // Catalog cursor, meaningful at StageProductMenu
}

// NewConversationSession creates a session at the first question with the
// sender's phone number already recorded
func NewConversationSession(userID string) *ConversationSession {
	return &ConversationSession{
		UserID: userID,
		Stage:  StageAskName,
		Data: LeadData{
			PhoneNumber: userID,
		},
		ProductIndex: 0,
	}
}

// Clone returns an independent copy of the session
func (s *ConversationSession) Clone() *ConversationSession {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
