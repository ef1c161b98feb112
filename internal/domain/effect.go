package domain

// SessionAction tells the caller what to do with the stored session
type SessionAction int

const (
	// ActionNoChange - Leave the store untouched
	ActionNoChange SessionAction = iota
	// ActionCreateOrReplace - Store Decision.Session for the user
	ActionCreateOrReplace
	// ActionDelete - Remove the user's session
	ActionDelete
)

// String implements fmt.Stringer
func (a SessionAction) String() string {
	switch a {
	case ActionCreateOrReplace:
		return "create_or_replace"
	case ActionDelete:
		return "delete"
	default:
		return "no_change"
	}
}

// EffectKind represents an outbound action produced by a transition
type EffectKind string

const (
	// EffectWelcome - Send the welcome template
	EffectWelcome EffectKind = "welcome"
	// EffectText - Send a plain text message
	EffectText EffectKind = "text"
	// EffectProductCard - Send the product display template for a catalog item
	EffectProductCard EffectKind = "product_card"
)

// Effect describes one outbound message. Effects carry no transport details;
// template names and language are resolved by whoever executes them.
type Effect struct {
	Kind         EffectKind
	To           string
	Text         string  // For EffectText
	ProductIndex int     // For EffectProductCard
	Product      Product // For EffectProductCard
}

// Decision is the outcome of feeding one inbound message to the conversation
type Decision struct {
	Action  SessionAction
	Session *ConversationSession // Set when Action is ActionCreateOrReplace
	Effects []Effect             // Executed in order after the session mutation
	Lead    *LeadData            // Set on completion; must be persisted before the session is deleted
}
