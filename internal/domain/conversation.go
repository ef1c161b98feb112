package domain

import "strings"

// Commands and button ids recognised by the conversation
const (
	CommandDone       = "done"
	CommandStop       = "stop"
	ButtonNextProduct = "next_product"
	ButtonPrevProduct = "prev_product"

	greetingKeyword = "hello"
)

// Texts sent while walking through the question flow
const (
	TextAskCountry   = "Thank you! Which country are you from?"
	TextAskCompany   = "Great. What is your company name? (You can type 'N/A' if not applicable)"
	TextAskEmail     = "What is your E-mail ID?"
	TextInstructions = "Thank you. Please browse our products below. Type 'done' when you are finished."
	TextConfirmation = "Thank you! Your enquiry has been saved. Our team will get back to you shortly."
)

// IsGreeting reports whether a message may open a new conversation
func IsGreeting(value string) bool {
	return strings.Contains(strings.ToLower(value), greetingKeyword)
}

// IsCompletionCommand reports whether a message ends the conversation
func IsCompletionCommand(value string) bool {
	switch strings.ToLower(value) {
	case CommandDone, CommandStop:
		return true
	default:
		return false
	}
}

// Decide computes the next session state and the outbound effects for one
// inbound message. current is nil when the user has no active conversation.
// Decide never mutates current and performs no I/O.
func Decide(userID string, msg InboundMessage, current *ConversationSession, catalog *Catalog) Decision {
	value := msg.Value()

	if current == nil {
		if !IsGreeting(value) {
			return Decision{Action: ActionNoChange}
		}
		return Decision{
			Action:  ActionCreateOrReplace,
			Session: NewConversationSession(userID),
			Effects: []Effect{{Kind: EffectWelcome, To: userID}},
		}
	}

	// Completion is accepted at every stage, including mid-question
	if IsCompletionCommand(value) {
		return complete(userID, current, catalog)
	}

	next := current.Clone()
	switch current.Stage {
	case StageAskName:
		next.Data.FullName = value
		next.Stage = StageAskCountry
		return advance(next, textEffect(userID, TextAskCountry))

	case StageAskCountry:
		next.Data.Country = value
		next.Stage = StageAskCompany
		return advance(next, textEffect(userID, TextAskCompany))

	case StageAskCompany:
		next.Data.CompanyName = value
		next.Stage = StageAskEmail
		return advance(next, textEffect(userID, TextAskEmail))

	case StageAskEmail:
		next.Data.Email = value
		next.Stage = StageProductMenu
		next.ProductIndex = 0
		return advance(next,
			textEffect(userID, TextInstructions),
			productEffect(userID, catalog, 0),
		)

	case StageProductMenu:
		switch strings.ToLower(value) {
		case ButtonNextProduct:
			next.ProductIndex = NextIndex(current.ProductIndex, catalog.Len())
		case ButtonPrevProduct:
			next.ProductIndex = PrevIndex(current.ProductIndex, catalog.Len())
		default:
			return Decision{Action: ActionNoChange}
		}
		return advance(next, productEffect(userID, catalog, next.ProductIndex))

	default:
		return Decision{Action: ActionNoChange}
	}
}

// complete records the product under the cursor and ends the conversation.
// The cursor defaults to 0, so a user who stops before reaching the product
// menu is recorded against the first catalog item.
func complete(userID string, current *ConversationSession, catalog *Catalog) Decision {
	lead := current.Data
	if catalog.Len() > 0 {
		lead.SelectedProduct = catalog.At(current.ProductIndex % catalog.Len()).Name
	}
	return Decision{
		Action:  ActionDelete,
		Effects: []Effect{textEffect(userID, TextConfirmation)},
		Lead:    &lead,
	}
}

func advance(next *ConversationSession, effects ...Effect) Decision {
	return Decision{
		Action:  ActionCreateOrReplace,
		Session: next,
		Effects: effects,
	}
}

func textEffect(to, text string) Effect {
	return Effect{Kind: EffectText, To: to, Text: text}
}

func productEffect(to string, catalog *Catalog, index int) Effect {
	return Effect{
		Kind:         EffectProductCard,
		To:           to,
		ProductIndex: index,
		Product:      catalog.At(index),
	}
}
