package application

import (
	"context"
	"fmt"

	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/output"
	"whatsapp-leadbot/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// TemplateConfig holds the WhatsApp template names used by the conversation
type TemplateConfig struct {
	LanguageCode    string
	WelcomeTemplate string
	ProductTemplate string
}

// DefaultTemplateConfig returns the templates registered for the business account
func DefaultTemplateConfig() TemplateConfig {
	return TemplateConfig{
		LanguageCode:    "en_US",
		WelcomeTemplate: "welcome_custom",
		ProductTemplate: "product_display_template",
	}
}

// ConversationService struct - Application service implementing the lead conversation use case
type ConversationService struct {
	whatsAppClient output.WhatsAppClient
	sessionStore   output.SessionStore
	leadRepo       output.LeadRepository
	catalog        *domain.Catalog
	images         domain.ProductImages
	templates      TemplateConfig
	locks          *userLocks
}

// NewConversationService func - Creates new conversation service.
// catalog must be non-empty; use domain.NewCatalog to build it.
func NewConversationService(
	whatsAppClient output.WhatsAppClient,
	sessionStore output.SessionStore,
	leadRepo output.LeadRepository,
	catalog *domain.Catalog,
	images domain.ProductImages,
	templates TemplateConfig,
) *ConversationService {
	defaults := DefaultTemplateConfig()
	if templates.LanguageCode == "" {
		templates.LanguageCode = defaults.LanguageCode
	}
	if templates.WelcomeTemplate == "" {
		templates.WelcomeTemplate = defaults.WelcomeTemplate
	}
	if templates.ProductTemplate == "" {
		templates.ProductTemplate = defaults.ProductTemplate
	}

	return &ConversationService{
		whatsAppClient: whatsAppClient,
		sessionStore:   sessionStore,
		leadRepo:       leadRepo,
		catalog:        catalog,
		images:         images,
		templates:      templates,
		locks:          newUserLocks(),
	}
}

// HandleInbound func - Use case: advance a user's conversation by one message
func (s *ConversationService) HandleInbound(ctx context.Context, event domain.InboundEvent) error {
	logrus.Infof("Received WhatsApp message: from=%s, id=%s, kind=%s",
		event.UserID, event.MessageID, event.Message.Kind)
	metrics.IncInbound(string(event.Message.Kind))

	// Load, decide and store for one user must not interleave with another
	// delivery for the same user
	unlock := s.locks.Lock(event.UserID)
	defer unlock()

	current, err := s.sessionStore.GetSession(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	decision := domain.Decide(event.UserID, event.Message, current, s.catalog)

	if err := s.applySession(ctx, event.UserID, decision); err != nil {
		return err
	}

	s.executeEffects(ctx, event.PhoneNumberID, decision.Effects)
	s.markRead(ctx, event)

	return nil
}

// applySession commits the session mutation. On completion the lead is
// appended first; if that fails the session is kept so nothing is lost.
func (s *ConversationService) applySession(ctx context.Context, userID string, decision domain.Decision) error {
	switch decision.Action {
	case domain.ActionCreateOrReplace:
		if err := s.sessionStore.UpdateSession(ctx, decision.Session); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}
		metrics.IncTransition(decision.Action.String(), string(decision.Session.Stage))
		logrus.Debugf("Session updated: userID=%s, stage=%s, productIndex=%d",
			userID, decision.Session.Stage, decision.Session.ProductIndex)

	case domain.ActionDelete:
		if decision.Lead != nil {
			lead, err := s.leadRepo.AppendLead(ctx, *decision.Lead)
			if err != nil {
				metrics.ObserveLeadPersisted(false)
				logrus.Errorf("Failed to persist lead for userID=%s: %v", userID, err)
				return fmt.Errorf("%w: %v", domain.ErrLeadNotPersisted, err)
			}
			metrics.ObserveLeadPersisted(true)
			if lead != nil && lead.ID != nil {
				logrus.Infof("Lead saved: id=%s, userID=%s, product=%s", lead.ID, userID, lead.SelectedProduct)
			}
		}
		if err := s.sessionStore.DeleteSession(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		metrics.IncTransition(decision.Action.String(), "")
		logrus.Infof("Conversation completed: userID=%s", userID)

	case domain.ActionNoChange:
	}

	return nil
}

// executeEffects sends the outbound messages in order. Failures are logged
// and do not stop the remaining effects.
func (s *ConversationService) executeEffects(ctx context.Context, phoneNumberID string, effects []domain.Effect) {
	for _, effect := range effects {
		var err error
		switch effect.Kind {
		case domain.EffectWelcome:
			_, err = s.whatsAppClient.SendTemplate(ctx, domain.TemplateMessageRequest{
				PhoneNumberID: phoneNumberID,
				To:            effect.To,
				Name:          s.templates.WelcomeTemplate,
				LanguageCode:  s.templates.LanguageCode,
			})

		case domain.EffectText:
			_, err = s.whatsAppClient.SendText(ctx, domain.TextMessageRequest{
				PhoneNumberID: phoneNumberID,
				To:            effect.To,
				Body:          effect.Text,
			})

		case domain.EffectProductCard:
			request, ok := s.buildProductCard(phoneNumberID, effect)
			if !ok {
				continue
			}
			_, err = s.whatsAppClient.SendTemplate(ctx, request)

		default:
			logrus.Warnf("Unhandled effect kind: %s", effect.Kind)
			continue
		}

		metrics.ObserveOutbound(string(effect.Kind), err == nil)
		if err != nil {
			logrus.Errorf("Error sending %s message to %s: %v", effect.Kind, effect.To, err)
		}
	}
}

// buildProductCard builds the product display template. A product without an
// image is a data error: the card is dropped and reported.
func (s *ConversationService) buildProductCard(phoneNumberID string, effect domain.Effect) (domain.TemplateMessageRequest, bool) {
	imageURL, ok := s.images.Lookup(effect.Product.Name)
	if !ok {
		metrics.IncDroppedProductCard(effect.Product.Name)
		logrus.Errorf("%v: product=%q, index=%d", domain.ErrProductImageNotFound, effect.Product.Name, effect.ProductIndex)
		return domain.TemplateMessageRequest{}, false
	}

	return domain.TemplateMessageRequest{
		PhoneNumberID: phoneNumberID,
		To:            effect.To,
		Name:          s.templates.ProductTemplate,
		LanguageCode:  s.templates.LanguageCode,
		Components: []domain.TemplateComponent{
			{
				Type: domain.TemplateComponentHeader,
				Parameters: []domain.TemplateParameter{
					{Type: domain.TemplateParameterImage, ImageLink: imageURL},
				},
			},
			{
				Type: domain.TemplateComponentBody,
				Parameters: []domain.TemplateParameter{
					{Type: domain.TemplateParameterText, Text: effect.Product.Name},
					{Type: domain.TemplateParameterText, Text: effect.Product.Description},
				},
			},
		},
	}, true
}

func (s *ConversationService) markRead(ctx context.Context, event domain.InboundEvent) {
	if event.MessageID == "" {
		return
	}
	err := s.whatsAppClient.MarkRead(ctx, domain.MarkReadRequest{
		PhoneNumberID: event.PhoneNumberID,
		MessageID:     event.MessageID,
	})
	metrics.ObserveOutbound("mark_read", err == nil)
	if err != nil {
		logrus.Errorf("Error marking message as read: id=%s: %v", event.MessageID, err)
	}
}
