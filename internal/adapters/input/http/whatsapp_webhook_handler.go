package http

import (
	"encoding/json"
	"errors"
	"time"

	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/input"
	"whatsapp-leadbot/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	hubModeSubscribe       = "subscribe"
	messageTypeText        = "text"
	messageTypeInteractive = "interactive"
	interactiveButtonReply = "button_reply"
)

// WhatsAppWebhookHandler struct - Primary/Driving adapter for the WhatsApp webhook
type WhatsAppWebhookHandler struct {
	service     input.ConversationService
	verifyToken string
	validator   validator.Validator
	now         func() time.Time
}

// NewWhatsAppWebhookHandler func - Creates new WhatsApp webhook handler
func NewWhatsAppWebhookHandler(service input.ConversationService, verifyToken string) *WhatsAppWebhookHandler {
	return &WhatsAppWebhookHandler{
		service:     service,
		verifyToken: verifyToken,
		validator:   validator.New(),
		now:         time.Now,
	}
}

// VerifyWebhook func - Answers the subscription handshake
// @Summary WhatsApp webhook verification
// @Description Echoes hub.challenge when hub.verify_token matches
// @Tags WhatsApp
// @Produce plain
// @param hub.mode query string true "subscribe"
// @param hub.verify_token query string true "verify token"
// @param hub.challenge query string true "challenge"
// @Success 200 {string} string
// @Failure 403
// @Router /webhook [get]
func (h *WhatsAppWebhookHandler) VerifyWebhook(c *fiber.Ctx) error {
	request := VerifyWebhookRequest{
		Mode:        c.Query("hub.mode"),
		VerifyToken: c.Query("hub.verify_token"),
		Challenge:   c.Query("hub.challenge"),
	}
	if h.verifyToken == "" || request.Mode != hubModeSubscribe || request.VerifyToken != h.verifyToken {
		logrus.Warnf("Webhook verification rejected: mode=%q", request.Mode)
		return c.SendStatus(fiber.StatusForbidden)
	}
	logrus.Info("WEBHOOK VERIFIED")
	return c.Status(fiber.StatusOK).SendString(request.Challenge)
}

// HandleWebhook func - Handles incoming WhatsApp message notifications
// @Summary WhatsApp webhook
// @Description Advances the sender's conversation by the first message of the delivery
// @Tags WhatsApp
// @Accept application/json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /webhook [post]
func (h *WhatsAppWebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload WebhookPayload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		// Not ours to retry; acknowledge so the platform stops redelivering
		logrus.Warnf("Ignoring malformed webhook body: %v", err)
		return c.SendStatus(fiber.StatusOK)
	}

	message, metadata := payload.firstMessage()
	if message == nil {
		// Status callbacks and other notifications carry no message
		return c.SendStatus(fiber.StatusOK)
	}
	if err := h.validator.ValidateStruct(*message); err != nil {
		logrus.Warnf("Ignoring incomplete webhook message: %v", err)
		return c.SendStatus(fiber.StatusOK)
	}

	inbound, ok := convertMessage(*message)
	if !ok {
		logrus.Debugf("Unsupported message type: type=%s, id=%s", message.Type, message.ID)
		return c.SendStatus(fiber.StatusOK)
	}

	receivedAt := domain.ParseUnixTimestamp(message.Timestamp)
	if receivedAt.IsZero() {
		receivedAt = h.now()
	}

	event := domain.InboundEvent{
		UserID:        message.From,
		MessageID:     message.ID,
		PhoneNumberID: metadata.PhoneNumberID,
		ReceivedAt:    receivedAt,
		Message:       inbound,
	}

	if err := h.service.HandleInbound(c.UserContext(), event); err != nil {
		logrus.Errorf("Failed to handle webhook: %v", err)
		msg := "Failed to process webhook"
		if errors.Is(err, domain.ErrLeadNotPersisted) {
			msg = "Failed to save enquiry"
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": msg,
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

// LogWebhook func - Debug sink that logs any POSTed body
// @Summary Webhook debug sink
// @Description Logs the raw request body
// @Tags WhatsApp
// @Accept application/json
// @Success 200
// @Router / [post]
func (h *WhatsAppWebhookHandler) LogWebhook(c *fiber.Ctx) error {
	logrus.Infof("Webhook received %s", domain.ReceivedAt(h.now()))
	logrus.Info(string(c.Body()))
	return c.SendStatus(fiber.StatusOK)
}

// convertMessage maps a webhook message to the conversation's message kinds
func convertMessage(message WebhookMessage) (domain.InboundMessage, bool) {
	switch message.Type {
	case messageTypeText:
		if message.Text == nil {
			return domain.InboundMessage{}, false
		}
		return domain.TextMessage(message.Text.Body), true
	case messageTypeInteractive:
		if message.Interactive == nil || message.Interactive.Type != interactiveButtonReply || message.Interactive.ButtonReply == nil {
			return domain.InboundMessage{}, false
		}
		return domain.ButtonReplyMessage(message.Interactive.ButtonReply.ID), true
	default:
		return domain.InboundMessage{}, false
	}
}
