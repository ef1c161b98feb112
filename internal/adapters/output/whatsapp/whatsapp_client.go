package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"whatsapp-leadbot/configs"
	"whatsapp-leadbot/internal/domain"
	"whatsapp-leadbot/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var _ output.WhatsAppClient = (*WhatsAppClientAdapter)(nil)

const (
	defaultBaseURL    = "https://graph.facebook.com"
	defaultAPIVersion = "v19.0"
	messagingProduct  = "whatsapp"
	maxErrorBodyBytes = 4096
)

// WhatsAppClientAdapter struct - Output adapter for the WhatsApp Cloud API
type WhatsAppClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	apiVersion string
	token      string
	timeout    time.Duration
	limiter    *rate.Limiter
}

// NewWhatsAppClientAdapter func - Creates new WhatsApp client adapter
func NewWhatsAppClientAdapter(config configs.WhatsApp) (*WhatsAppClientAdapter, error) {
	if config.GraphAPIToken == "" {
		return nil, fmt.Errorf("%w: graph api token is required", domain.ErrInvalidRequest)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	apiVersion := config.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 30 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	// A zero rate disables throttling
	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RateLimit > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), burst)
	}

	adapter := &WhatsAppClientAdapter{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiVersion: apiVersion,
		token:      config.GraphAPIToken,
		timeout:    timeout,
		limiter:    limiter,
	}

	logrus.Infof("WhatsApp client adapter initialized with base URL: %s, version: %s, timeout: %v", baseURL, apiVersion, timeout)

	return adapter, nil
}

// SendTemplate sends a pre-approved template message
func (a *WhatsAppClientAdapter) SendTemplate(ctx context.Context, request domain.TemplateMessageRequest) (*domain.MessageResponse, error) {
	body := templateMessageAPI{
		MessagingProduct: messagingProduct,
		To:               request.To,
		Type:             "template",
		Template: templateAPI{
			Name:     request.Name,
			Language: languageAPI{Code: request.LanguageCode},
		},
	}
	for _, c := range request.Components {
		component := componentAPI{Type: string(c.Type)}
		for _, p := range c.Parameters {
			param := parameterAPI{Type: string(p.Type)}
			switch p.Type {
			case domain.TemplateParameterImage:
				param.Image = &imageAPI{Link: p.ImageLink}
			default:
				param.Text = p.Text
			}
			component.Parameters = append(component.Parameters, param)
		}
		body.Template.Components = append(body.Template.Components, component)
	}

	resp, err := a.post(ctx, request.PhoneNumberID, body)
	if err != nil {
		return nil, fmt.Errorf("failed to send template %s: %w", request.Name, err)
	}
	logrus.Debugf("Template %s sent to %s, id=%s", request.Name, request.To, resp.MessageID)
	return resp, nil
}

// SendText sends a plain text message
func (a *WhatsAppClientAdapter) SendText(ctx context.Context, request domain.TextMessageRequest) (*domain.MessageResponse, error) {
	body := textMessageAPI{
		MessagingProduct: messagingProduct,
		To:               request.To,
		Type:             "text",
		Text:             textAPI{Body: request.Body},
	}

	resp, err := a.post(ctx, request.PhoneNumberID, body)
	if err != nil {
		return nil, fmt.Errorf("failed to send text: %w", err)
	}
	logrus.Debugf("Text sent to %s, id=%s", request.To, resp.MessageID)
	return resp, nil
}

// MarkRead marks an inbound message as read
func (a *WhatsAppClientAdapter) MarkRead(ctx context.Context, request domain.MarkReadRequest) error {
	body := markReadAPI{
		MessagingProduct: messagingProduct,
		Status:           "read",
		MessageID:        request.MessageID,
	}
	if _, err := a.post(ctx, request.PhoneNumberID, body); err != nil {
		return fmt.Errorf("failed to mark message %s as read: %w", request.MessageID, err)
	}
	return nil
}

// post sends one request to the messages endpoint. There is no retry:
// a failed delivery is reported to the caller and dropped.
func (a *WhatsAppClientAdapter) post(ctx context.Context, phoneNumberID string, payload interface{}) (*domain.MessageResponse, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWhatsAppUnavailable, err)
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/messages", a.baseURL, a.apiVersion, phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWhatsAppUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if resp.StatusCode < 500 {
			return nil, fmt.Errorf("%w: status %d - %s", domain.ErrInvalidRequest, resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d - %s", domain.ErrWhatsAppUnavailable, resp.StatusCode, string(body))
	}

	var apiResp messageAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	response := &domain.MessageResponse{Success: true}
	if len(apiResp.Messages) > 0 {
		response.MessageID = apiResp.Messages[0].ID
	} else if apiResp.Success != nil {
		response.Success = *apiResp.Success
	}
	return response, nil
}

// API request/response structures for the Cloud API messages endpoint

type templateMessageAPI struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Template         templateAPI `json:"template"`
}

type templateAPI struct {
	Name       string         `json:"name"`
	Language   languageAPI    `json:"language"`
	Components []componentAPI `json:"components,omitempty"`
}

type languageAPI struct {
	Code string `json:"code"`
}

type componentAPI struct {
	Type       string         `json:"type"`
	Parameters []parameterAPI `json:"parameters"`
}

type parameterAPI struct {
	Type  string    `json:"type"`
	Text  string    `json:"text,omitempty"`
	Image *imageAPI `json:"image,omitempty"`
}

type imageAPI struct {
	Link string `json:"link"`
}

type textMessageAPI struct {
	MessagingProduct string  `json:"messaging_product"`
	To               string  `json:"to"`
	Type             string  `json:"type"`
	Text             textAPI `json:"text"`
}

type textAPI struct {
	Body string `json:"body"`
}

type markReadAPI struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

// messageAPIResponse covers both send ({"messages":[{"id":...}]}) and
// read ({"success":true}) responses
type messageAPIResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Success *bool `json:"success,omitempty"`
}
