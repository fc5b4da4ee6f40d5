// Package contacts delivers consultation leads to the agency's contacts
// collaborator, either over HTTP, as an SES email, or not at all (mock).
package contacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"agency_estimator/internal/domain/entities"
	appconfig "agency_estimator/internal/infrastructure/config"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
)

var (
	ErrGatewayNotConfigured = errors.New("contacts gateway not configured")
	ErrLeadRejected         = errors.New("contacts backend rejected lead")
)

// New picks the gateway for cfg.Mode. CONTACT_GATEWAY_MOCK forces mock mode
// regardless of configuration, which keeps local stacks off the real backend.
func New(cfg appconfig.ContactsConfig, awsCfg aws.Config, log logger.Logger) (interfaces.IContactGateway, error) {
	mode := cfg.Mode
	if isMockEnabled() {
		mode = appconfig.ContactsModeMock
	}

	switch mode {
	case appconfig.ContactsModeMock:
		log.Info("contacts gateway in mock mode", nil)
		return NewMockGateway(log), nil
	case appconfig.ContactsModeHTTP:
		g, err := NewHTTPGateway(cfg.Endpoint, cfg.Token, cfg.Timeout, log)
		if err != nil {
			return nil, err
		}
		return g, nil
	case appconfig.ContactsModeSES:
		g, err := NewSESGateway(NewSESClient(awsCfg), cfg.FromEmail, cfg.ToEmail, log)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrGatewayNotConfigured, mode)
	}
}

// MockGateway accepts every lead without I/O.
type MockGateway struct {
	log logger.Logger
}

var _ interfaces.IContactGateway = (*MockGateway)(nil)

func NewMockGateway(log logger.Logger) *MockGateway {
	return &MockGateway{log: log}
}

func (g *MockGateway) Provider() string { return appconfig.ContactsModeMock }

func (g *MockGateway) SubmitLead(_ context.Context, lead entities.LeadPayload) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	resp := map[string]any{
		"id":         id,
		"status":     "accepted",
		"email":      lead.Email,
		"subject":    lead.Subject,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("mock lead accepted", map[string]interface{}{"provider_reference": id})
	return id, "accepted", b, nil
}

func isMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CONTACT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
