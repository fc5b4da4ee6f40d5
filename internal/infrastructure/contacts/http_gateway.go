package contacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agency_estimator/internal/domain/entities"
	appconfig "agency_estimator/internal/infrastructure/config"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/usecase/interfaces"
)

const maxResponseBytes = 1 << 20

// HTTPGateway posts leads as JSON to the contacts REST endpoint.
type HTTPGateway struct {
	client   *http.Client
	endpoint string
	token    string
	log      logger.Logger
}

var _ interfaces.IContactGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(endpoint, token string, timeout time.Duration, log logger.Logger) (*HTTPGateway, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("%w: missing endpoint", ErrGatewayNotConfigured)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGateway{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		token:    token,
		log:      log,
	}, nil
}

func (g *HTTPGateway) Provider() string { return appconfig.ContactsModeHTTP }

func (g *HTTPGateway) SubmitLead(ctx context.Context, lead entities.LeadPayload) (string, string, json.RawMessage, error) {
	body, err := json.Marshal(lead)
	if err != nil {
		return "", "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	g.log.Debug("submitting lead", map[string]interface{}{"endpoint": g.endpoint, "payload_len": len(body)})
	resp, err := g.client.Do(req)
	if err != nil {
		g.log.WithError(err).Warn("contacts request failed", nil)
		return "", "", nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", "", nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.log.Warn("contacts backend rejected lead", map[string]interface{}{"status": resp.StatusCode})
		return "", "", nil, fmt.Errorf("%w: status %d: %s", ErrLeadRejected, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	providerResp := json.RawMessage(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		providerResp, err = json.Marshal(map[string]any{"status_code": resp.StatusCode, "body": string(raw)})
		if err != nil {
			return "", "", nil, err
		}
	}

	ref := referenceFrom(raw)
	g.log.Info("lead delivered", map[string]interface{}{"provider_reference": ref, "status": resp.StatusCode})
	return ref, "accepted", providerResp, nil
}

// referenceFrom extracts the created record id from a backend response.
// The contacts backend answers {"id": ...} or {"data": {"_id": ...}}.
func referenceFrom(raw []byte) string {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	if data, ok := doc["data"].(map[string]any); ok {
		doc = data
	}
	for _, key := range []string{"id", "_id"} {
		switch v := doc[key].(type) {
		case string:
			return v
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
