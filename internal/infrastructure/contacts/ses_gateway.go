package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agency_estimator/internal/domain/entities"
	appconfig "agency_estimator/internal/infrastructure/config"
	"agency_estimator/internal/infrastructure/logger"
	"agency_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the subset of the SES client used to send lead emails.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func NewSESClient(awsCfg aws.Config) *ses.Client {
	return ses.NewFromConfig(awsCfg)
}

// SESGateway emails leads to the sales inbox, with the visitor as Reply-To.
type SESGateway struct {
	client SESAPI
	from   string
	to     string
	log    logger.Logger
}

var _ interfaces.IContactGateway = (*SESGateway)(nil)

func NewSESGateway(client SESAPI, from, to string, log logger.Logger) (*SESGateway, error) {
	if client == nil || strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("%w: ses needs a client and from/to addresses", ErrGatewayNotConfigured)
	}
	return &SESGateway{client: client, from: from, to: to, log: log}, nil
}

func (g *SESGateway) Provider() string { return appconfig.ContactsModeSES }

func (g *SESGateway) SubmitLead(ctx context.Context, lead entities.LeadPayload) (string, string, json.RawMessage, error) {
	input := &ses.SendEmailInput{
		Source: aws.String(g.from),
		Destination: &types.Destination{
			ToAddresses: []string{g.to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(lead.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(leadText(lead)), Charset: aws.String("UTF-8")},
			},
		},
	}
	if lead.Email != "" {
		input.ReplyToAddresses = []string{lead.Email}
	}

	out, err := g.client.SendEmail(ctx, input)
	if err != nil {
		g.log.WithError(err).Warn("ses send failed", nil)
		return "", "", nil, err
	}

	messageID := aws.ToString(out.MessageId)
	raw, err := json.Marshal(map[string]string{"message_id": messageID, "to": g.to})
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info("lead emailed", map[string]interface{}{"message_id": messageID})
	return messageID, "sent", raw, nil
}

func leadText(lead entities.LeadPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	if lead.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	}
	b.WriteString("\n")
	b.WriteString(lead.Message)
	return b.String()
}
