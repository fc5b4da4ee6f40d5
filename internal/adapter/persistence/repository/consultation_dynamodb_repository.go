package repository

import (
	"context"
	"encoding/json"
	"sort"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const consultationsQuoteIDIndex = "quote_id-index"

type consultationItem struct {
	ID                string                 `dynamodbav:"id"`
	QuoteID           string                 `dynamodbav:"quote_id"`
	Name              string                 `dynamodbav:"name"`
	Email             string                 `dynamodbav:"email"`
	Phone             string                 `dynamodbav:"phone,omitempty"`
	Message           string                 `dynamodbav:"message,omitempty"`
	Provider          string                 `dynamodbav:"provider"`
	ProviderReference string                 `dynamodbav:"provider_reference,omitempty"`
	Date              string                 `dynamodbav:"date"`
	Status            string                 `dynamodbav:"status"`
	ProviderPayload   map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderRaw       string                 `dynamodbav:"provider_response_raw,omitempty"`
}

// ConsultationDynamoRepository persists ConsultationRequest records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//
// The provider response is stored raw for audit and, when it is a JSON
// object, also as a map so it can be inspected in the console.
type ConsultationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IConsultationRepository = (*ConsultationDynamoRepository)(nil)

func NewConsultationDynamoRepository(ddb DynamoAPI, tableName string) *ConsultationDynamoRepository {
	return &ConsultationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ConsultationDynamoRepository) Create(ctx context.Context, c entities.ConsultationRequest) (entities.ConsultationRequest, error) {
	av, err := attributevalue.MarshalMap(toConsultationItem(c))
	if err != nil {
		return entities.ConsultationRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ConsultationRequest{}, err
	}
	return c, nil
}

func (r *ConsultationDynamoRepository) GetByID(ctx context.Context, id string) (entities.ConsultationRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConsultationRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConsultationRequest{}, nil
	}

	var it consultationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConsultationRequest{}, err
	}
	return fromConsultationItem(it), nil
}

func (r *ConsultationDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.ConsultationRequest, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(consultationsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})

	out := []entities.ConsultationRequest{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it consultationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromConsultationItem(it))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func toConsultationItem(c entities.ConsultationRequest) consultationItem {
	var parsed map[string]interface{}
	if len(c.ProviderResponse) > 0 {
		_ = json.Unmarshal(c.ProviderResponse, &parsed)
	}
	return consultationItem{
		ID:                c.ID,
		QuoteID:           c.QuoteID,
		Name:              c.Contact.Name,
		Email:             c.Contact.Email,
		Phone:             c.Contact.Phone,
		Message:           c.Contact.Message,
		Provider:          c.Provider,
		ProviderReference: c.ProviderReference,
		Date:              formatTime(c.Date),
		Status:            string(c.Status),
		ProviderPayload:   parsed,
		ProviderRaw:       string(c.ProviderResponse),
	}
}

func fromConsultationItem(it consultationItem) entities.ConsultationRequest {
	var raw json.RawMessage
	if it.ProviderRaw != "" {
		raw = json.RawMessage(it.ProviderRaw)
	}
	return entities.ConsultationRequest{
		ID:      it.ID,
		QuoteID: it.QuoteID,
		Contact: entities.ContactDetails{
			Name:    it.Name,
			Email:   it.Email,
			Phone:   it.Phone,
			Message: it.Message,
		},
		Provider:          it.Provider,
		ProviderReference: it.ProviderReference,
		Date:              parseTime(it.Date),
		Status:            entities.ConsultationStatus(it.Status),
		ProviderResponse:  raw,
	}
}
