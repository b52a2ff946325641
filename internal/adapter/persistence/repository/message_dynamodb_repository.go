package repository

import (
	"context"
	"sort"
	"time"

	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMessagesTableName = "messages"
	messagesOrderIDIndex     = "order_id-index"
)

// messageTimestampLayout is fixed-width so the GSI sort key orders
// lexicographically the same as chronologically.
const messageTimestampLayout = "2006-01-02T15:04:05.000000000Z"

type messageItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	SenderID   string `dynamodbav:"sender_id"`
	SenderRole string `dynamodbav:"sender_role"`
	Content    string `dynamodbav:"content"`
	Timestamp  string `dynamodbav:"timestamp"`
}

// MessageDynamoRepository persists chat messages in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id, SK: timestamp)

type MessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMessageRepository = (*MessageDynamoRepository)(nil)

func NewMessageDynamoRepository(ddb *dynamodb.Client) *MessageDynamoRepository {
	return &MessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MESSAGES_TABLE", defaultMessagesTableName),
	}
}

func (r *MessageDynamoRepository) Create(ctx context.Context, m entities.Message) (entities.Message, error) {
	av, err := attributevalue.MarshalMap(toMessageItem(m))
	if err != nil {
		return entities.Message{}, err
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
		return entities.Message{}, err
	}
	return m, nil
}

// ListByOrderID returns the order's messages in timestamp ascending
// order; subscription replay depends on this ordering.
func (r *MessageDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Message, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(messagesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Message, 0, len(out.Items))
	for _, raw := range out.Items {
		var it messageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMessageItem(it))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.Before(items[j].Timestamp)
	})
	return items, nil
}

func toMessageItem(m entities.Message) messageItem {
	return messageItem{
		ID:         m.ID,
		OrderID:    m.OrderID,
		SenderID:   m.SenderID,
		SenderRole: string(m.SenderRole),
		Content:    m.Content,
		Timestamp:  m.Timestamp.UTC().Format(messageTimestampLayout),
	}
}

func fromMessageItem(it messageItem) entities.Message {
	ts, _ := time.Parse(messageTimestampLayout, it.Timestamp)
	return entities.Message{
		ID:         it.ID,
		OrderID:    it.OrderID,
		SenderID:   it.SenderID,
		SenderRole: entities.SenderRole(it.SenderRole),
		Content:    it.Content,
		Timestamp:  ts,
	}
}
