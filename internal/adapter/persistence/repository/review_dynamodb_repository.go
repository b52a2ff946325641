package repository

import (
	"context"
	"errors"
	"time"

	"descomplaca/internal/domain/entities"
	"descomplaca/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultReviewsTableName = "reviews"

type reviewItem struct {
	OrderID      string `dynamodbav:"order_id"`
	ID           string `dynamodbav:"id"`
	DispatcherID string `dynamodbav:"dispatcher_id,omitempty"`
	Rating       int    `dynamodbav:"rating"`
	Comment      string `dynamodbav:"comment,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists reviews in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string). Keying by order makes "one review per
//     order" a conditional put instead of an application-level check.

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rv entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(rv))
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(order_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Review{}, interfaces.ErrReviewExists
		}
		return entities.Review{}, err
	}
	return rv, nil
}

func (r *ReviewDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Review, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Item) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func toReviewItem(rv entities.Review) reviewItem {
	return reviewItem{
		OrderID:      rv.OrderID,
		ID:           rv.ID,
		DispatcherID: rv.DispatcherID,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
		CreatedAt:    rv.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Review{
		ID:           it.ID,
		OrderID:      it.OrderID,
		DispatcherID: it.DispatcherID,
		Rating:       it.Rating,
		Comment:      it.Comment,
		CreatedAt:    createdAt,
	}
}
