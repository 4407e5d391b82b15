package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/stroyset/acts-service/internal/domain/entities"
	"github.com/stroyset/acts-service/internal/usecase/interfaces"
)

const defaultActsTableName = "ks2_acts"

type actItem struct {
	ID          string `dynamodbav:"id"`
	ContractID  string `dynamodbav:"contract_id"`
	Number      string `dynamodbav:"number"`
	Date        string `dynamodbav:"date"`
	PeriodFrom  string `dynamodbav:"period_from"`
	PeriodTo    string `dynamodbav:"period_to"`
	TotalAmount string `dynamodbav:"total_amount"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ActDynamoRepository persists Act rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ActDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActRepository = (*ActDynamoRepository)(nil)

func NewActDynamoRepository(ddb *dynamodb.Client) *ActDynamoRepository {
	return &ActDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTS_TABLE", defaultActsTableName),
	}
}

func (r *ActDynamoRepository) Create(ctx context.Context, act entities.Act) (entities.Act, error) {
	it := toActItem(act)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Act{}, err
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
		return entities.Act{}, err
	}
	return act, nil
}

func (r *ActDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toActItem(act entities.Act) actItem {
	return actItem{
		ID:          act.ID,
		ContractID:  act.ContractID,
		Number:      act.Number,
		Date:        act.Date.UTC().Format(time.RFC3339Nano),
		PeriodFrom:  act.PeriodFrom.UTC().Format(time.RFC3339Nano),
		PeriodTo:    act.PeriodTo.UTC().Format(time.RFC3339Nano),
		TotalAmount: decimalToString(act.TotalAmount),
		Status:      string(act.Status),
		CreatedAt:   act.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
