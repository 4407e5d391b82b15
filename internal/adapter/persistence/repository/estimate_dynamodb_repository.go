package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/stroyset/acts-service/internal/domain/entities"
	"github.com/stroyset/acts-service/internal/usecase/interfaces"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesContractIDIndex  = "contract_id-index"
)

type estimateItem struct {
	ID            string `dynamodbav:"id"`
	ContractID    string `dynamodbav:"contract_id"`
	Number        string `dynamodbav:"number"`
	Section       string `dynamodbav:"section"`
	Name          string `dynamodbav:"name"`
	Unit          string `dynamodbav:"unit"`
	QuantityLimit string `dynamodbav:"quantity_limit"`
	UnitPrice     string `dynamodbav:"unit_price"`
}

// EstimateDynamoRepository reads EstimateLimit rows from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
//
// Numeric attributes are stored as strings to keep exact decimal values
// through the round trip.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.EstimateLimit, error) {
	var (
		out     []entities.EstimateLimit
		lastKey map[string]types.AttributeValue
	)

	for {
		resp, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(estimatesContractIDIndex),
			KeyConditionExpression: aws.String("contract_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: contractID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range resp.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromEstimateItem(it))
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = resp.LastEvaluatedKey
	}

	return out, nil
}

func fromEstimateItem(it estimateItem) entities.EstimateLimit {
	return entities.EstimateLimit{
		ID:            it.ID,
		ContractID:    it.ContractID,
		Number:        it.Number,
		Section:       it.Section,
		Name:          it.Name,
		Unit:          it.Unit,
		QuantityLimit: decimalFromString(it.QuantityLimit),
		UnitPrice:     decimalFromString(it.UnitPrice),
	}
}
