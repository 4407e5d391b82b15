package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stroyset/acts-service/internal/domain/entities"
	"github.com/stroyset/acts-service/internal/usecase/interfaces"
)

const (
	defaultWorkEntriesTableName = "work_entries"

	// estimateIDChunkSize caps the operands of an IN filter; DynamoDB
	// rejects expressions above 100 operands.
	estimateIDChunkSize = 100

	// attachChunkSize is the TransactWriteItems item cap.
	attachChunkSize = 100
)

// ErrEntriesAlreadyAttached signals a lost commit race: another act consumed
// at least one of the requested entries between preview and attach.
var ErrEntriesAlreadyAttached = errors.New("one or more work entries are already attached to an act")

type workEntryItem struct {
	ID         string `dynamodbav:"id"`
	EstimateID string `dynamodbav:"estimate_id,omitempty"`
	Name       string `dynamodbav:"name"`
	Unit       string `dynamodbav:"unit"`
	Quantity   string `dynamodbav:"quantity"`
	Price      string `dynamodbav:"price,omitempty"`
	WorkDate   string `dynamodbav:"work_date"`
	ActID      string `dynamodbav:"act_id,omitempty"`
}

// WorkEntryDynamoRepository persists WorkEntry rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - act_id is absent while an entry is open; attachment writes it with a
//     conditional update so it can only ever be set once.
//
// Multi-estimate reads go through filtered scans chunked by estimate id.
// Sums and list concatenation are associative, so results do not depend on
// the chunking.
type WorkEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkEntryRepository = (*WorkEntryDynamoRepository)(nil)

func NewWorkEntryDynamoRepository(ddb *dynamodb.Client) *WorkEntryDynamoRepository {
	return &WorkEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ENTRIES_TABLE", defaultWorkEntriesTableName),
	}
}

func (r *WorkEntryDynamoRepository) SumAttachedQuantities(ctx context.Context, estimateIDs []string) (map[string]decimal.Decimal, error) {
	sums := make(map[string]decimal.Decimal)

	for _, chunk := range chunkStrings(estimateIDs, estimateIDChunkSize) {
		inExpr, vals := inFilter("#eid", "e", chunk)
		filter := "attribute_exists(#act_id) AND " + inExpr
		names := map[string]string{"#eid": "estimate_id", "#act_id": "act_id"}

		items, err := r.scanAll(ctx, filter, names, vals)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			sums[it.EstimateID] = sums[it.EstimateID].Add(decimalFromString(it.Quantity))
		}
	}

	return sums, nil
}

func (r *WorkEntryDynamoRepository) ListOpenByEstimateIDs(ctx context.Context, estimateIDs []string, periodTo *time.Time) ([]entities.WorkEntry, error) {
	var entries []entities.WorkEntry

	for _, chunk := range chunkStrings(estimateIDs, estimateIDChunkSize) {
		inExpr, vals := inFilter("#eid", "e", chunk)
		filter := "attribute_not_exists(#act_id) AND " + inExpr
		names := map[string]string{"#eid": "estimate_id", "#act_id": "act_id"}
		if periodTo != nil {
			filter += " AND #wd <= :pto"
			names["#wd"] = "work_date"
			vals[":pto"] = &types.AttributeValueMemberS{Value: periodTo.UTC().Format(time.RFC3339Nano)}
		}

		items, err := r.scanAll(ctx, filter, names, vals)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			entries = append(entries, fromWorkEntryItem(it))
		}
	}

	// FIFO consumption wants oldest first. The sort is stable so entries
	// sharing a work date keep their read order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WorkDate.Before(entries[j].WorkDate)
	})

	return entries, nil
}

func (r *WorkEntryDynamoRepository) AttachToAct(ctx context.Context, actID string, entryIDs []string) error {
	for i, chunk := range chunkStrings(entryIDs, attachChunkSize) {
		items := make([]types.TransactWriteItem, 0, len(chunk))
		for _, id := range chunk {
			items = append(items, types.TransactWriteItem{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					UpdateExpression:    aws.String("SET #act_id = :act"),
					ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#act_id)"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#act_id": "act_id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":act": &types.AttributeValueMemberS{Value: actID},
					},
				},
			})
		}

		_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: items,
			// Deterministic token per (act, chunk) so a retried request
			// cannot attach the same batch twice.
			ClientRequestToken: aws.String(attachRequestToken(actID, i)),
		})
		if err != nil {
			var canceled *types.TransactionCanceledException
			if errors.As(err, &canceled) {
				return fmt.Errorf("%w: %v", ErrEntriesAlreadyAttached, err)
			}
			return err
		}
	}

	return nil
}

// scanAll runs a filtered scan across all pages.
func (r *WorkEntryDynamoRepository) scanAll(ctx context.Context, filter string, names map[string]string, vals map[string]types.AttributeValue) ([]workEntryItem, error) {
	var (
		out     []workEntryItem
		lastKey map[string]types.AttributeValue
	)

	for {
		resp, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: vals,
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range resp.Items {
			var it workEntryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, it)
		}

		if len(resp.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = resp.LastEvaluatedKey
	}

	return out, nil
}

func attachRequestToken(actID string, chunk int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("attach/%s/%d", actID, chunk))).String()
}

func fromWorkEntryItem(it workEntryItem) entities.WorkEntry {
	wd, _ := time.Parse(time.RFC3339Nano, it.WorkDate)
	e := entities.WorkEntry{
		ID:         it.ID,
		EstimateID: it.EstimateID,
		Name:       it.Name,
		Unit:       it.Unit,
		Quantity:   decimalFromString(it.Quantity),
		WorkDate:   wd,
		ActID:      it.ActID,
	}
	if it.Price != "" {
		p := decimalFromString(it.Price)
		e.Price = &p
	}
	return e
}
