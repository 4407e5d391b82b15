package repository

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// chunkStrings splits ids into slices of at most size elements, preserving
// order. DynamoDB caps `IN` filter operands and transaction items at 100, so
// every multi-id operation in this package goes through it.
func chunkStrings(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// inFilter builds an `#attr IN (:v0, :v1, ...)` expression fragment plus its
// value map, with placeholders prefixed to stay unique inside a larger
// expression.
func inFilter(attrPlaceholder string, prefix string, values []string) (string, map[string]types.AttributeValue) {
	expr := attrPlaceholder + " IN ("
	vals := make(map[string]types.AttributeValue, len(values))
	for i, v := range values {
		ph := fmt.Sprintf(":%s%d", prefix, i)
		if i > 0 {
			expr += ", "
		}
		expr += ph
		vals[ph] = &types.AttributeValueMemberS{Value: v}
	}
	expr += ")"
	return expr, vals
}

func decimalToString(d decimal.Decimal) string {
	return d.String()
}

// decimalFromString tolerates empty/garbage stored values the same way the
// rest of the service tolerates missing numerics: as zero.
func decimalFromString(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
