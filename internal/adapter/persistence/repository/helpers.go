package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// scanAll reads every page of a table. Tables here are small reference
// collections, so a full Scan is acceptable.
func scanAll(ctx context.Context, ddb dynamodb.ScanAPIClient, table string, limit int32) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(table)}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(ddb, input)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if limit > 0 && int32(len(items)) >= limit {
			return items[:limit], nil
		}
	}
	return items, nil
}
