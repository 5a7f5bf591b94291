/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	storeerrors "github.com/suparena/ddbexport/errors"
	"github.com/suparena/ddbexport/storagemodels"
)

// fakeAPI serves a table in fixed-size pages and can fail the first calls.
type fakeAPI struct {
	items      []map[string]types.AttributeValue
	tables     []string
	failures   []error
	scanCalls  int
	lastLimits []int32
}

func (f *fakeAPI) Scan(ctx context.Context, in *sdk.ScanInput, _ ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	f.scanCalls++
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		return nil, err
	}

	limit := len(f.items)
	if in.Limit != nil {
		limit = int(*in.Limit)
		f.lastLimits = append(f.lastLimits, *in.Limit)
	}

	start := 0
	if in.ExclusiveStartKey != nil {
		n, _ := strconv.Atoi(in.ExclusiveStartKey["idx"].(*types.AttributeValueMemberN).Value)
		start = n + 1
	}
	end := start + limit
	if end > len(f.items) {
		end = len(f.items)
	}

	out := &sdk.ScanOutput{Items: f.items[start:end]}
	if end < len(f.items) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"idx": &types.AttributeValueMemberN{Value: strconv.Itoa(end - 1)},
		}
	}
	return out, nil
}

func (f *fakeAPI) ListTables(ctx context.Context, in *sdk.ListTablesInput, _ ...func(*sdk.Options)) (*sdk.ListTablesOutput, error) {
	start := 0
	if in.ExclusiveStartTableName != nil {
		for i, name := range f.tables {
			if name == *in.ExclusiveStartTableName {
				start = i + 1
			}
		}
	}
	end := start + 2
	if end > len(f.tables) {
		end = len(f.tables)
	}

	out := &sdk.ListTablesOutput{TableNames: f.tables[start:end]}
	if end < len(f.tables) {
		out.LastEvaluatedTableName = aws.String(f.tables[end-1])
	}
	return out, nil
}

func makeItems(n int) []map[string]types.AttributeValue {
	items := make([]map[string]types.AttributeValue, n)
	for i := range items {
		items[i] = map[string]types.AttributeValue{
			"PK":  &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%d", i)},
			"idx": &types.AttributeValueMemberN{Value: strconv.Itoa(i)},
		}
	}
	return items
}

func TestScanFollowsPagination(t *testing.T) {
	api := &fakeAPI{items: makeItems(7)}

	var pages []int
	src := NewDynamodbSource(api, zerolog.Nop(),
		storagemodels.WithPageSize(3),
		storagemodels.WithProgressHandler(func(p storagemodels.ScanProgress) {
			pages = append(pages, p.PagesScanned)
		}),
	)

	items, err := src.Scan(context.Background(), "users")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(items) != 7 {
		t.Fatalf("Expected 7 items, got %d", len(items))
	}
	if api.scanCalls != 3 {
		t.Errorf("Expected 3 pages, got %d", api.scanCalls)
	}
	if len(pages) != 3 || pages[2] != 3 {
		t.Errorf("Expected progress after every page, got %v", pages)
	}
	if pk, _ := items[6]["PK"].Text(); pk != "USER#6" {
		t.Errorf("Expected items in scan order, last PK %s", pk)
	}
	for _, limit := range api.lastLimits {
		if limit != 3 {
			t.Errorf("Expected page size 3, got %d", limit)
		}
	}
}

func TestScanMaxItems(t *testing.T) {
	api := &fakeAPI{items: makeItems(10)}
	src := NewDynamodbSource(api, zerolog.Nop(), storagemodels.WithPageSize(4))

	items, err := src.ScanWithParams(context.Background(), &storagemodels.ScanParams{TableName: "users", MaxItems: 5})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(items) != 5 || api.scanCalls != 2 {
		t.Errorf("Expected 5 items in 2 pages, got %d items in %d pages", len(items), api.scanCalls)
	}
}

func TestScanRetriesTransientErrors(t *testing.T) {
	api := &fakeAPI{
		items: makeItems(2),
		failures: []error{
			&types.ProvisionedThroughputExceededException{Message: aws.String("slow down")},
			&types.InternalServerError{Message: aws.String("oops")},
		},
	}
	src := NewDynamodbSource(api, zerolog.Nop(),
		storagemodels.WithMaxRetries(2),
		storagemodels.WithRetryBackoff(time.Millisecond),
	)

	items, err := src.Scan(context.Background(), "users")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(items) != 2 || api.scanCalls != 3 {
		t.Errorf("Expected success on third attempt, got %d items after %d calls", len(items), api.scanCalls)
	}
}

func TestScanGivesUpAfterRetries(t *testing.T) {
	api := &fakeAPI{
		items: makeItems(2),
		failures: []error{
			&types.RequestLimitExceeded{Message: aws.String("1")},
			&types.RequestLimitExceeded{Message: aws.String("2")},
		},
	}
	src := NewDynamodbSource(api, zerolog.Nop(),
		storagemodels.WithMaxRetries(1),
		storagemodels.WithRetryBackoff(time.Millisecond),
	)

	_, err := src.Scan(context.Background(), "users")
	if !storeerrors.IsTransport(err) {
		t.Fatalf("Expected transport error, got %v", err)
	}
	var rle *types.RequestLimitExceeded
	if !errors.As(err, &rle) {
		t.Errorf("Expected the SDK error to stay in the chain, got %v", err)
	}
}

func TestScanMissingTable(t *testing.T) {
	api := &fakeAPI{
		failures: []error{&types.ResourceNotFoundException{Message: aws.String("Requested resource not found")}},
	}
	src := NewDynamodbSource(api, zerolog.Nop())

	_, err := src.Scan(context.Background(), "missing")
	if !storeerrors.IsTransport(err) || !storeerrors.IsNotFound(err) {
		t.Fatalf("Expected transport not-found error, got %v", err)
	}
	if api.scanCalls != 1 {
		t.Errorf("Missing table should not be retried, got %d calls", api.scanCalls)
	}
}

func TestScanCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewDynamodbSource(&fakeAPI{items: makeItems(1)}, zerolog.Nop())
	_, err := src.Scan(ctx, "users")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestListTablesFollowsPagination(t *testing.T) {
	api := &fakeAPI{tables: []string{"a", "b", "c", "d", "e"}}
	src := NewDynamodbSource(api, zerolog.Nop())

	tables, err := src.ListTables(context.Background())
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}
	if fmt.Sprint(tables) != "[a b c d e]" {
		t.Errorf("Unexpected tables: %v", tables)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"throughput", &types.ProvisionedThroughputExceededException{}, true},
		{"wrapped internal", fmt.Errorf("page 2: %w", &types.InternalServerError{}), true},
		{"not found", &types.ResourceNotFoundException{}, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
