/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/ddbexport/attrvalue"
	"github.com/suparena/ddbexport/storagemodels"
)

// ScanWithParams reads a table page by page until DynamoDB stops returning a
// LastEvaluatedKey or params.MaxItems is reached. Each page is retried on
// transient errors; any other failure aborts the scan and nothing is returned.
func (d *DynamodbSource) ScanWithParams(
	ctx context.Context,
	params *storagemodels.ScanParams,
	opts ...storagemodels.ScanOption,
) ([]attrvalue.Item, error) {
	options := d.options
	for _, opt := range opts {
		opt(&options)
	}

	input := &sdk.ScanInput{
		TableName:         aws.String(params.TableName),
		IndexName:         params.IndexName,
		ConsistentRead:    params.ConsistentRead,
		ExclusiveStartKey: params.ExclusiveStartKey,
	}
	if options.PageSize > 0 {
		input.Limit = aws.Int32(options.PageSize)
	}

	var (
		items      []attrvalue.Item
		pageNumber int
		startTime  = time.Now()
	)

	// Progress reporting helper
	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler == nil {
			return
		}
		progress := storagemodels.ScanProgress{
			ItemsScanned: int64(len(items)),
			PagesScanned: pageNumber,
			LastKey:      lastKey,
			StartTime:    startTime,
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(progress.ItemsScanned) / elapsed
		}
		options.ProgressHandler(progress)
	}

	d.log.Info().Str("table", params.TableName).Msg("scanning table")

	for {
		out, err := d.scanWithRetry(ctx, input, options)
		if err != nil {
			return nil, classifyError("scan", params.TableName, err)
		}

		pageNumber++
		items = append(items, attrvalue.FromSDKItems(out.Items)...)

		if params.MaxItems > 0 && int64(len(items)) >= params.MaxItems {
			items = items[:params.MaxItems]
			reportProgress(out.LastEvaluatedKey)
			break
		}

		reportProgress(out.LastEvaluatedKey)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		d.log.Debug().
			Int("page", pageNumber).
			Int("items", len(items)).
			Msg("fetching next page")
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	d.log.Info().
		Str("table", params.TableName).
		Int("items", len(items)).
		Int("pages", pageNumber).
		Msg("total items retrieved")
	return items, nil
}

// scanWithRetry executes one Scan page with configurable retry logic
func (d *DynamodbSource) scanWithRetry(
	ctx context.Context,
	input *sdk.ScanInput,
	options storagemodels.ScanOptions,
) (*sdk.ScanOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		// Check context before each attempt
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := d.client.Scan(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			return nil, err
		}

		// Don't sleep after last attempt
		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			d.log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Dur("backoff", backoff).
				Msg("retrying scan page")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("scan failed after %d retries: %w", options.MaxRetries, lastErr)
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var (
		throughput *types.ProvisionedThroughputExceededException
		limit      *types.RequestLimitExceeded
		internal   *types.InternalServerError
	)
	if errors.As(err, &throughput) || errors.As(err, &limit) || errors.As(err, &internal) {
		return true
	}

	// Check for AWS SDK retryable errors
	var retryable interface{ RetryableError() bool }
	if errors.As(err, &retryable) {
		return retryable.RetryableError()
	}
	return false
}
