/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"

	"github.com/suparena/ddbexport/attrvalue"
	storeerrors "github.com/suparena/ddbexport/errors"
	"github.com/suparena/ddbexport/storagemodels"
)

// API is the subset of the DynamoDB client the source uses. *dynamodb.Client
// satisfies it.
type API interface {
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
	ListTables(ctx context.Context, params *sdk.ListTablesInput, optFns ...func(*sdk.Options)) (*sdk.ListTablesOutput, error)
}

// ClientConfig selects credentials and endpoint for NewDynamoDBClient. Empty
// fields fall back to the default AWS credential chain.
type ClientConfig struct {
	Region    string
	Profile   string
	AccessKey string
	SecretKey string
	// Endpoint overrides the service endpoint, e.g. DynamoDB Local.
	Endpoint string
}

// DynamodbSource implements datastore.Catalog on top of DynamoDB Scan and ListTables.
type DynamodbSource struct {
	client  API
	options storagemodels.ScanOptions
	log     zerolog.Logger
}

// NewDynamoDBClient initializes a DynamoDB client from a named profile, static
// keys, or the default credential chain.
func NewDynamoDBClient(ctx context.Context, cc ClientConfig) (*sdk.Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cc.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cc.Region))
	}
	if cc.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cc.Profile))
	}
	if cc.AccessKey != "" && cc.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cc.AccessKey, cc.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if cc.Endpoint != "" {
			o.BaseEndpoint = aws.String(cc.Endpoint)
		}
	})
	return client, nil
}

// NewDynamodbSource wraps an existing client.
func NewDynamodbSource(client API, log zerolog.Logger, opts ...storagemodels.ScanOption) *DynamodbSource {
	return &DynamodbSource{
		client:  client,
		options: storagemodels.Apply(opts...),
		log:     log,
	}
}

// Open builds a client from cc and wraps it.
func Open(ctx context.Context, cc ClientConfig, log zerolog.Logger, opts ...storagemodels.ScanOption) (*DynamodbSource, error) {
	client, err := NewDynamoDBClient(ctx, cc)
	if err != nil {
		return nil, storeerrors.NewTransportError("connect", "", err)
	}

	log.Debug().
		Str("region", cc.Region).
		Str("profile", cc.Profile).
		Str("endpoint", cc.Endpoint).
		Msg("DynamoDB client initialized")
	return NewDynamodbSource(client, log, opts...), nil
}

// ListTables returns every table name in the region, following pagination.
func (d *DynamodbSource) ListTables(ctx context.Context) ([]string, error) {
	return d.ListTablesWithParams(ctx, &storagemodels.ListTablesParams{})
}

// ListTablesWithParams lists table names with an explicit page size.
func (d *DynamodbSource) ListTablesWithParams(ctx context.Context, params *storagemodels.ListTablesParams) ([]string, error) {
	input := &sdk.ListTablesInput{Limit: params.PageSize}
	paginator := sdk.NewListTablesPaginator(d.client, input)

	var tables []string
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, classifyError("list tables", "", err)
		}
		tables = append(tables, out.TableNames...)
	}

	d.log.Debug().Int("tables", len(tables)).Msg("listed tables")
	return tables, nil
}

// Scan reads every item of table using the source's scan options.
func (d *DynamodbSource) Scan(ctx context.Context, table string) ([]attrvalue.Item, error) {
	return d.ScanWithParams(ctx, &storagemodels.ScanParams{TableName: table})
}

// classifyError wraps an SDK failure as a TransportError, marking missing
// tables as not found.
func classifyError(op, table string, err error) error {
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return storeerrors.NewTransportError(op, table,
			fmt.Errorf("%w: %s", storeerrors.NewNotFoundError("table", table), rnf.ErrorMessage()))
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return storeerrors.NewTransportError(op, table,
			fmt.Errorf("%s: %s: %w", apiErr.ErrorCode(), apiErr.ErrorMessage(), err))
	}
	return storeerrors.NewTransportError(op, table, err)
}
