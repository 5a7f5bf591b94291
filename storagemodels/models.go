/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ScanParams defines parameters for a full-table DynamoDB Scan.
type ScanParams struct {
	// TableName is the DynamoDB table name.
	TableName string
	// IndexName is optional if you wish to scan a secondary index.
	IndexName *string
	// ConsistentRead requests strongly consistent reads.
	ConsistentRead *bool
	// ExclusiveStartKey resumes a scan from a previous page.
	ExclusiveStartKey map[string]types.AttributeValue
	// MaxItems stops the scan once this many items were read. Zero means no limit.
	MaxItems int64
}

// ListTablesParams defines parameters for listing tables.
type ListTablesParams struct {
	// PageSize is the number of names requested per ListTables call.
	PageSize *int32
}
