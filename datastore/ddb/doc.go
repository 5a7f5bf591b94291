/*
Package ddb reads DynamoDB tables for export.

The DynamodbSource supports:
  - Listing every table in a region, following ListTables pagination
  - Full-table Scan, following LastEvaluatedKey until the table is exhausted
  - Per-page retries with linear backoff for throttling and transient errors
  - Named AWS profiles, static keys, or the default credential chain
  - Endpoint override for DynamoDB Local

Scanning:

	src, err := ddb.Open(ctx, ddb.ClientConfig{Region: "eu-west-1", Profile: "prod"}, logger,
	    storagemodels.WithPageSize(500),
	    storagemodels.WithMaxRetries(3),
	    storagemodels.WithProgressHandler(func(p storagemodels.ScanProgress) {
	        log.Printf("Scanned %d items", p.ItemsScanned)
	    }),
	)
	items, err := src.Scan(ctx, "orders")

Items are converted to attrvalue.Item at this boundary. Failures are returned as
errors.TransportError; a missing table also matches errors.ErrNotFound.
*/
package ddb
