/*
Package storagemodels defines the data structures shared by ddbexport transports.

Key Types:

ScanParams:
Parameters for a full-table scan:

	params := &ScanParams{
	    TableName: "my-table",
	    IndexName: aws.String("GSI1"),
	    MaxItems:  10000,
	}

ScanOptions:
Configuration for paging and retries:

	opts := []ScanOption{
	    WithPageSize(25),
	    WithMaxRetries(3),
	    WithRetryBackoff(500 * time.Millisecond),
	    WithProgressHandler(func(p ScanProgress) {
	        log.Printf("scanned %d items in %d pages", p.ItemsScanned, p.PagesScanned)
	    }),
	}

These types keep transport configuration independent of the export pipeline.
*/
package storagemodels
