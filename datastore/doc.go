/*
Package datastore defines the transport interfaces ddbexport reads items through.

	type Source interface {
	    Scan(ctx context.Context, table string) ([]attrvalue.Item, error)
	}

	type TableLister interface {
	    ListTables(ctx context.Context) ([]string, error)
	}

A Source resolves pagination itself and returns the complete item sequence of a
table. Failures reaching the store are returned as errors.TransportError.

Implementations:
  - ddb: DynamoDB Scan and ListTables with paging and retries
  - jsonfile: a DynamoDB JSON export file ({"Items": [...]})
  - mock: In-memory mock implementation for testing
*/
package datastore
