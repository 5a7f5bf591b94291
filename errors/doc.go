/*
Package errors provides semantic error types for ddbexport.

The package defines the failure classes of an export run with specific types
that can be checked using the standard errors.Is() function or the provided
helper functions.

Common Errors:

	var (
	    ErrNotFound      = errors.New("not found")
	    ErrAlreadyExists = errors.New("already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrTransport     = errors.New("transport failure")
	)

Usage:

	summary, err := pipeline.Run(ctx, table)
	if err != nil {
	    if errors.IsTransport(err) {
	        // nothing was written; report the underlying cause
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("table", "orders")
	err := errors.NewValidationError("filter", "expected attribute=value")
	err := errors.NewTransportError("scan", "orders", cause)

Empty results (no items, no matches) are not errors; they are reported through
the export summary. Values with unrecognized tags are never errors either; they
are decoded to their raw text.
*/
package errors
