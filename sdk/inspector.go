package sdk

import (
	"context"

	"github.com/stellar/go-stellar-sdk/xdr"

	"github.com/hourvault/hourvault/types"
)

// Inspector reads contract state without a signature.
type Inspector interface {
	// Query simulates a read-only call. The boolean is false when there is nothing to show,
	// whether because the contract holds no data or because the query failed.
	Query(ctx context.Context, op types.Operation) (xdr.ScVal, bool)
}
