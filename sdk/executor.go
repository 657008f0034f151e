package sdk

import (
	"context"
	"math/big"

	"github.com/hourvault/hourvault/types"
)

// Executor submits state-changing transactions and waits for a terminal outcome.
type Executor interface {
	// Invoke runs one contract call signed by source.
	Invoke(ctx context.Context, source string, op types.Operation) (types.TransactionResult, error)

	// Pay transfers amount stroops of the native currency from one account to another.
	Pay(ctx context.Context, from, to string, amount *big.Int) (types.TransactionResult, error)
}
