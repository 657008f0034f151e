package stellar

import (
	"context"

	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"

	"github.com/hourvault/hourvault/sdk"
	"github.com/hourvault/hourvault/types"
)

var _ sdk.Inspector = &Inspector{}

// Inspector runs read-only contract calls by simulating them against a placeholder account.
// No account lookup or signature is involved.
type Inspector struct {
	client RPCClient
}

func NewInspector(client RPCClient) *Inspector {
	return &Inspector{client: client}
}

func (i *Inspector) Query(ctx context.Context, op types.Operation) (xdr.ScVal, bool) {
	lggr := sdk.LoggerFrom(ctx)

	invoke, err := invokeHostFunction(op)
	if err != nil {
		lggr.Errorf("failed to build %s query: %v", op.Method, err)

		return xdr.ScVal{}, false
	}
	tx, err := txParams{
		source:  PlaceholderAccount,
		baseFee: txnbuild.MinBaseFee,
		timeout: DefaultTxTimeout,
		op:      invoke,
	}.build()
	if err != nil {
		lggr.Errorf("failed to build %s query transaction: %v", op.Method, err)

		return xdr.ScVal{}, false
	}
	envelope, err := tx.Base64()
	if err != nil {
		lggr.Errorf("failed to encode %s query: %v", op.Method, err)

		return xdr.ScVal{}, false
	}

	sim, err := i.client.SimulateTransaction(ctx, envelope)
	if err != nil {
		lggr.Errorf("%s query failed: %s", op.Method, DescribeFailure(FailurePayload{Err: err}))

		return xdr.ScVal{}, false
	}
	if sim.Failed() {
		lggr.Errorf("%s query failed: %s", op.Method, DescribeSimulation(sim))

		return xdr.ScVal{}, false
	}
	if len(sim.Results) == 0 || sim.Results[0].XDR == "" {
		return xdr.ScVal{}, false
	}

	var retval xdr.ScVal
	if err = xdr.SafeUnmarshalBase64(sim.Results[0].XDR, &retval); err != nil {
		lggr.Errorf("failed to decode %s return value: %v", op.Method, err)

		return xdr.ScVal{}, false
	}

	return retval, true
}
