package stellar

import (
	"fmt"
	"math/big"
	"time"

	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"

	"github.com/hourvault/hourvault/types"
)

// PlaceholderAccount is a well-known address with no secret key. Read-only calls are built
// against it since they are only simulated.
const PlaceholderAccount = "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF"

// invokeHostFunction builds the single contract-call operation for op.
func invokeHostFunction(op types.Operation) (*txnbuild.InvokeHostFunction, error) {
	contract, err := scAddress(op.ContractID)
	if err != nil {
		return nil, err
	}

	return &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: contract,
				FunctionName:    xdr.ScSymbol(op.Method),
				Args:            op.Args,
			},
		},
	}, nil
}

// txParams holds everything needed to (re)build a transaction from the same sequence number.
type txParams struct {
	source   string
	sequence int64
	baseFee  int64
	timeout  time.Duration
	op       txnbuild.Operation
}

func (p txParams) build() (*txnbuild.Transaction, error) {
	account := txnbuild.SimpleAccount{AccountID: p.source, Sequence: p.sequence}

	return txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        &account,
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{p.op},
		BaseFee:              p.baseFee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimeout(int64(p.timeout / time.Second)),
		},
	})
}

// assemble applies a successful simulation to the contract call: the Soroban resource data, the
// authorization entries and the resource fee.
func assemble(p txParams, invoke *txnbuild.InvokeHostFunction, sim *SimulateTransactionResponse) (*txnbuild.Transaction, error) {
	var data xdr.SorobanTransactionData
	if err := xdr.SafeUnmarshalBase64(sim.TransactionData, &data); err != nil {
		return nil, fmt.Errorf("failed to decode simulated transaction data: %w", err)
	}

	var auth []xdr.SorobanAuthorizationEntry
	if len(sim.Results) > 0 {
		for i, raw := range sim.Results[0].Auth {
			var entry xdr.SorobanAuthorizationEntry
			if err := xdr.SafeUnmarshalBase64(raw, &entry); err != nil {
				return nil, fmt.Errorf("failed to decode auth entry %d: %w", i, err)
			}
			auth = append(auth, entry)
		}
	}

	prepared := *invoke
	prepared.Auth = auth
	prepared.Ext = xdr.TransactionExt{V: 1, SorobanData: &data}

	p.op = &prepared
	p.baseFee += sim.MinResourceFee

	return p.build()
}

func paymentOperation(to string, amount *big.Int) *txnbuild.Payment {
	return &txnbuild.Payment{
		Destination: to,
		Amount:      types.FormatStroops(amount),
		Asset:       txnbuild.NativeAsset{},
	}
}

// returnValueFromMeta extracts the contract return value from a base64 TransactionMeta.
func returnValueFromMeta(metaXDR string) (*xdr.ScVal, error) {
	if metaXDR == "" {
		return nil, nil
	}

	var meta xdr.TransactionMeta
	if err := xdr.SafeUnmarshalBase64(metaXDR, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode transaction meta: %w", err)
	}

	switch meta.V {
	case 3:
		if v3, ok := meta.GetV3(); ok && v3.SorobanMeta != nil {
			rv := v3.SorobanMeta.ReturnValue

			return &rv, nil
		}
	case 4:
		if v4, ok := meta.GetV4(); ok && v4.SorobanMeta != nil {
			return v4.SorobanMeta.ReturnValue, nil
		}
	}

	return nil, nil
}
