package stellar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hourvault/hourvault/sdk/stellar"
	"github.com/hourvault/hourvault/sdk/stellar/mocks"
	"github.com/hourvault/hourvault/types"
)

func encodedScVal(t *testing.T, v xdr.ScVal) string {
	t.Helper()

	s, err := xdr.MarshalBase64(v)
	require.NoError(t, err)

	return s
}

func TestInspector_Query(t *testing.T) {
	t.Parallel()

	contractID := contractAddress(t, 4)
	op := types.NewOperation(contractID, stellar.MethodGetReceipt, stellar.U64(11))

	tests := []struct {
		name   string
		setup  func(t *testing.T, c *mocks.RPCClient)
		wantOK bool
		want   any
	}{
		{
			name: "return value",
			setup: func(t *testing.T, c *mocks.RPCClient) {
				t.Helper()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).
					Return(&stellar.SimulateTransactionResponse{
						Results: []stellar.SimulateHostFunctionResult{{XDR: encodedScVal(t, stellar.U64(3))}},
					}, nil).Once()
			},
			wantOK: true,
			want:   uint64(3),
		},
		{
			name: "simulation error is nothing",
			setup: func(t *testing.T, c *mocks.RPCClient) {
				t.Helper()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).
					Return(&stellar.SimulateTransactionResponse{Error: "HostError"}, nil).Once()
			},
		},
		{
			name: "transport error is nothing",
			setup: func(t *testing.T, c *mocks.RPCClient) {
				t.Helper()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).
					Return(nil, errors.New("dial tcp: refused")).Once()
			},
		},
		{
			name: "no results is nothing",
			setup: func(t *testing.T, c *mocks.RPCClient) {
				t.Helper()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).
					Return(&stellar.SimulateTransactionResponse{}, nil).Once()
			},
		},
		{
			name: "undecodable return value is nothing",
			setup: func(t *testing.T, c *mocks.RPCClient) {
				t.Helper()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).
					Return(&stellar.SimulateTransactionResponse{
						Results: []stellar.SimulateHostFunctionResult{{XDR: "%%%"}},
					}, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewRPCClient(t)
			tt.setup(t, client)

			val, ok := stellar.NewInspector(client).Query(context.Background(), op)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				native, err := stellar.ToNative(val)
				require.NoError(t, err)
				assert.Equal(t, tt.want, native)
			}
		})
	}
}

func TestInspector_Query_UsesPlaceholderAccount(t *testing.T) {
	t.Parallel()

	client := mocks.NewRPCClient(t)
	client.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, envelope string) (*stellar.SimulateTransactionResponse, error) {
			generic, err := txnbuild.TransactionFromXDR(envelope)
			require.NoError(t, err)
			tx, ok := generic.Transaction()
			require.True(t, ok)
			assert.Equal(t, stellar.PlaceholderAccount, tx.SourceAccount().AccountID)
			assert.Equal(t, int64(1), tx.SequenceNumber())
			assert.Empty(t, tx.Signatures())

			return &stellar.SimulateTransactionResponse{}, nil
		}).Once()

	_, ok := stellar.NewInspector(client).Query(context.Background(),
		types.NewOperation(contractAddress(t, 5), stellar.MethodGetTokenCount))
	assert.False(t, ok)
}
