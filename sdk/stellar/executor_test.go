package stellar_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hourvault/hourvault/sdk"
	sdkerrors "github.com/hourvault/hourvault/sdk/errors"
	sdkmocks "github.com/hourvault/hourvault/sdk/mocks"
	"github.com/hourvault/hourvault/sdk/stellar"
	"github.com/hourvault/hourvault/sdk/stellar/mocks"
	"github.com/hourvault/hourvault/types"
)

const (
	testPassphrase = "Test SDF Network ; September 2015"
	signedXDR      = "signed-envelope"
	txHash         = "3389e9f0f1a65f19736cacf544c2e825313e8447f569233bb8db39aa607c8889"
)

func contractAddress(t *testing.T, seed byte) string {
	t.Helper()

	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = seed
	}
	addr, err := strkey.Encode(strkey.VersionByteContract, raw)
	require.NoError(t, err)

	return addr
}

func emptySorobanData(t *testing.T) string {
	t.Helper()

	data, err := xdr.MarshalBase64(xdr.SorobanTransactionData{})
	require.NoError(t, err)

	return data
}

func metaWithReturn(t *testing.T, rv xdr.ScVal) string {
	t.Helper()

	meta := xdr.TransactionMeta{
		V: 3,
		V3: &xdr.TransactionMetaV3{
			SorobanMeta: &xdr.SorobanTransactionMeta{ReturnValue: rv},
		},
	}
	encoded, err := xdr.MarshalBase64(meta)
	require.NoError(t, err)

	return encoded
}

func okSimulation(t *testing.T) *stellar.SimulateTransactionResponse {
	t.Helper()

	return &stellar.SimulateTransactionResponse{
		TransactionData: emptySorobanData(t),
		MinResourceFee:  5000,
		Results:         []stellar.SimulateHostFunctionResult{{XDR: "AAAAAQ=="}},
	}
}

type stageRecorder struct {
	mu     sync.Mutex
	stages []stellar.Stage
}

func (r *stageRecorder) record(s stellar.Stage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, s)
}

func TestExecutor_Invoke(t *testing.T) {
	t.Parallel()

	source := keypair.MustRandom().Address()
	contractID := contractAddress(t, 1)
	op := types.NewOperation(contractID, "get_token_count")
	account := &txnbuild.SimpleAccount{AccountID: source, Sequence: 100}

	tests := []struct {
		name       string
		setup      func(c *mocks.RPCClient, s *sdkmocks.Signer)
		wantStages []stellar.Stage
		wantErr    func(t *testing.T, err error)
		wantResult func(t *testing.T, res types.TransactionResult)
	}{
		{
			name: "success after polling",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(account, nil).Once()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(okSimulation(t), nil).Once()
				s.EXPECT().SignTransaction(mock.Anything, mock.Anything, sdk.SignOptions{
					NetworkPassphrase: testPassphrase,
					Address:           source,
				}).Return(signedXDR, nil).Once()
				c.EXPECT().SendTransaction(mock.Anything, signedXDR).
					Return(&stellar.SendTransactionResponse{Status: "PENDING", Hash: txHash}, nil).Once()
				c.EXPECT().GetTransaction(mock.Anything, txHash).
					Return(&stellar.GetTransactionResponse{Status: "NOT_FOUND"}, nil).Twice()
				c.EXPECT().GetTransaction(mock.Anything, txHash).
					Return(&stellar.GetTransactionResponse{
						Status:        "SUCCESS",
						Ledger:        42,
						ResultMetaXDR: metaWithReturn(t, stellar.U64(7)),
					}, nil).Once()
			},
			wantStages: []stellar.Stage{
				stellar.StageBuilding,
				stellar.StagePreparing,
				stellar.StageAwaitingSignature,
				stellar.StageSubmitting,
				stellar.StagePolling,
			},
			wantResult: func(t *testing.T, res types.TransactionResult) {
				t.Helper()
				assert.Equal(t, txHash, res.Hash)
				assert.Equal(t, uint32(42), res.Ledger)
				assert.Equal(t, types.TransactionStatusSuccess, res.Status)
				require.NotNil(t, res.ReturnValue)
				native, err := stellar.ToNative(*res.ReturnValue)
				require.NoError(t, err)
				assert.Equal(t, uint64(7), native)
			},
		},
		{
			name: "immediate success skips polling",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(account, nil).Once()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(okSimulation(t), nil).Once()
				s.EXPECT().SignTransaction(mock.Anything, mock.Anything, mock.Anything).Return(signedXDR, nil).Once()
				c.EXPECT().SendTransaction(mock.Anything, signedXDR).
					Return(&stellar.SendTransactionResponse{Status: "SUCCESS", Hash: txHash}, nil).Once()
			},
			wantStages: []stellar.Stage{
				stellar.StageBuilding,
				stellar.StagePreparing,
				stellar.StageAwaitingSignature,
				stellar.StageSubmitting,
			},
			wantResult: func(t *testing.T, res types.TransactionResult) {
				t.Helper()
				assert.Equal(t, txHash, res.Hash)
				assert.Equal(t, types.TransactionStatusSuccess, res.Status)
			},
		},
		{
			name: "account lookup fails",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(nil, stellar.ErrAccountNotFound).Once()
			},
			wantStages: []stellar.Stage{stellar.StageBuilding},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.AccountLookupError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, source, target.Address)
				assert.ErrorIs(t, err, stellar.ErrAccountNotFound)
			},
		},
		{
			name: "simulation error never reaches the signer",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(account, nil).Once()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).
					Return(&stellar.SimulateTransactionResponse{
						Error:  "HostError: Error(Contract, #3)",
						Events: []string{"AAAA"},
					}, nil).Once()
			},
			wantStages: []stellar.Stage{stellar.StageBuilding, stellar.StagePreparing},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.SimulationError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "get_token_count", target.Method)
				assert.Contains(t, target.Reason, "Error(Contract, #3)")
				assert.Contains(t, target.Reason, "diagnosticEvents=[0: AAAA]")
			},
		},
		{
			name: "archived contract state needs a restore",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(account, nil).Once()
				sim := okSimulation(t)
				sim.RestorePreamble = &stellar.RestorePreamble{MinResourceFee: 4200}
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(sim, nil).Once()
			},
			wantStages: []stellar.Stage{stellar.StageBuilding, stellar.StagePreparing},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.SimulationError
				require.ErrorAs(t, err, &target)
				assert.Contains(t, target.Reason, "must be restored")
				assert.Contains(t, target.Reason, "4200 stroops")
			},
		},
		{
			name: "simulation transport error",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(account, nil).Once()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).
					Return(nil, &stellar.RPCError{Code: -32602, Message: "invalid params"}).Once()
			},
			wantStages: []stellar.Stage{stellar.StageBuilding, stellar.StagePreparing},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.SimulationError
				require.ErrorAs(t, err, &target)
				assert.Contains(t, target.Reason, "invalid params")
			},
		},
		{
			name: "signing rejected never submits",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(account, nil).Once()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(okSimulation(t), nil).Once()
				s.EXPECT().SignTransaction(mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("User declined access")).Once()
			},
			wantStages: []stellar.Stage{
				stellar.StageBuilding,
				stellar.StagePreparing,
				stellar.StageAwaitingSignature,
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.SigningRejectedError
				require.ErrorAs(t, err, &target)
				assert.True(t, sdkerrors.IsCancellation(err))
			},
		},
		{
			name: "submission rejected",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(account, nil).Once()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(okSimulation(t), nil).Once()
				s.EXPECT().SignTransaction(mock.Anything, mock.Anything, mock.Anything).Return(signedXDR, nil).Once()
				c.EXPECT().SendTransaction(mock.Anything, signedXDR).
					Return(&stellar.SendTransactionResponse{Status: "ERROR", Hash: txHash, ErrorResultXDR: "not-xdr"}, nil).Once()
			},
			wantStages: []stellar.Stage{
				stellar.StageBuilding,
				stellar.StagePreparing,
				stellar.StageAwaitingSignature,
				stellar.StageSubmitting,
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.SubmissionRejectedError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "ERROR", target.Status)
				assert.Contains(t, target.Reason, "status=ERROR")
				assert.Contains(t, target.Reason, "resultXdr=not-xdr")
			},
		},
		{
			name: "try again later is not retried",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(account, nil).Once()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(okSimulation(t), nil).Once()
				s.EXPECT().SignTransaction(mock.Anything, mock.Anything, mock.Anything).Return(signedXDR, nil).Once()
				c.EXPECT().SendTransaction(mock.Anything, signedXDR).
					Return(&stellar.SendTransactionResponse{Status: "TRY_AGAIN_LATER", Hash: txHash}, nil).Once()
			},
			wantStages: []stellar.Stage{
				stellar.StageBuilding,
				stellar.StagePreparing,
				stellar.StageAwaitingSignature,
				stellar.StageSubmitting,
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.SubmissionRejectedError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "TRY_AGAIN_LATER", target.Status)
			},
		},
		{
			name: "execution failed",
			setup: func(c *mocks.RPCClient, s *sdkmocks.Signer) {
				c.EXPECT().GetAccount(mock.Anything, source).Return(account, nil).Once()
				c.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(okSimulation(t), nil).Once()
				s.EXPECT().SignTransaction(mock.Anything, mock.Anything, mock.Anything).Return(signedXDR, nil).Once()
				c.EXPECT().SendTransaction(mock.Anything, signedXDR).
					Return(&stellar.SendTransactionResponse{Status: "PENDING", Hash: txHash}, nil).Once()
				c.EXPECT().GetTransaction(mock.Anything, txHash).
					Return(&stellar.GetTransactionResponse{Status: "FAILED", Ledger: 9}, nil).Once()
			},
			wantStages: []stellar.Stage{
				stellar.StageBuilding,
				stellar.StagePreparing,
				stellar.StageAwaitingSignature,
				stellar.StageSubmitting,
				stellar.StagePolling,
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.ExecutionFailedError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, txHash, target.Hash)
				assert.False(t, stellar.IsTimedOut(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewRPCClient(t)
			signer := sdkmocks.NewSigner(t)
			tt.setup(client, signer)

			rec := &stageRecorder{}
			executor := stellar.NewExecutor(client, signer, stellar.ExecutorOptions{
				NetworkPassphrase: testPassphrase,
				PollInterval:      time.Millisecond,
				OnStage:           rec.record,
			})

			res, err := executor.Invoke(context.Background(), source, op)
			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)
			} else {
				require.NoError(t, err)
				tt.wantResult(t, res)
			}
			assert.Equal(t, tt.wantStages, rec.stages)
		})
	}
}

func TestExecutor_Invoke_TimesOutAfterExactAttempts(t *testing.T) {
	t.Parallel()

	const attempts = 4

	source := keypair.MustRandom().Address()
	client := mocks.NewRPCClient(t)
	signer := sdkmocks.NewSigner(t)

	client.EXPECT().GetAccount(mock.Anything, source).
		Return(&txnbuild.SimpleAccount{AccountID: source, Sequence: 1}, nil).Once()
	client.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(okSimulation(t), nil).Once()
	signer.EXPECT().SignTransaction(mock.Anything, mock.Anything, mock.Anything).Return(signedXDR, nil).Once()
	client.EXPECT().SendTransaction(mock.Anything, signedXDR).
		Return(&stellar.SendTransactionResponse{Status: "PENDING", Hash: txHash}, nil).Once()
	client.EXPECT().GetTransaction(mock.Anything, txHash).
		Return(&stellar.GetTransactionResponse{Status: "NOT_FOUND"}, nil).Times(attempts - 1)
	client.EXPECT().GetTransaction(mock.Anything, txHash).
		Return(nil, errors.New("connection reset")).Once()

	executor := stellar.NewExecutor(client, signer, stellar.ExecutorOptions{
		NetworkPassphrase: testPassphrase,
		PollInterval:      time.Millisecond,
		MaxPollAttempts:   attempts,
	})

	res, err := executor.Invoke(context.Background(), source, types.NewOperation(contractAddress(t, 2), "redeem_receipt"))
	require.Error(t, err)

	var target *sdkerrors.TimedOutError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, attempts, target.Attempts)
	assert.Equal(t, "NOT_FOUND", target.LastStatus)
	assert.Equal(t, txHash, res.Hash)
	assert.True(t, stellar.IsTimedOut(err))
	client.AssertNumberOfCalls(t, "GetTransaction", attempts)
}

func TestExecutor_Invoke_CancelledWhilePolling(t *testing.T) {
	t.Parallel()

	source := keypair.MustRandom().Address()
	client := mocks.NewRPCClient(t)
	signer := sdkmocks.NewSigner(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client.EXPECT().GetAccount(mock.Anything, source).
		Return(&txnbuild.SimpleAccount{AccountID: source, Sequence: 1}, nil).Once()
	client.EXPECT().SimulateTransaction(mock.Anything, mock.Anything).Return(okSimulation(t), nil).Once()
	signer.EXPECT().SignTransaction(mock.Anything, mock.Anything, mock.Anything).Return(signedXDR, nil).Once()
	client.EXPECT().SendTransaction(mock.Anything, signedXDR).
		Return(&stellar.SendTransactionResponse{Status: "PENDING", Hash: txHash}, nil).Once()
	client.EXPECT().GetTransaction(mock.Anything, txHash).
		RunAndReturn(func(context.Context, string) (*stellar.GetTransactionResponse, error) {
			cancel()

			return &stellar.GetTransactionResponse{Status: "NOT_FOUND"}, nil
		}).Once()

	executor := stellar.NewExecutor(client, signer, stellar.ExecutorOptions{
		NetworkPassphrase: testPassphrase,
		PollInterval:      time.Hour,
	})

	_, err := executor.Invoke(ctx, source, types.NewOperation(contractAddress(t, 3), "redeem_receipt"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_Pay(t *testing.T) {
	t.Parallel()

	from := keypair.MustRandom().Address()
	to := keypair.MustRandom().Address()

	t.Run("non-positive amount is skipped", func(t *testing.T) {
		t.Parallel()

		client := mocks.NewRPCClient(t)
		signer := sdkmocks.NewSigner(t)
		executor := stellar.NewExecutor(client, signer, stellar.ExecutorOptions{NetworkPassphrase: testPassphrase})

		res, err := executor.Pay(context.Background(), from, to, big.NewInt(0))
		require.NoError(t, err)
		assert.Empty(t, res.Hash)
	})

	t.Run("payment is signed without simulation", func(t *testing.T) {
		t.Parallel()

		client := mocks.NewRPCClient(t)
		signer := sdkmocks.NewSigner(t)

		client.EXPECT().GetAccount(mock.Anything, from).
			Return(&txnbuild.SimpleAccount{AccountID: from, Sequence: 10}, nil).Once()
		signer.EXPECT().SignTransaction(mock.Anything, mock.Anything, sdk.SignOptions{
			NetworkPassphrase: testPassphrase,
			Address:           from,
		}).RunAndReturn(func(_ context.Context, envelope string, _ sdk.SignOptions) (string, error) {
			generic, err := txnbuild.TransactionFromXDR(envelope)
			require.NoError(t, err)
			tx, ok := generic.Transaction()
			require.True(t, ok)
			require.Len(t, tx.Operations(), 1)
			payment, ok := tx.Operations()[0].(*txnbuild.Payment)
			require.True(t, ok)
			assert.Equal(t, to, payment.Destination)
			assert.Equal(t, "6.0000000", payment.Amount)

			return signedXDR, nil
		}).Once()
		client.EXPECT().SendTransaction(mock.Anything, signedXDR).
			Return(&stellar.SendTransactionResponse{Status: "PENDING", Hash: txHash}, nil).Once()
		client.EXPECT().GetTransaction(mock.Anything, txHash).
			Return(&stellar.GetTransactionResponse{Status: "SUCCESS", Ledger: 5}, nil).Once()

		executor := stellar.NewExecutor(client, signer, stellar.ExecutorOptions{
			NetworkPassphrase: testPassphrase,
			PollInterval:      time.Millisecond,
		})

		res, err := executor.Pay(context.Background(), from, to, big.NewInt(60_000_000))
		require.NoError(t, err)
		assert.Equal(t, txHash, res.Hash)
	})
}
