package stellar

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/stellar/go-stellar-sdk/txnbuild"

	"github.com/hourvault/hourvault/sdk"
	sdkerrors "github.com/hourvault/hourvault/sdk/errors"
	"github.com/hourvault/hourvault/types"
)

const (
	DefaultTxTimeout       = 30 * time.Second
	DefaultPollInterval    = time.Second
	DefaultMaxPollAttempts = 30
)

// Stage is a step of the transaction workflow.
type Stage string

const (
	StageBuilding          Stage = "building"
	StagePreparing         Stage = "preparing"
	StageAwaitingSignature Stage = "awaiting-signature"
	StageSubmitting        Stage = "submitting"
	StagePolling           Stage = "polling"
)

type ExecutorOptions struct {
	NetworkPassphrase string
	// BaseFee is the inclusion fee in stroops. Defaults to txnbuild.MinBaseFee.
	BaseFee int64
	// TxTimeout bounds the ledger validity window of built transactions.
	TxTimeout time.Duration
	// PollInterval is the constant delay between confirmation checks.
	PollInterval time.Duration
	// MaxPollAttempts is the number of confirmation checks before giving up.
	MaxPollAttempts int
	// OnStage, if set, is called as the workflow enters each stage.
	OnStage func(Stage)
}

func (o ExecutorOptions) withDefaults() ExecutorOptions {
	if o.BaseFee <= 0 {
		o.BaseFee = txnbuild.MinBaseFee
	}
	if o.TxTimeout <= 0 {
		o.TxTimeout = DefaultTxTimeout
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.MaxPollAttempts <= 0 {
		o.MaxPollAttempts = DefaultMaxPollAttempts
	}

	return o
}

var _ sdk.Executor = &Executor{}

// Executor runs state-changing transactions end to end: account lookup, build, simulate,
// signature request, submission and confirmation polling.
//
// Steps of one invocation are strictly sequential. Nothing is retried automatically.
type Executor struct {
	client RPCClient
	signer sdk.Signer
	opts   ExecutorOptions
}

func NewExecutor(client RPCClient, signer sdk.Signer, opts ExecutorOptions) *Executor {
	return &Executor{
		client: client,
		signer: signer,
		opts:   opts.withDefaults(),
	}
}

func (e *Executor) stage(s Stage) {
	if e.opts.OnStage != nil {
		e.opts.OnStage(s)
	}
}

// Invoke runs one contract call signed by source and waits for a terminal outcome.
func (e *Executor) Invoke(ctx context.Context, source string, op types.Operation) (types.TransactionResult, error) {
	lggr := sdk.LoggerFrom(ctx)

	e.stage(StageBuilding)
	account, err := e.client.GetAccount(ctx, source)
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewAccountLookupError(source, err)
	}

	invoke, err := invokeHostFunction(op)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to build %s call: %w", op.Method, err)
	}
	params := txParams{
		source:   source,
		sequence: account.Sequence,
		baseFee:  e.opts.BaseFee,
		timeout:  e.opts.TxTimeout,
		op:       invoke,
	}
	tx, err := params.build()
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to build %s transaction: %w", op.Method, err)
	}

	e.stage(StagePreparing)
	envelope, err := tx.Base64()
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to encode %s transaction: %w", op.Method, err)
	}
	sim, err := e.client.SimulateTransaction(ctx, envelope)
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSimulationError(op.Method, DescribeFailure(FailurePayload{Err: err}))
	}
	if sim.Failed() {
		return types.TransactionResult{}, sdkerrors.NewSimulationError(op.Method, DescribeSimulation(sim))
	}
	if sim.RestorePreamble != nil {
		return types.TransactionResult{}, sdkerrors.NewSimulationError(op.Method, fmt.Sprintf(
			"contract state is archived and must be restored first (restore fee %d stroops)",
			sim.RestorePreamble.MinResourceFee))
	}
	prepared, err := assemble(params, invoke, sim)
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to prepare %s transaction: %w", op.Method, err)
	}
	lggr.Debugf("%s prepared with resource fee %d", op.Method, sim.MinResourceFee)

	return e.signAndSubmit(ctx, source, op.Method, prepared)
}

// Pay sends a native payment of amount stroops. Non-positive amounts are skipped and produce
// an empty result.
func (e *Executor) Pay(ctx context.Context, from, to string, amount *big.Int) (types.TransactionResult, error) {
	lggr := sdk.LoggerFrom(ctx)

	if amount == nil || amount.Sign() <= 0 {
		lggr.Infof("payment amount %s is not positive, skipping native transfer", types.FormatStroops(amount))

		return types.TransactionResult{}, nil
	}

	e.stage(StageBuilding)
	account, err := e.client.GetAccount(ctx, from)
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewAccountLookupError(from, err)
	}

	tx, err := txParams{
		source:   from,
		sequence: account.Sequence,
		baseFee:  e.opts.BaseFee,
		timeout:  e.opts.TxTimeout,
		op:       paymentOperation(to, amount),
	}.build()
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to build payment: %w", err)
	}

	result, err := e.signAndSubmit(ctx, from, "payment", tx)
	if err != nil {
		return result, err
	}
	lggr.Infof("native payment %s confirmed: %s XLM from %s to %s", result.Hash, types.FormatStroops(amount), from, to)

	return result, nil
}

func (e *Executor) signAndSubmit(
	ctx context.Context, source, label string, tx *txnbuild.Transaction,
) (types.TransactionResult, error) {
	lggr := sdk.LoggerFrom(ctx)

	e.stage(StageAwaitingSignature)
	unsigned, err := tx.Base64()
	if err != nil {
		return types.TransactionResult{}, fmt.Errorf("failed to encode %s transaction: %w", label, err)
	}
	signed, err := e.signer.SignTransaction(ctx, unsigned, sdk.SignOptions{
		NetworkPassphrase: e.opts.NetworkPassphrase,
		Address:           source,
	})
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSigningRejectedError(err)
	}

	e.stage(StageSubmitting)
	sent, err := e.client.SendTransaction(ctx, signed)
	if err != nil {
		return types.TransactionResult{}, sdkerrors.NewSubmissionRejectedError("", "", DescribeFailure(FailurePayload{Err: err}))
	}
	lggr.Infof("%s transaction %s submitted with status %s", label, sent.Hash, sent.Status)

	switch types.TransactionStatus(sent.Status) {
	case types.TransactionStatusSuccess:
		return types.TransactionResult{Hash: sent.Hash, Status: types.TransactionStatusSuccess}, nil
	case types.TransactionStatusPending:
		if sent.Hash == "" {
			return types.TransactionResult{}, sdkerrors.NewSubmissionRejectedError("", sent.Status, "no transaction hash returned")
		}

		return e.waitForConfirmation(ctx, sent.Hash)
	default:
		reason := DescribeFailure(FailurePayload{
			Status:           sent.Status,
			ResultXDR:        sent.ErrorResultXDR,
			DiagnosticEvents: sent.DiagnosticEventsXDR,
		})

		return types.TransactionResult{}, sdkerrors.NewSubmissionRejectedError(sent.Hash, sent.Status, reason)
	}
}

// waitForConfirmation polls the transaction status by hash at a constant interval, at most
// MaxPollAttempts times.
func (e *Executor) waitForConfirmation(ctx context.Context, hash string) (types.TransactionResult, error) {
	lggr := sdk.LoggerFrom(ctx)

	e.stage(StagePolling)
	lastStatus := types.TransactionStatusPending
	for attempt := 1; attempt <= e.opts.MaxPollAttempts; attempt++ {
		resp, err := e.client.GetTransaction(ctx, hash)
		switch {
		case err != nil:
			lggr.Warnf("confirmation check %d for %s failed: %v", attempt, hash, err)
		case !types.TransactionStatus(resp.Status).IsTerminal():
			lastStatus = types.TransactionStatus(resp.Status)
			if lastStatus == types.TransactionStatusNotFound {
				lggr.Debugf("transaction %s not in a ledger yet (attempt %d)", hash, attempt)
			}
		case resp.Status == string(types.TransactionStatusSuccess):
			result := types.TransactionResult{
				Hash:   hash,
				Ledger: resp.Ledger,
				Status: types.TransactionStatusSuccess,
			}
			rv, decodeErr := returnValueFromMeta(resp.ResultMetaXDR)
			if decodeErr != nil {
				lggr.Warnf("transaction %s succeeded but its return value could not be decoded: %v", hash, decodeErr)
			}
			result.ReturnValue = rv

			return result, nil
		default:
			reason := DescribeFailure(FailurePayload{
				Status:           resp.Status,
				ResultXDR:        resp.ResultXDR,
				DiagnosticEvents: resp.DiagnosticEventsXDR,
			})

			return types.TransactionResult{Hash: hash, Ledger: resp.Ledger, Status: types.TransactionStatusFailed},
				sdkerrors.NewExecutionFailedError(hash, reason)
		}

		if attempt == e.opts.MaxPollAttempts {
			break
		}
		if err := sleep(ctx, e.opts.PollInterval); err != nil {
			return types.TransactionResult{Hash: hash, Status: lastStatus}, err
		}
	}

	return types.TransactionResult{Hash: hash, Status: lastStatus},
		sdkerrors.NewTimedOutError(hash, e.opts.MaxPollAttempts, string(lastStatus))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsTimedOut reports whether err means the outcome of a transaction is unknown.
func IsTimedOut(err error) bool {
	var timedOut *sdkerrors.TimedOutError

	return errors.As(err, &timedOut)
}
