package sdkerrors

import (
	"errors"
	"fmt"
)

// WalletUnavailableError is returned when no signing provider is present.
type WalletUnavailableError struct{}

func (e *WalletUnavailableError) Error() string {
	return "wallet is not available: install or configure a signing provider"
}

func NewWalletUnavailableError() *WalletUnavailableError {
	return &WalletUnavailableError{}
}

// WalletNotConnectedError is returned when an operation needs a connected address.
type WalletNotConnectedError struct{}

func (e *WalletNotConnectedError) Error() string {
	return "wallet not connected"
}

func NewWalletNotConnectedError() *WalletNotConnectedError {
	return &WalletNotConnectedError{}
}

// AccountLookupError is returned when the signer's account cannot be loaded from the network.
type AccountLookupError struct {
	Address string
	Err     error
}

func (e *AccountLookupError) Error() string {
	return fmt.Sprintf("failed to load account %s: %v", e.Address, e.Err)
}

func (e *AccountLookupError) Unwrap() error { return e.Err }

func NewAccountLookupError(address string, err error) *AccountLookupError {
	return &AccountLookupError{Address: address, Err: err}
}

// SimulationError is returned when the contract would reject the call. No signature is
// requested for such calls.
type SimulationError struct {
	Method string
	Reason string
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("%s simulation failed: %s", e.Method, e.Reason)
}

func NewSimulationError(method, reason string) *SimulationError {
	return &SimulationError{Method: method, Reason: reason}
}

// SigningRejectedError is returned when the signer declined or failed to sign. It is a
// cancellation, not a system fault.
type SigningRejectedError struct {
	Err error
}

func (e *SigningRejectedError) Error() string {
	return fmt.Sprintf("signature request rejected: %v", e.Err)
}

func (e *SigningRejectedError) Unwrap() error { return e.Err }

func NewSigningRejectedError(err error) *SigningRejectedError {
	return &SigningRejectedError{Err: err}
}

// SubmissionRejectedError is returned when the network refused the signed envelope.
type SubmissionRejectedError struct {
	Hash   string
	Status string
	Reason string
}

func (e *SubmissionRejectedError) Error() string {
	return fmt.Sprintf("transaction %s rejected with status %s: %s", e.Hash, e.Status, e.Reason)
}

func NewSubmissionRejectedError(hash, status, reason string) *SubmissionRejectedError {
	return &SubmissionRejectedError{Hash: hash, Status: status, Reason: reason}
}

// ExecutionFailedError is returned when the transaction landed but failed.
type ExecutionFailedError struct {
	Hash   string
	Reason string
}

func (e *ExecutionFailedError) Error() string {
	return fmt.Sprintf("transaction %s failed: %s", e.Hash, e.Reason)
}

func NewExecutionFailedError(hash, reason string) *ExecutionFailedError {
	return &ExecutionFailedError{Hash: hash, Reason: reason}
}

// TimedOutError is returned when confirmation polling ran out of attempts. The transaction may
// still land; callers must re-query state before retrying.
type TimedOutError struct {
	Hash       string
	Attempts   int
	LastStatus string
}

func (e *TimedOutError) Error() string {
	return fmt.Sprintf("transaction %s not confirmed after %d attempts (last status: %s)", e.Hash, e.Attempts, e.LastStatus)
}

func NewTimedOutError(hash string, attempts int, lastStatus string) *TimedOutError {
	return &TimedOutError{Hash: hash, Attempts: attempts, LastStatus: lastStatus}
}

// SettlementPaymentFailedError is returned when the contract call was confirmed but the native
// payment that settles it failed. The contract state is not rolled back.
type SettlementPaymentFailedError struct {
	ContractTxHash string
	From           string
	To             string
	Amount         string
	Err            error
}

func (e *SettlementPaymentFailedError) Error() string {
	return fmt.Sprintf("contract transaction %s succeeded but payment of %s from %s to %s failed: %v",
		e.ContractTxHash, e.Amount, e.From, e.To, e.Err)
}

func (e *SettlementPaymentFailedError) Unwrap() error { return e.Err }

func NewSettlementPaymentFailedError(contractTxHash, from, to, amount string, err error) *SettlementPaymentFailedError {
	return &SettlementPaymentFailedError{
		ContractTxHash: contractTxHash,
		From:           from,
		To:             to,
		Amount:         amount,
		Err:            err,
	}
}

// IsCancellation reports whether err is a user cancellation.
func IsCancellation(err error) bool {
	var rejected *SigningRejectedError

	return errors.As(err, &rejected)
}

// UserMessage renders err for the presentation layer.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		rejected   *SigningRejectedError
		settlement *SettlementPaymentFailedError
		timedOut   *TimedOutError
	)

	switch {
	case errors.As(err, &rejected):
		return "You canceled the transaction."
	case errors.As(err, &settlement):
		return fmt.Sprintf("The purchase was recorded on-chain (transaction %s) but the payment of %s XLM to %s did not go through. "+
			"Please contact support for manual follow-up; do not retry the purchase.",
			settlement.ContractTxHash, settlement.Amount, settlement.To)
	case errors.As(err, &timedOut):
		return fmt.Sprintf("Transaction %s was not confirmed in time. It may still land; refresh before trying again.", timedOut.Hash)
	default:
		return err.Error()
	}
}
