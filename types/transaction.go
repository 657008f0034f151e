package types

import "github.com/stellar/go-stellar-sdk/xdr"

// TransactionStatus is the status string reported by the ledger RPC.
type TransactionStatus string

const (
	TransactionStatusPending       TransactionStatus = "PENDING"
	TransactionStatusDuplicate     TransactionStatus = "DUPLICATE"
	TransactionStatusTryAgainLater TransactionStatus = "TRY_AGAIN_LATER"
	TransactionStatusError         TransactionStatus = "ERROR"
	TransactionStatusSuccess       TransactionStatus = "SUCCESS"
	TransactionStatusFailed        TransactionStatus = "FAILED"
	TransactionStatusNotFound      TransactionStatus = "NOT_FOUND"
)

// IsTerminal reports whether the status ends confirmation polling.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusFailed
}

// TransactionResult is the outcome of a confirmed transaction.
type TransactionResult struct {
	Hash   string            `json:"hash"`
	Ledger uint32            `json:"ledger,omitempty"`
	Status TransactionStatus `json:"status"`

	// ReturnValue is the contract return value, if the transaction invoked a contract and the
	// value could be decoded from the result metadata.
	ReturnValue *xdr.ScVal `json:"-"`
}
