package stellar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stellar/go-stellar-sdk/txnbuild"
)

// ErrAccountNotFound is returned by GetAccount when the ledger holds no entry for the address.
var ErrAccountNotFound = errors.New("account not found")

// RPCClient is the subset of the Soroban RPC API used by the executor and inspector.
type RPCClient interface {
	GetAccount(ctx context.Context, address string) (*txnbuild.SimpleAccount, error)
	SimulateTransaction(ctx context.Context, envelopeXDR string) (*SimulateTransactionResponse, error)
	SendTransaction(ctx context.Context, envelopeXDR string) (*SendTransactionResponse, error)
	GetTransaction(ctx context.Context, hash string) (*GetTransactionResponse, error)
}

// RPCError is a JSON-RPC error object.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("rpc error %d: %s (%s)", e.Code, e.Message, string(e.Data))
	}

	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type SimulateHostFunctionResult struct {
	Auth []string `json:"auth"`
	XDR  string   `json:"xdr"`
}

type RestorePreamble struct {
	TransactionData string `json:"transactionData"`
	MinResourceFee  int64  `json:"minResourceFee,string"`
}

type SimulateTransactionResponse struct {
	Error           string                       `json:"error,omitempty"`
	TransactionData string                       `json:"transactionData,omitempty"`
	MinResourceFee  int64                        `json:"minResourceFee,string,omitempty"`
	Events          []string                     `json:"events,omitempty"`
	Results         []SimulateHostFunctionResult `json:"results,omitempty"`
	RestorePreamble *RestorePreamble             `json:"restorePreamble,omitempty"`
	LatestLedger    uint32                       `json:"latestLedger"`
}

// Failed reports whether the simulation says the call would be rejected.
func (r *SimulateTransactionResponse) Failed() bool {
	return r == nil || r.Error != ""
}

type SendTransactionResponse struct {
	Status              string   `json:"status"`
	Hash                string   `json:"hash"`
	ErrorResultXDR      string   `json:"errorResultXdr,omitempty"`
	DiagnosticEventsXDR []string `json:"diagnosticEventsXdr,omitempty"`
	LatestLedger        uint32   `json:"latestLedger"`
}

type GetTransactionResponse struct {
	Status              string   `json:"status"`
	Ledger              uint32   `json:"ledger,omitempty"`
	EnvelopeXDR         string   `json:"envelopeXdr,omitempty"`
	ResultXDR           string   `json:"resultXdr,omitempty"`
	ResultMetaXDR       string   `json:"resultMetaXdr,omitempty"`
	DiagnosticEventsXDR []string `json:"diagnosticEventsXdr,omitempty"`
	LatestLedger        uint32   `json:"latestLedger"`
}

type GetNetworkResponse struct {
	Passphrase      string `json:"passphrase"`
	ProtocolVersion int    `json:"protocolVersion"`
	FriendbotURL    string `json:"friendbotUrl,omitempty"`
}

type ledgerEntryResult struct {
	Key                string `json:"key"`
	XDR                string `json:"xdr"`
	LastModifiedLedger uint32 `json:"lastModifiedLedgerSeq"`
}

type getLedgerEntriesResponse struct {
	Entries      []ledgerEntryResult `json:"entries"`
	LatestLedger uint32              `json:"latestLedger"`
}
