package types

import "github.com/stellar/go-stellar-sdk/xdr"

// Operation describes a single contract invocation: the contract, the method name and the
// ordered, already encoded arguments.
type Operation struct {
	ContractID string      `json:"contractId"`
	Method     string      `json:"method"`
	Args       []xdr.ScVal `json:"-"`
}

// NewOperation creates an operation calling method on contractID.
func NewOperation(contractID, method string, args ...xdr.ScVal) Operation {
	return Operation{
		ContractID: contractID,
		Method:     method,
		Args:       args,
	}
}
