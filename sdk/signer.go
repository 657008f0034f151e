package sdk

import "context"

// SignOptions carries the context a signer must check before signing. Signers refuse requests
// whose network or address do not match their own.
type SignOptions struct {
	NetworkPassphrase string
	Address           string
}

// Signer is the signing provider capability.
//
// Any provider that can report its availability, expose the authorized address and sign a
// base64 transaction envelope can back a wallet session and the transaction workflow.
type Signer interface {
	// IsAvailable reports whether the provider is installed and reachable.
	IsAvailable(ctx context.Context) (bool, error)

	// GetAddress returns the currently authorized address.
	GetAddress(ctx context.Context) (string, error)

	// SignTransaction signs the base64 envelope and returns the signed base64 envelope.
	SignTransaction(ctx context.Context, envelopeXDR string, opts SignOptions) (string, error)
}
