package stellar

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/txnbuild"

	"github.com/hourvault/hourvault/sdk"
)

var (
	ErrNetworkMismatch = errors.New("signer is configured for a different network")
	ErrAddressMismatch = errors.New("signer does not hold the key for the requested address")
)

var _ sdk.Signer = &KeypairSigner{}

// KeypairSigner signs with a local secret seed. It is always available once constructed.
type KeypairSigner struct {
	kp                *keypair.Full
	networkPassphrase string
}

// NewKeypairSigner parses an S... secret seed.
func NewKeypairSigner(seed, networkPassphrase string) (*KeypairSigner, error) {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid secret seed: %w", err)
	}

	return &KeypairSigner{kp: kp, networkPassphrase: networkPassphrase}, nil
}

func (s *KeypairSigner) IsAvailable(_ context.Context) (bool, error) {
	return s.kp != nil, nil
}

func (s *KeypairSigner) GetAddress(_ context.Context) (string, error) {
	return s.kp.Address(), nil
}

func (s *KeypairSigner) SignTransaction(_ context.Context, envelopeXDR string, opts sdk.SignOptions) (string, error) {
	if opts.NetworkPassphrase != "" && opts.NetworkPassphrase != s.networkPassphrase {
		return "", ErrNetworkMismatch
	}
	if opts.Address != "" && opts.Address != s.kp.Address() {
		return "", fmt.Errorf("%w: %s", ErrAddressMismatch, opts.Address)
	}

	generic, err := txnbuild.TransactionFromXDR(envelopeXDR)
	if err != nil {
		return "", fmt.Errorf("failed to decode envelope: %w", err)
	}
	tx, ok := generic.Transaction()
	if !ok {
		return "", errors.New("fee bump envelopes are not supported")
	}

	signed, err := tx.Sign(s.networkPassphrase, s.kp)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	return signed.Base64()
}
