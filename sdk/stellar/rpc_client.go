package stellar

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
)

const defaultRPCTimeout = 30 * time.Second

var _ RPCClient = &Client{}

// Client is a JSON-RPC 2.0 client for a Soroban RPC server.
type Client struct {
	http   *resty.Client
	nextID atomic.Uint64
}

// NewClient creates a client for the Soroban RPC server at url.
func NewClient(url string) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(defaultRPCTimeout).
			SetBaseURL(url).
			SetHeader("Content-Type", "application/json"),
	}
}

type jsonRPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type jsonRPCResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params any, result any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(jsonRPCRequest{
			JSONRPC: "2.0",
			ID:      c.nextID.Add(1),
			Method:  method,
			Params:  params,
		}).
		Post("")
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s returned HTTP %d: %s", method, resp.StatusCode(), resp.String())
	}

	var envelope jsonRPCResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}
	if envelope.Error != nil {
		return envelope.Error
	}
	if result == nil || len(envelope.Result) == 0 {
		return nil
	}

	if err = json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}

	return nil
}

// GetAccount loads the account's current sequence number from its ledger entry.
func (c *Client) GetAccount(ctx context.Context, address string) (*txnbuild.SimpleAccount, error) {
	var accountID xdr.AccountId
	if err := accountID.SetAddress(address); err != nil {
		return nil, fmt.Errorf("invalid account address %q: %w", address, err)
	}

	key, err := xdr.MarshalBase64(xdr.LedgerKey{
		Type:    xdr.LedgerEntryTypeAccount,
		Account: &xdr.LedgerKeyAccount{AccountId: accountID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger key: %w", err)
	}

	var resp getLedgerEntriesResponse
	if err = c.call(ctx, "getLedgerEntries", map[string]any{"keys": []string{key}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}

	var data xdr.LedgerEntryData
	if err = xdr.SafeUnmarshalBase64(resp.Entries[0].XDR, &data); err != nil {
		return nil, fmt.Errorf("failed to decode account entry: %w", err)
	}
	entry, ok := data.GetAccount()
	if !ok {
		return nil, fmt.Errorf("ledger entry for %s is not an account", address)
	}

	return &txnbuild.SimpleAccount{AccountID: address, Sequence: int64(entry.SeqNum)}, nil
}

func (c *Client) SimulateTransaction(ctx context.Context, envelopeXDR string) (*SimulateTransactionResponse, error) {
	var resp SimulateTransactionResponse
	if err := c.call(ctx, "simulateTransaction", map[string]any{"transaction": envelopeXDR}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) SendTransaction(ctx context.Context, envelopeXDR string) (*SendTransactionResponse, error) {
	var resp SendTransactionResponse
	if err := c.call(ctx, "sendTransaction", map[string]any{"transaction": envelopeXDR}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) GetTransaction(ctx context.Context, hash string) (*GetTransactionResponse, error) {
	var resp GetTransactionResponse
	if err := c.call(ctx, "getTransaction", map[string]any{"hash": hash}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetNetwork returns the passphrase and protocol version of the server's network.
func (c *Client) GetNetwork(ctx context.Context) (*GetNetworkResponse, error) {
	var resp GetNetworkResponse
	if err := c.call(ctx, "getNetwork", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
