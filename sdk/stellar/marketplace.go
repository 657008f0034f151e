package stellar

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/stellar/go-stellar-sdk/xdr"

	"github.com/hourvault/hourvault/internal/utils/safecast"
	"github.com/hourvault/hourvault/sdk"
	sdkerrors "github.com/hourvault/hourvault/sdk/errors"
	"github.com/hourvault/hourvault/types"
)

// Contract method names of the time-token marketplace.
const (
	MethodMintTimeToken      = "mint_time_token"
	MethodPurchaseToken      = "purchase_token"
	MethodUpdateAvailability = "update_availability"
	MethodDeleteToken        = "delete_token"
	MethodListOnSecondary    = "list_on_secondary"
	MethodBuyFromSecondary   = "buy_from_secondary"
	MethodRedeemReceipt      = "redeem_receipt"

	MethodGetToken         = "get_token"
	MethodGetTokenCount    = "get_token_count"
	MethodGetSellerTokens  = "get_seller_tokens"
	MethodGetReceipt       = "get_receipt"
	MethodGetOwnerReceipts = "get_owner_receipts"
	MethodGetReceiptCount  = "get_receipt_count"
	MethodGetListing       = "get_listing"
)

var (
	ErrInvalidHours  = errors.New("hours must be a positive integer")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Marketplace binds the time-token contract to an executor for writes and an inspector for reads.
type Marketplace struct {
	contractID    string
	nativeTokenID string
	executor      sdk.Executor
	inspector     sdk.Inspector
}

// NewMarketplace creates bindings for the contract at contractID. nativeTokenID is the
// contract address of the native asset, passed to purchase calls.
func NewMarketplace(contractID, nativeTokenID string, executor sdk.Executor, inspector sdk.Inspector) *Marketplace {
	return &Marketplace{
		contractID:    contractID,
		nativeTokenID: nativeTokenID,
		executor:      executor,
		inspector:     inspector,
	}
}

func (m *Marketplace) ContractID() string { return m.contractID }

// MintOperation builds the mint_time_token call. hourlyRate is in stroops.
func (m *Marketplace) MintOperation(seller string, hourlyRate *big.Int, hours uint32, description string) (types.Operation, error) {
	sellerVal, err := Address(seller)
	if err != nil {
		return types.Operation{}, err
	}
	rateVal, err := I128(hourlyRate)
	if err != nil {
		return types.Operation{}, err
	}

	return types.NewOperation(m.contractID, MethodMintTimeToken, sellerVal, rateVal, U32(hours), String(description)), nil
}

func (m *Marketplace) PurchaseOperation(tokenID uint64, buyer string, hours uint32) (types.Operation, error) {
	buyerVal, err := Address(buyer)
	if err != nil {
		return types.Operation{}, err
	}
	nativeVal, err := Address(m.nativeTokenID)
	if err != nil {
		return types.Operation{}, fmt.Errorf("native token: %w", err)
	}

	return types.NewOperation(m.contractID, MethodPurchaseToken, U64(tokenID), buyerVal, U32(hours), nativeVal), nil
}

func (m *Marketplace) UpdateAvailabilityOperation(tokenID uint64, seller string, newHours uint32) (types.Operation, error) {
	sellerVal, err := Address(seller)
	if err != nil {
		return types.Operation{}, err
	}

	return types.NewOperation(m.contractID, MethodUpdateAvailability, U64(tokenID), sellerVal, U32(newHours)), nil
}

func (m *Marketplace) DeleteOperation(tokenID uint64, seller string) (types.Operation, error) {
	sellerVal, err := Address(seller)
	if err != nil {
		return types.Operation{}, err
	}

	return types.NewOperation(m.contractID, MethodDeleteToken, U64(tokenID), sellerVal), nil
}

func (m *Marketplace) ListOperation(receiptID uint64, seller string, price *big.Int) (types.Operation, error) {
	sellerVal, err := Address(seller)
	if err != nil {
		return types.Operation{}, err
	}
	priceVal, err := I128(price)
	if err != nil {
		return types.Operation{}, err
	}

	return types.NewOperation(m.contractID, MethodListOnSecondary, U64(receiptID), sellerVal, priceVal), nil
}

func (m *Marketplace) BuyFromSecondaryOperation(receiptID uint64, buyer string) (types.Operation, error) {
	buyerVal, err := Address(buyer)
	if err != nil {
		return types.Operation{}, err
	}
	nativeVal, err := Address(m.nativeTokenID)
	if err != nil {
		return types.Operation{}, fmt.Errorf("native token: %w", err)
	}

	return types.NewOperation(m.contractID, MethodBuyFromSecondary, U64(receiptID), buyerVal, nativeVal), nil
}

func (m *Marketplace) RedeemOperation(receiptID uint64, owner string) (types.Operation, error) {
	ownerVal, err := Address(owner)
	if err != nil {
		return types.Operation{}, err
	}

	return types.NewOperation(m.contractID, MethodRedeemReceipt, U64(receiptID), ownerVal), nil
}

// MintTimeToken offers hours of the seller's time and returns the new token id. The id is 0
// when the contract result carries none.
func (m *Marketplace) MintTimeToken(
	ctx context.Context, seller string, hourlyRate *big.Int, hours uint32, description string,
) (uint64, types.TransactionResult, error) {
	if hours == 0 {
		return 0, types.TransactionResult{}, ErrInvalidHours
	}
	if hourlyRate == nil || hourlyRate.Sign() < 0 {
		return 0, types.TransactionResult{}, ErrNegativePrice
	}
	op, err := m.MintOperation(seller, hourlyRate, hours, description)
	if err != nil {
		return 0, types.TransactionResult{}, err
	}

	result, err := m.executor.Invoke(ctx, seller, op)
	if err != nil {
		return 0, result, err
	}

	tokenID, ok := returnUint64(result.ReturnValue)
	if !ok {
		sdk.LoggerFrom(ctx).Warnf("mint %s confirmed without a token id", result.Hash)
	}

	return tokenID, result, nil
}

// PurchaseToken buys hours of a token, then pays the seller rate*hours in the native asset.
//
// The payment leg runs only after the contract call is confirmed. When it fails the purchase
// stands and a *SettlementPaymentFailedError is returned.
func (m *Marketplace) PurchaseToken(
	ctx context.Context, buyer string, tokenID uint64, hours uint32, seller string, hourlyRate *big.Int,
) (types.TransactionResult, error) {
	if hours == 0 {
		return types.TransactionResult{}, ErrInvalidHours
	}
	if hourlyRate == nil || hourlyRate.Sign() < 0 {
		return types.TransactionResult{}, ErrNegativePrice
	}

	total := types.TotalPrice(hourlyRate, hours)
	sdk.LoggerFrom(ctx).Infof("purchase of token %d: %d hours at %s XLM, total %s XLM",
		tokenID, hours, types.FormatStroops(hourlyRate), types.FormatStroops(total))

	op, err := m.PurchaseOperation(tokenID, buyer, hours)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return m.invokeAndSettle(ctx, buyer, seller, total, op)
}

func (m *Marketplace) UpdateAvailability(ctx context.Context, seller string, tokenID uint64, newHours uint32) (types.TransactionResult, error) {
	op, err := m.UpdateAvailabilityOperation(tokenID, seller, newHours)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return m.executor.Invoke(ctx, seller, op)
}

func (m *Marketplace) DeleteToken(ctx context.Context, seller string, tokenID uint64) (types.TransactionResult, error) {
	op, err := m.DeleteOperation(tokenID, seller)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return m.executor.Invoke(ctx, seller, op)
}

// ListOnSecondary offers a receipt for resale at price stroops.
func (m *Marketplace) ListOnSecondary(ctx context.Context, seller string, receiptID uint64, price *big.Int) (types.TransactionResult, error) {
	if price == nil || price.Sign() < 0 {
		return types.TransactionResult{}, ErrNegativePrice
	}
	op, err := m.ListOperation(receiptID, seller, price)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return m.executor.Invoke(ctx, seller, op)
}

// BuyFromSecondary buys a listed receipt, then pays the listing seller the listing price.
func (m *Marketplace) BuyFromSecondary(
	ctx context.Context, buyer string, receiptID uint64, seller string, price *big.Int,
) (types.TransactionResult, error) {
	if price == nil || price.Sign() < 0 {
		return types.TransactionResult{}, ErrNegativePrice
	}
	op, err := m.BuyFromSecondaryOperation(receiptID, buyer)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return m.invokeAndSettle(ctx, buyer, seller, price, op)
}

func (m *Marketplace) RedeemReceipt(ctx context.Context, owner string, receiptID uint64) (types.TransactionResult, error) {
	op, err := m.RedeemOperation(receiptID, owner)
	if err != nil {
		return types.TransactionResult{}, err
	}

	return m.executor.Invoke(ctx, owner, op)
}

func (m *Marketplace) invokeAndSettle(
	ctx context.Context, buyer, seller string, amount *big.Int, op types.Operation,
) (types.TransactionResult, error) {
	result, err := m.executor.Invoke(ctx, buyer, op)
	if err != nil {
		return result, err
	}

	if _, err = m.executor.Pay(ctx, buyer, seller, amount); err != nil {
		sdk.LoggerFrom(ctx).Errorf("native payment failed after %s %s was confirmed: %v", op.Method, result.Hash, err)

		return result, sdkerrors.NewSettlementPaymentFailedError(result.Hash, buyer, seller, types.FormatStroops(amount), err)
	}

	return result, nil
}

// VerifyContract reports whether the configured contract answers a read query.
func (m *Marketplace) VerifyContract(ctx context.Context) bool {
	_, ok := m.inspector.Query(ctx, types.NewOperation(m.contractID, MethodGetTokenCount))
	if !ok {
		sdk.LoggerFrom(ctx).Errorf("contract %s did not answer %s", m.contractID, MethodGetTokenCount)
	}

	return ok
}

// GetToken returns nil when the token does not exist or the query failed.
func (m *Marketplace) GetToken(ctx context.Context, tokenID uint64) *types.TimeToken {
	fields, ok := m.queryMap(ctx, types.NewOperation(m.contractID, MethodGetToken, U64(tokenID)))
	if !ok {
		return nil
	}

	return &types.TimeToken{
		ID:             tokenID,
		Seller:         nativeString(fields["seller"]),
		HourlyRate:     nativeBig(fields["hourly_rate"]),
		HoursAvailable: nativeUint32(fields["hours_available"]),
		Description:    nativeString(fields["description"]),
	}
}

func (m *Marketplace) GetTokenCount(ctx context.Context) uint64 {
	return m.queryUint64(ctx, types.NewOperation(m.contractID, MethodGetTokenCount))
}

func (m *Marketplace) GetSellerTokens(ctx context.Context, seller string) []uint64 {
	sellerVal, err := Address(seller)
	if err != nil {
		sdk.LoggerFrom(ctx).Errorf("invalid seller address: %v", err)

		return []uint64{}
	}

	return m.queryUint64List(ctx, types.NewOperation(m.contractID, MethodGetSellerTokens, sellerVal))
}

// GetReceipt returns nil when the receipt does not exist or the query failed.
func (m *Marketplace) GetReceipt(ctx context.Context, receiptID uint64) *types.Receipt {
	fields, ok := m.queryMap(ctx, types.NewOperation(m.contractID, MethodGetReceipt, U64(receiptID)))
	if !ok {
		return nil
	}

	id, ok := nativeUint64(fields["id"])
	if !ok {
		id = receiptID
	}
	tokenID, _ := nativeUint64(fields["token_id"])

	return &types.Receipt{
		ID:            id,
		Owner:         firstNonEmpty(nativeString(fields["owner"]), nativeString(fields["buyer"])),
		Seller:        nativeString(fields["seller"]),
		TokenID:       tokenID,
		Hours:         nativeUint32(fields["hours"]),
		OriginalRate:  nativeBig(fields["original_rate"]),
		PurchasePrice: nativeBig(fields["purchase_price"]),
		Description:   nativeString(fields["description"]),
	}
}

func (m *Marketplace) GetOwnerReceipts(ctx context.Context, owner string) []uint64 {
	ownerVal, err := Address(owner)
	if err != nil {
		sdk.LoggerFrom(ctx).Errorf("invalid owner address: %v", err)

		return []uint64{}
	}

	return m.queryUint64List(ctx, types.NewOperation(m.contractID, MethodGetOwnerReceipts, ownerVal))
}

func (m *Marketplace) GetReceiptCount(ctx context.Context) uint64 {
	return m.queryUint64(ctx, types.NewOperation(m.contractID, MethodGetReceiptCount))
}

// GetListing returns nil when the receipt is not listed or the query failed.
func (m *Marketplace) GetListing(ctx context.Context, receiptID uint64) *types.Listing {
	fields, ok := m.queryMap(ctx, types.NewOperation(m.contractID, MethodGetListing, U64(receiptID)))
	if !ok {
		return nil
	}

	id, ok := nativeUint64(fields["receipt_id"])
	if !ok {
		id = receiptID
	}

	return &types.Listing{
		ReceiptID: id,
		Seller:    nativeString(fields["seller"]),
		Price:     nativeBig(fields["price"]),
		IsActive:  nativeBool(fields["is_active"]),
	}
}

func (m *Marketplace) queryNative(ctx context.Context, op types.Operation) (any, bool) {
	val, ok := m.inspector.Query(ctx, op)
	if !ok {
		return nil, false
	}
	native, err := ToNative(val)
	if err != nil {
		sdk.LoggerFrom(ctx).Errorf("failed to decode %s result: %v", op.Method, err)

		return nil, false
	}

	return native, native != nil
}

func (m *Marketplace) queryMap(ctx context.Context, op types.Operation) (map[string]any, bool) {
	native, ok := m.queryNative(ctx, op)
	if !ok {
		return nil, false
	}
	fields, ok := native.(map[string]any)

	return fields, ok
}

func (m *Marketplace) queryUint64(ctx context.Context, op types.Operation) uint64 {
	native, ok := m.queryNative(ctx, op)
	if !ok {
		return 0
	}
	n, _ := nativeUint64(native)

	return n
}

func (m *Marketplace) queryUint64List(ctx context.Context, op types.Operation) []uint64 {
	native, ok := m.queryNative(ctx, op)
	if !ok {
		return []uint64{}
	}

	return nativeUint64List(native)
}

// ReturnedID decodes a u64 id, such as the receipt id of a purchase, from a confirmed result.
func ReturnedID(result types.TransactionResult) (uint64, bool) {
	return returnUint64(result.ReturnValue)
}

func returnUint64(v *xdr.ScVal) (uint64, bool) {
	if v == nil {
		return 0, false
	}
	native, err := ToNative(*v)
	if err != nil {
		return 0, false
	}

	return nativeUint64(native)
}

// nativeUint32 returns 0 for anything outside the u32 range.
func nativeUint32(v any) uint32 {
	n, ok := nativeUint64(v)
	if !ok {
		return 0
	}
	narrowed, err := safecast.Uint64ToUint32(n)
	if err != nil {
		return 0
	}

	return narrowed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
