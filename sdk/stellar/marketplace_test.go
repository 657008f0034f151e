package stellar_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sdkerrors "github.com/hourvault/hourvault/sdk/errors"
	sdkmocks "github.com/hourvault/hourvault/sdk/mocks"
	"github.com/hourvault/hourvault/sdk/stellar"
	"github.com/hourvault/hourvault/types"
)

type marketplaceFixture struct {
	market    *stellar.Marketplace
	executor  *sdkmocks.Executor
	inspector *sdkmocks.Inspector
	contract  string
	native    string
}

func newMarketplaceFixture(t *testing.T) marketplaceFixture {
	t.Helper()

	f := marketplaceFixture{
		executor:  sdkmocks.NewExecutor(t),
		inspector: sdkmocks.NewInspector(t),
		contract:  contractAddress(t, 7),
		native:    contractAddress(t, 8),
	}
	f.market = stellar.NewMarketplace(f.contract, f.native, f.executor, f.inspector)

	return f
}

func mustNative(t *testing.T, v xdr.ScVal) any {
	t.Helper()

	n, err := stellar.ToNative(v)
	require.NoError(t, err)

	return n
}

func symbolMap(t *testing.T, entries map[string]xdr.ScVal) xdr.ScVal {
	t.Helper()

	m := xdr.ScMap{}
	for k, v := range entries {
		m = append(m, xdr.ScMapEntry{Key: stellar.Symbol(k), Val: v})
	}
	mp := &m

	return xdr.ScVal{Type: xdr.ScValTypeScvMap, Map: &mp}
}

func mustI128(t *testing.T, v int64) xdr.ScVal {
	t.Helper()

	val, err := stellar.I128(big.NewInt(v))
	require.NoError(t, err)

	return val
}

func mustAddress(t *testing.T, addr string) xdr.ScVal {
	t.Helper()

	val, err := stellar.Address(addr)
	require.NoError(t, err)

	return val
}

func TestMarketplace_MintTimeToken(t *testing.T) {
	t.Parallel()

	f := newMarketplaceFixture(t)
	seller := keypair.MustRandom().Address()

	rate, err := types.ToStroops("10.5")
	require.NoError(t, err)

	tokenID := stellar.U64(12)
	f.executor.EXPECT().Invoke(mock.Anything, seller, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, op types.Operation) (types.TransactionResult, error) {
			assert.Equal(t, f.contract, op.ContractID)
			assert.Equal(t, stellar.MethodMintTimeToken, op.Method)
			require.Len(t, op.Args, 4)
			assert.Equal(t, seller, mustNative(t, op.Args[0]))
			assert.Equal(t, "105000000", mustNative(t, op.Args[1]).(*big.Int).String())
			assert.Equal(t, uint32(100), mustNative(t, op.Args[2]))
			assert.Equal(t, "Go mentoring", mustNative(t, op.Args[3]))

			return types.TransactionResult{Hash: txHash, Status: types.TransactionStatusSuccess, ReturnValue: &tokenID}, nil
		}).Once()

	id, res, err := f.market.MintTimeToken(context.Background(), seller, rate, 100, "Go mentoring")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), id)
	assert.Equal(t, txHash, res.Hash)
}

func TestMarketplace_MintTimeToken_NegativeRate(t *testing.T) {
	t.Parallel()

	f := newMarketplaceFixture(t)
	_, _, err := f.market.MintTimeToken(context.Background(), keypair.MustRandom().Address(), big.NewInt(-1), 1, "x")
	require.ErrorIs(t, err, stellar.ErrNegativePrice)
}

func TestMarketplace_MintTimeToken_ZeroHours(t *testing.T) {
	t.Parallel()

	f := newMarketplaceFixture(t)
	_, _, err := f.market.MintTimeToken(context.Background(), keypair.MustRandom().Address(), big.NewInt(10), 0, "x")
	require.ErrorIs(t, err, stellar.ErrInvalidHours)
}

func TestMarketplace_PurchaseToken(t *testing.T) {
	t.Parallel()

	buyer := keypair.MustRandom().Address()
	seller := keypair.MustRandom().Address()
	rate := big.NewInt(20_000_000)

	tests := []struct {
		name    string
		hours   uint32
		rate    *big.Int
		setup   func(f marketplaceFixture)
		wantErr func(t *testing.T, err error)
	}{
		{
			name:  "contract call then settlement payment",
			hours: 3,
			rate:  rate,
			setup: func(f marketplaceFixture) {
				f.executor.EXPECT().Invoke(mock.Anything, buyer, mock.Anything).
					RunAndReturn(func(_ context.Context, _ string, op types.Operation) (types.TransactionResult, error) {
						assert.Equal(t, stellar.MethodPurchaseToken, op.Method)
						require.Len(t, op.Args, 4)
						assert.Equal(t, uint64(5), mustNative(t, op.Args[0]))
						assert.Equal(t, buyer, mustNative(t, op.Args[1]))
						assert.Equal(t, uint32(3), mustNative(t, op.Args[2]))
						assert.Equal(t, f.native, mustNative(t, op.Args[3]))

						return types.TransactionResult{Hash: txHash, Status: types.TransactionStatusSuccess}, nil
					}).Once()
				f.executor.EXPECT().Pay(mock.Anything, buyer, seller, mock.MatchedBy(func(v *big.Int) bool {
					return v.Int64() == 60_000_000
				})).Return(types.TransactionResult{Hash: "pay"}, nil).Once()
			},
		},
		{
			name:  "payment failure after confirmed purchase",
			hours: 3,
			rate:  rate,
			setup: func(f marketplaceFixture) {
				f.executor.EXPECT().Invoke(mock.Anything, buyer, mock.Anything).
					Return(types.TransactionResult{Hash: txHash, Status: types.TransactionStatusSuccess}, nil).Once()
				f.executor.EXPECT().Pay(mock.Anything, buyer, seller, mock.Anything).
					Return(types.TransactionResult{}, errors.New("tx_insufficient_balance")).Once()
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.SettlementPaymentFailedError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, txHash, target.ContractTxHash)
				assert.Equal(t, "6.0000000", target.Amount)
				assert.Contains(t, sdkerrors.UserMessage(err), "contact support")
			},
		},
		{
			name:  "failed contract call skips payment",
			hours: 1,
			rate:  rate,
			setup: func(f marketplaceFixture) {
				f.executor.EXPECT().Invoke(mock.Anything, buyer, mock.Anything).
					Return(types.TransactionResult{}, sdkerrors.NewExecutionFailedError(txHash, "trapped")).Once()
			},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				var target *sdkerrors.ExecutionFailedError
				require.ErrorAs(t, err, &target)
			},
		},
		{
			name:  "zero hours",
			hours: 0,
			rate:  rate,
			setup: func(marketplaceFixture) {},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				require.ErrorIs(t, err, stellar.ErrInvalidHours)
			},
		},
		{
			name:  "negative rate",
			hours: 1,
			rate:  big.NewInt(-5),
			setup: func(marketplaceFixture) {},
			wantErr: func(t *testing.T, err error) {
				t.Helper()
				require.ErrorIs(t, err, stellar.ErrNegativePrice)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newMarketplaceFixture(t)
			tt.setup(f)

			_, err := f.market.PurchaseToken(context.Background(), buyer, 5, tt.hours, seller, tt.rate)
			if tt.wantErr != nil {
				tt.wantErr(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMarketplace_BuyFromSecondary(t *testing.T) {
	t.Parallel()

	f := newMarketplaceFixture(t)
	buyer := keypair.MustRandom().Address()
	seller := keypair.MustRandom().Address()
	price := big.NewInt(25_000_000)

	f.executor.EXPECT().Invoke(mock.Anything, buyer, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, op types.Operation) (types.TransactionResult, error) {
			assert.Equal(t, stellar.MethodBuyFromSecondary, op.Method)
			require.Len(t, op.Args, 3)
			assert.Equal(t, uint64(9), mustNative(t, op.Args[0]))

			return types.TransactionResult{Hash: txHash}, nil
		}).Once()
	f.executor.EXPECT().Pay(mock.Anything, buyer, seller, price).Return(types.TransactionResult{Hash: "pay"}, nil).Once()

	res, err := f.market.BuyFromSecondary(context.Background(), buyer, 9, seller, price)
	require.NoError(t, err)
	assert.Equal(t, txHash, res.Hash)
}

func TestMarketplace_SimpleWrites(t *testing.T) {
	t.Parallel()

	owner := keypair.MustRandom().Address()

	tests := []struct {
		name       string
		call       func(m *stellar.Marketplace) (types.TransactionResult, error)
		wantMethod string
		wantArgs   int
	}{
		{
			name: "update availability",
			call: func(m *stellar.Marketplace) (types.TransactionResult, error) {
				return m.UpdateAvailability(context.Background(), owner, 1, 8)
			},
			wantMethod: stellar.MethodUpdateAvailability,
			wantArgs:   3,
		},
		{
			name: "delete token",
			call: func(m *stellar.Marketplace) (types.TransactionResult, error) {
				return m.DeleteToken(context.Background(), owner, 1)
			},
			wantMethod: stellar.MethodDeleteToken,
			wantArgs:   2,
		},
		{
			name: "list on secondary",
			call: func(m *stellar.Marketplace) (types.TransactionResult, error) {
				return m.ListOnSecondary(context.Background(), owner, 4, big.NewInt(1))
			},
			wantMethod: stellar.MethodListOnSecondary,
			wantArgs:   3,
		},
		{
			name: "redeem receipt",
			call: func(m *stellar.Marketplace) (types.TransactionResult, error) {
				return m.RedeemReceipt(context.Background(), owner, 4)
			},
			wantMethod: stellar.MethodRedeemReceipt,
			wantArgs:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newMarketplaceFixture(t)
			f.executor.EXPECT().Invoke(mock.Anything, owner, mock.MatchedBy(func(op types.Operation) bool {
				return op.Method == tt.wantMethod && len(op.Args) == tt.wantArgs
			})).Return(types.TransactionResult{Hash: txHash}, nil).Once()

			res, err := tt.call(f.market)
			require.NoError(t, err)
			assert.Equal(t, txHash, res.Hash)
		})
	}
}

func TestMarketplace_Reads(t *testing.T) {
	t.Parallel()

	seller := keypair.MustRandom().Address()
	owner := keypair.MustRandom().Address()

	t.Run("get token", func(t *testing.T) {
		t.Parallel()

		f := newMarketplaceFixture(t)
		f.inspector.EXPECT().Query(mock.Anything, mock.MatchedBy(func(op types.Operation) bool {
			return op.Method == stellar.MethodGetToken
		})).Return(symbolMap(t, map[string]xdr.ScVal{
			"seller":          mustAddress(t, seller),
			"hourly_rate":     mustI128(t, 105_000_000),
			"hours_available": stellar.U32(100),
			"description":     stellar.String("Go mentoring"),
		}), true).Once()

		token := f.market.GetToken(context.Background(), 3)
		require.NotNil(t, token)
		assert.Equal(t, uint64(3), token.ID)
		assert.Equal(t, seller, token.Seller)
		assert.Equal(t, "105000000", token.HourlyRate.String())
		assert.Equal(t, uint32(100), token.HoursAvailable)
		assert.Equal(t, "Go mentoring", token.Description)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		f := newMarketplaceFixture(t)
		f.inspector.EXPECT().Query(mock.Anything, mock.Anything).
			Return(xdr.ScVal{Type: xdr.ScValTypeScvVoid}, true).Once()

		assert.Nil(t, f.market.GetToken(context.Background(), 3))
	})

	t.Run("get receipt", func(t *testing.T) {
		t.Parallel()

		f := newMarketplaceFixture(t)
		f.inspector.EXPECT().Query(mock.Anything, mock.Anything).Return(symbolMap(t, map[string]xdr.ScVal{
			"id":             stellar.U64(11),
			"owner":          mustAddress(t, owner),
			"seller":         mustAddress(t, seller),
			"token_id":       stellar.U64(3),
			"hours":          stellar.U32(2),
			"original_rate":  mustI128(t, 10),
			"purchase_price": mustI128(t, 20),
			"description":    stellar.String("call"),
		}), true).Once()

		receipt := f.market.GetReceipt(context.Background(), 11)
		require.NotNil(t, receipt)
		assert.Equal(t, uint64(11), receipt.ID)
		assert.Equal(t, owner, receipt.Owner)
		assert.Equal(t, uint64(3), receipt.TokenID)
		assert.Equal(t, uint32(2), receipt.Hours)
		assert.Equal(t, "20", receipt.PurchasePrice.String())
	})

	t.Run("get listing", func(t *testing.T) {
		t.Parallel()

		f := newMarketplaceFixture(t)
		active := true
		f.inspector.EXPECT().Query(mock.Anything, mock.Anything).Return(symbolMap(t, map[string]xdr.ScVal{
			"receipt_id": stellar.U64(11),
			"seller":     mustAddress(t, seller),
			"price":      mustI128(t, 30_000_000),
			"is_active":  {Type: xdr.ScValTypeScvBool, B: &active},
		}), true).Once()

		listing := f.market.GetListing(context.Background(), 11)
		require.NotNil(t, listing)
		assert.True(t, listing.IsActive)
		assert.Equal(t, "30000000", listing.Price.String())
	})

	t.Run("counts and lists", func(t *testing.T) {
		t.Parallel()

		f := newMarketplaceFixture(t)
		f.inspector.EXPECT().Query(mock.Anything, mock.MatchedBy(func(op types.Operation) bool {
			return op.Method == stellar.MethodGetTokenCount
		})).Return(stellar.U64(4), true).Once()
		f.inspector.EXPECT().Query(mock.Anything, mock.MatchedBy(func(op types.Operation) bool {
			return op.Method == stellar.MethodGetReceiptCount
		})).Return(xdr.ScVal{}, false).Once()

		vec := xdr.ScVec{stellar.U64(1), stellar.U64(2)}
		vp := &vec
		f.inspector.EXPECT().Query(mock.Anything, mock.MatchedBy(func(op types.Operation) bool {
			return op.Method == stellar.MethodGetSellerTokens
		})).Return(xdr.ScVal{Type: xdr.ScValTypeScvVec, Vec: &vp}, true).Once()
		f.inspector.EXPECT().Query(mock.Anything, mock.MatchedBy(func(op types.Operation) bool {
			return op.Method == stellar.MethodGetOwnerReceipts
		})).Return(xdr.ScVal{}, false).Once()

		ctx := context.Background()
		assert.Equal(t, uint64(4), f.market.GetTokenCount(ctx))
		assert.Equal(t, uint64(0), f.market.GetReceiptCount(ctx))
		assert.Equal(t, []uint64{1, 2}, f.market.GetSellerTokens(ctx, seller))
		assert.Empty(t, f.market.GetOwnerReceipts(ctx, owner))
	})

	t.Run("verify contract", func(t *testing.T) {
		t.Parallel()

		f := newMarketplaceFixture(t)
		f.inspector.EXPECT().Query(mock.Anything, mock.Anything).Return(stellar.U64(0), true).Once()
		assert.True(t, f.market.VerifyContract(context.Background()))
	})
}
