package stellar

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/xdr"
)

var (
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	mask64  = new(big.Int).SetUint64(^uint64(0))
)

func U32(v uint32) xdr.ScVal {
	u := xdr.Uint32(v)

	return xdr.ScVal{Type: xdr.ScValTypeScvU32, U32: &u}
}

func U64(v uint64) xdr.ScVal {
	u := xdr.Uint64(v)

	return xdr.ScVal{Type: xdr.ScValTypeScvU64, U64: &u}
}

func String(v string) xdr.ScVal {
	s := xdr.ScString(v)

	return xdr.ScVal{Type: xdr.ScValTypeScvString, Str: &s}
}

func Symbol(v string) xdr.ScVal {
	s := xdr.ScSymbol(v)

	return xdr.ScVal{Type: xdr.ScValTypeScvSymbol, Sym: &s}
}

// I128 encodes v as a signed 128-bit integer split into hi/lo parts.
func I128(v *big.Int) (xdr.ScVal, error) {
	if v == nil {
		v = new(big.Int)
	}
	if v.Cmp(maxI128) > 0 || v.Cmp(minI128) < 0 {
		return xdr.ScVal{}, fmt.Errorf("value %s does not fit in i128", v)
	}

	// two's complement over 128 bits
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	lo := new(big.Int).And(u, mask64).Uint64()
	hi := new(big.Int).Rsh(u, 64).Uint64()

	parts := xdr.Int128Parts{Hi: xdr.Int64(int64(hi)), Lo: xdr.Uint64(lo)} //nolint:gosec

	return xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &parts}, nil
}

// Address encodes an account (G...) or contract (C...) strkey.
func Address(address string) (xdr.ScVal, error) {
	addr, err := scAddress(address)
	if err != nil {
		return xdr.ScVal{}, err
	}

	return xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &addr}, nil
}

func scAddress(address string) (xdr.ScAddress, error) {
	switch {
	case len(address) > 0 && address[0] == 'G':
		var accountID xdr.AccountId
		if err := accountID.SetAddress(address); err != nil {
			return xdr.ScAddress{}, fmt.Errorf("invalid account address %q: %w", address, err)
		}

		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeAccount, AccountId: &accountID}, nil
	case len(address) > 0 && address[0] == 'C':
		raw, err := strkey.Decode(strkey.VersionByteContract, address)
		if err != nil {
			return xdr.ScAddress{}, fmt.Errorf("invalid contract address %q: %w", address, err)
		}
		var contractID xdr.ContractId
		copy(contractID[:], raw)

		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract, ContractId: &contractID}, nil
	default:
		return xdr.ScAddress{}, fmt.Errorf("unsupported address %q", address)
	}
}

func addressString(addr xdr.ScAddress) (string, error) {
	switch addr.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		if addr.AccountId == nil {
			return "", errors.New("account address without account id")
		}

		return addr.AccountId.Address(), nil
	case xdr.ScAddressTypeScAddressTypeContract:
		if addr.ContractId == nil {
			return "", errors.New("contract address without contract id")
		}

		return strkey.Encode(strkey.VersionByteContract, addr.ContractId[:])
	default:
		return "", fmt.Errorf("unsupported address type %v", addr.Type)
	}
}

func int128ToBig(hi int64, lo uint64) *big.Int {
	v := new(big.Int).Lsh(big.NewInt(hi), 64)

	return v.Add(v, new(big.Int).SetUint64(lo))
}

func uint128ToBig(hi, lo uint64) *big.Int {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)

	return v.Add(v, new(big.Int).SetUint64(lo))
}

// ToNative converts a contract value into plain Go values: bool, uint32, int32, uint64, int64,
// *big.Int (128-bit integers), string (strings, symbols and addresses), []byte, []any,
// map[string]any (maps with string or symbol keys) or nil (void and Option::None).
func ToNative(v xdr.ScVal) (any, error) {
	switch v.Type {
	case xdr.ScValTypeScvVoid:
		return nil, nil
	case xdr.ScValTypeScvBool:
		return *v.B, nil
	case xdr.ScValTypeScvU32:
		return uint32(*v.U32), nil
	case xdr.ScValTypeScvI32:
		return int32(*v.I32), nil
	case xdr.ScValTypeScvU64:
		return uint64(*v.U64), nil
	case xdr.ScValTypeScvI64:
		return int64(*v.I64), nil
	case xdr.ScValTypeScvU128:
		return uint128ToBig(uint64(v.U128.Hi), uint64(v.U128.Lo)), nil
	case xdr.ScValTypeScvI128:
		return int128ToBig(int64(v.I128.Hi), uint64(v.I128.Lo)), nil
	case xdr.ScValTypeScvString:
		return string(*v.Str), nil
	case xdr.ScValTypeScvSymbol:
		return string(*v.Sym), nil
	case xdr.ScValTypeScvBytes:
		return []byte(*v.Bytes), nil
	case xdr.ScValTypeScvAddress:
		return addressString(*v.Address)
	case xdr.ScValTypeScvVec:
		if v.Vec == nil || *v.Vec == nil {
			return []any{}, nil
		}
		vec := **v.Vec
		out := make([]any, 0, len(vec))
		for i, item := range vec {
			n, err := ToNative(item)
			if err != nil {
				return nil, fmt.Errorf("vec item %d: %w", i, err)
			}
			out = append(out, n)
		}

		return out, nil
	case xdr.ScValTypeScvMap:
		out := map[string]any{}
		if v.Map == nil || *v.Map == nil {
			return out, nil
		}
		for _, entry := range **v.Map {
			k, err := ToNative(entry.Key)
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprintf("%v", k)
			}
			val, err := ToNative(entry.Val)
			if err != nil {
				return nil, fmt.Errorf("map value %q: %w", key, err)
			}
			out[key] = val
		}

		return out, nil
	default:
		return nil, fmt.Errorf("unsupported contract value type %v", v.Type)
	}
}

// nativeUint64 accepts any unsigned or non-negative integer produced by ToNative.
func nativeUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case int32:
		return uint64(n), n >= 0
	case int64:
		return uint64(n), n >= 0
	case *big.Int:
		return n.Uint64(), n.Sign() >= 0 && n.IsUint64()
	default:
		return 0, false
	}
}

func nativeBig(v any) *big.Int {
	switch n := v.(type) {
	case *big.Int:
		return n
	case int64:
		return big.NewInt(n)
	case uint64:
		return new(big.Int).SetUint64(n)
	case uint32:
		return big.NewInt(int64(n))
	case int32:
		return big.NewInt(int64(n))
	default:
		return new(big.Int)
	}
}

func nativeString(v any) string {
	s, _ := v.(string)

	return s
}

func nativeBool(v any) bool {
	b, _ := v.(bool)

	return b
}

func nativeUint64List(v any) []uint64 {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]uint64, 0, len(items))
	for _, item := range items {
		if n, ok := nativeUint64(item); ok {
			out = append(out, n)
		}
	}

	return out
}
