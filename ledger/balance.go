package ledger

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

const (
	// BalanceLength is the size in bytes of an encoded Balance
	BalanceLength = 16
	balanceBits   = 128
)

var (
	// ErrBalanceOutOfRange is returned when a value does not fit in 128 bits
	ErrBalanceOutOfRange = errors.New("balance out of u128 range")

	maxBalance = func() Balance {
		var b Balance
		b.v.Lsh(uint256.NewInt(1), balanceBits)
		b.v.SubUint64(&b.v, 1)
		return b
	}()
)

// Balance is an unsigned 128-bit amount. Arithmetic never wraps: it either
// reports the overflow or saturates.
type Balance struct {
	v uint256.Int
}

// NewBalance returns a Balance holding x
func NewBalance(x uint64) Balance {
	var b Balance
	b.v.SetUint64(x)
	return b
}

// MaxBalance returns 2^128 - 1
func MaxBalance() Balance {
	return maxBalance
}

// BalanceFromBig converts x, failing if it is negative or wider than 128 bits
func BalanceFromBig(x *big.Int) (Balance, error) {
	if x == nil || x.Sign() < 0 || x.BitLen() > balanceBits {
		return Balance{}, ErrBalanceOutOfRange
	}
	var b Balance
	b.v.SetFromBig(x)
	return b, nil
}

// BalanceFromDecimal parses a base 10 string
func BalanceFromDecimal(s string) (Balance, error) {
	var b Balance
	if err := b.v.SetFromDecimal(s); err != nil {
		return Balance{}, fmt.Errorf("invalid balance %q: %w", s, err)
	}
	if b.v.BitLen() > balanceBits {
		return Balance{}, ErrBalanceOutOfRange
	}
	return b, nil
}

// BalanceFromBE decodes 16 big-endian bytes
func BalanceFromBE(buf []byte) (Balance, error) {
	if len(buf) != BalanceLength {
		return Balance{}, fmt.Errorf("balance must be %d bytes, got %d", BalanceLength, len(buf))
	}
	var b Balance
	b.v.SetBytes(buf)
	return b, nil
}

// BalanceFromLE decodes 16 little-endian bytes
func BalanceFromLE(buf []byte) (Balance, error) {
	if len(buf) != BalanceLength {
		return Balance{}, fmt.Errorf("balance must be %d bytes, got %d", BalanceLength, len(buf))
	}
	var be [BalanceLength]byte
	for i := range buf {
		be[BalanceLength-1-i] = buf[i]
	}
	return BalanceFromBE(be[:])
}

// BE returns the 16 byte big-endian encoding
func (b Balance) BE() [BalanceLength]byte {
	full := b.v.Bytes32()
	var out [BalanceLength]byte
	copy(out[:], full[32-BalanceLength:])
	return out
}

// LE returns the 16 byte little-endian encoding
func (b Balance) LE() [BalanceLength]byte {
	be := b.BE()
	var out [BalanceLength]byte
	for i := range be {
		out[BalanceLength-1-i] = be[i]
	}
	return out
}

// CheckedAdd returns b+o and false when the sum exceeds 128 bits
func (b Balance) CheckedAdd(o Balance) (Balance, bool) {
	var r Balance
	r.v.Add(&b.v, &o.v)
	if r.v.BitLen() > balanceBits {
		return Balance{}, false
	}
	return r, true
}

// CheckedSub returns b-o and false on underflow
func (b Balance) CheckedSub(o Balance) (Balance, bool) {
	var r Balance
	if _, underflow := r.v.SubOverflow(&b.v, &o.v); underflow {
		return Balance{}, false
	}
	return r, true
}

// SaturatingSub returns b-o floored at zero
func (b Balance) SaturatingSub(o Balance) Balance {
	r, ok := b.CheckedSub(o)
	if !ok {
		return Balance{}
	}
	return r
}

// Min returns the smallest of b and o
func (b Balance) Min(o Balance) Balance {
	if b.Cmp(o) <= 0 {
		return b
	}
	return o
}

// Cmp compares b and o and returns -1, 0 or +1
func (b Balance) Cmp(o Balance) int {
	return b.v.Cmp(&o.v)
}

// Lt reports whether b < o
func (b Balance) Lt(o Balance) bool {
	return b.Cmp(o) < 0
}

// IsZero reports whether b is 0
func (b Balance) IsZero() bool {
	return b.v.IsZero()
}

// Big returns b as a big.Int
func (b Balance) Big() *big.Int {
	return b.v.ToBig()
}

// String returns the decimal representation
func (b Balance) String() string {
	return b.v.Dec()
}

// MarshalText implements encoding.TextMarshaler using the decimal form
func (b Balance) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *Balance) UnmarshalText(input []byte) error {
	v, err := BalanceFromDecimal(string(input))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
