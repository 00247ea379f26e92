package ledger

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBalanceCheckedArithmetic(t *testing.T) {
	sum, ok := NewBalance(40).CheckedAdd(NewBalance(2))
	require.True(t, ok)
	require.Equal(t, "42", sum.String())

	_, ok = MaxBalance().CheckedAdd(NewBalance(1))
	require.False(t, ok)

	diff, ok := NewBalance(10).CheckedSub(NewBalance(4))
	require.True(t, ok)
	require.Equal(t, NewBalance(6), diff)

	_, ok = NewBalance(4).CheckedSub(NewBalance(10))
	require.False(t, ok)

	require.True(t, NewBalance(4).SaturatingSub(NewBalance(10)).IsZero())
	require.Equal(t, NewBalance(3), NewBalance(3).Min(NewBalance(7)))
}

func TestBalanceEncoding(t *testing.T) {
	b := NewBalance(0x0102)
	be := b.BE()
	le := b.LE()

	require.Equal(t, byte(0x01), be[14])
	require.Equal(t, byte(0x02), be[15])
	require.Equal(t, byte(0x02), le[0])
	require.Equal(t, byte(0x01), le[1])

	fromBE, err := BalanceFromBE(be[:])
	require.NoError(t, err)
	require.Equal(t, b, fromBE)

	fromLE, err := BalanceFromLE(le[:])
	require.NoError(t, err)
	require.Equal(t, b, fromLE)

	_, err = BalanceFromBE(be[:15])
	require.Error(t, err)

	maxBE := MaxBalance().BE()
	for _, v := range maxBE {
		require.Equal(t, byte(0xff), v)
	}
}

func TestBalanceFromBig(t *testing.T) {
	_, err := BalanceFromBig(big.NewInt(-1))
	require.ErrorIs(t, err, ErrBalanceOutOfRange)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	_, err = BalanceFromBig(tooBig)
	require.ErrorIs(t, err, ErrBalanceOutOfRange)

	b, err := BalanceFromBig(new(big.Int).Sub(tooBig, big.NewInt(1)))
	require.NoError(t, err)
	require.Equal(t, MaxBalance(), b)

	_, err = BalanceFromDecimal("340282366920938463463374607431768211456")
	require.ErrorIs(t, err, ErrBalanceOutOfRange)
}

func TestBalanceJSON(t *testing.T) {
	type wrapper struct {
		Amount Balance `json:"amount"`
	}
	data, err := json.Marshal(wrapper{Amount: NewBalance(1000)})
	require.NoError(t, err)
	require.JSONEq(t, `{"amount":"1000"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal(data, &w))
	require.Equal(t, NewBalance(1000), w.Amount)
}
