package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("minting: %w", ErrNoFunds.WithMessage("balance 3 < 10"))

	require.ErrorIs(t, wrapped, ErrNoFunds)
	require.ErrorIs(t, wrapped, NewTokenError(TokenNoFunds))
	require.NotErrorIs(t, wrapped, ErrFrozen)
	require.NotErrorIs(t, wrapped, ErrOverflow)

	require.ErrorIs(t, NewModuleError(2, "NoPermission"), NewModuleError(2, "NoPermission"))
	require.NotErrorIs(t, NewModuleError(2, "NoPermission"), NewModuleError(2, "InUse"))

	de, ok := AsDispatchError(wrapped)
	require.True(t, ok)
	require.Equal(t, KindToken, de.Kind)
	require.Equal(t, "Token(NoFunds): balance 3 < 10", de.Error())
}

func TestAccountIDText(t *testing.T) {
	var a AccountID
	a[0] = 0xab
	a[31] = 0x01

	text, err := a.MarshalText()
	require.NoError(t, err)

	var b AccountID
	require.NoError(t, b.UnmarshalText(text))
	require.Equal(t, a, b)
	require.Equal(t, string(text), a.String())

	require.Error(t, b.UnmarshalText([]byte("0x1234")))
}
