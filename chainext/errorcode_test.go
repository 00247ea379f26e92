package chainext

import (
	"errors"
	"fmt"
	"testing"

	"github.com/assetbridge/chainext/ledger"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeEncoding(t *testing.T) {
	tcs := []struct {
		code     ErrorCode
		expected []byte
	}{
		{Code(CodeOther), []byte{0}},
		{Code(CodeBadOrigin), []byte{2}},
		{Code(CodeModule), []byte{3}},
		{TokenCode(TokenCodeNoFunds), []byte{7, 0}},
		{TokenCode(TokenCodeFrozen), []byte{7, 5}},
		{ArithmeticCode(ArithmeticCodeOverflow), []byte{8, 1}},
		{Code(CodeUnknown), []byte{9}},
		{PartialAllowanceUpdate(TokenCode(TokenCodeFrozen)), []byte{10, 7, 5}},
	}

	for _, tc := range tcs {
		t.Run(tc.code.String(), func(t *testing.T) {
			require.Equal(t, tc.expected, tc.code.Encode())
			require.Equal(t, append([]byte{1}, tc.expected...), EncodeErr(tc.code))

			decoded, err := DecodeResult(EncodeErr(tc.code))
			require.NoError(t, err)
			require.Equal(t, tc.code, *decoded)
		})
	}

	decoded, err := DecodeResult(EncodeOk())
	require.NoError(t, err)
	require.Nil(t, decoded)

	for _, bad := range [][]byte{nil, {2}, {0, 0}, {1}, {1, 7}, {1, 7, 8}, {1, 11}, {1, 9, 9}} {
		_, err := DecodeResult(bad)
		require.Error(t, err, "%x", bad)
	}
}

func TestTranslateError(t *testing.T) {
	tcs := []struct {
		err      error
		expected ErrorCode
	}{
		{ledger.ErrOther, Code(CodeOther)},
		{ledger.ErrCannotLookup, Code(CodeCannotLookup)},
		{ledger.ErrBadOrigin, Code(CodeBadOrigin)},
		{ledger.NewModuleError(4, "NoPermission"), Code(CodeModule)},
		{ledger.NewError(ledger.KindConsumerRemaining), Code(CodeConsumerRemaining)},
		{ledger.NewError(ledger.KindNoProviders), Code(CodeNoProviders)},
		{ledger.NewError(ledger.KindTooManyConsumers), Code(CodeTooManyConsumers)},
		{ledger.ErrNoFunds, TokenCode(TokenCodeNoFunds)},
		{ledger.ErrWouldDie, TokenCode(TokenCodeWouldDie)},
		{ledger.ErrBelowMinimum, TokenCode(TokenCodeBelowMinimum)},
		{ledger.NewTokenError(ledger.TokenCannotCreate), TokenCode(TokenCodeCannotCreate)},
		{ledger.ErrUnknownAsset, TokenCode(TokenCodeUnknownAsset)},
		{ledger.ErrFrozen, TokenCode(TokenCodeFrozen)},
		{ledger.NewTokenError(ledger.TokenUnsupported), TokenCode(TokenCodeUnsupported)},
		{ledger.NewTokenError(ledger.TokenBlocked), TokenCode(TokenCodeUnknown)},
		{ledger.ErrUnderflow, ArithmeticCode(ArithmeticCodeUnderflow)},
		{ledger.ErrOverflow, ArithmeticCode(ArithmeticCodeOverflow)},
		{ledger.NewArithmeticError(ledger.ArithmeticDivisionByZero), ArithmeticCode(ArithmeticCodeDivisionByZero)},
		{ledger.NewArithmeticError(ledger.ArithmeticError(42)), ArithmeticCode(ArithmeticCodeUnknown)},
		{ledger.NewError(ledger.KindCorruption), Code(CodeUnknown)},
		{ledger.NewError(ledger.KindTransactional), Code(CodeUnknown)},
		{fmt.Errorf("wrapped: %w", ledger.ErrFrozen), TokenCode(TokenCodeFrozen)},
		{errors.New("disk on fire"), Code(CodeUnknown)},
		{nil, Code(CodeUnknown)},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.expected, TranslateError(tc.err), "%v", tc.err)
	}
}
