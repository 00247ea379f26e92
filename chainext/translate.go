package chainext

import (
	"github.com/assetbridge/chainext/ledger"
)

// TranslateError maps any ledger failure onto an ErrorCode. It never fails:
// whatever it does not recognise becomes Unknown.
func TranslateError(err error) ErrorCode {
	de, ok := ledger.AsDispatchError(err)
	if !ok {
		return Code(CodeUnknown)
	}
	switch de.Kind {
	case ledger.KindOther:
		return Code(CodeOther)
	case ledger.KindCannotLookup:
		return Code(CodeCannotLookup)
	case ledger.KindBadOrigin:
		return Code(CodeBadOrigin)
	case ledger.KindModule:
		return Code(CodeModule)
	case ledger.KindConsumerRemaining:
		return Code(CodeConsumerRemaining)
	case ledger.KindNoProviders:
		return Code(CodeNoProviders)
	case ledger.KindTooManyConsumers:
		return Code(CodeTooManyConsumers)
	case ledger.KindToken:
		return TokenCode(translateToken(de.Token))
	case ledger.KindArithmetic:
		return ArithmeticCode(translateArithmetic(de.Arithmetic))
	default:
		return Code(CodeUnknown)
	}
}

func translateToken(t ledger.TokenError) TokenErrorCode {
	switch t {
	case ledger.TokenNoFunds:
		return TokenCodeNoFunds
	case ledger.TokenWouldDie:
		return TokenCodeWouldDie
	case ledger.TokenBelowMinimum:
		return TokenCodeBelowMinimum
	case ledger.TokenCannotCreate:
		return TokenCodeCannotCreate
	case ledger.TokenUnknownAsset:
		return TokenCodeUnknownAsset
	case ledger.TokenFrozen:
		return TokenCodeFrozen
	case ledger.TokenUnsupported:
		return TokenCodeUnsupported
	default:
		return TokenCodeUnknown
	}
}

func translateArithmetic(a ledger.ArithmeticError) ArithmeticErrorCode {
	switch a {
	case ledger.ArithmeticUnderflow:
		return ArithmeticCodeUnderflow
	case ledger.ArithmeticOverflow:
		return ArithmeticCodeOverflow
	case ledger.ArithmeticDivisionByZero:
		return ArithmeticCodeDivisionByZero
	default:
		return ArithmeticCodeUnknown
	}
}
