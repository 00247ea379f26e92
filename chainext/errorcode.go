package chainext

import (
	"errors"
	"fmt"
)

// ErrorKind is the top level tag of an ErrorCode. The numbering is part of the
// wire format: new kinds are only appended.
type ErrorKind uint8

const (
	CodeOther ErrorKind = iota
	CodeCannotLookup
	CodeBadOrigin
	CodeModule
	CodeConsumerRemaining
	CodeNoProviders
	CodeTooManyConsumers
	CodeToken
	CodeArithmetic
	CodeUnknown
	// CodePartialAllowanceUpdate reports an allowance adjustment that cancelled the
	// previous approval but failed to grant the new one. The allowance is now zero.
	CodePartialAllowanceUpdate
)

var errorKindNames = []string{
	"Other", "CannotLookup", "BadOrigin", "Module", "ConsumerRemaining", "NoProviders",
	"TooManyConsumers", "Token", "Arithmetic", "Unknown", "PartialAllowanceUpdate",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// TokenErrorCode is the sub tag of CodeToken
type TokenErrorCode uint8

const (
	TokenCodeNoFunds TokenErrorCode = iota
	TokenCodeWouldDie
	TokenCodeBelowMinimum
	TokenCodeCannotCreate
	TokenCodeUnknownAsset
	TokenCodeFrozen
	TokenCodeUnsupported
	TokenCodeUnknown
)

var tokenCodeNames = []string{
	"NoFunds", "WouldDie", "BelowMinimum", "CannotCreate", "UnknownAsset", "Frozen", "Unsupported", "Unknown",
}

func (t TokenErrorCode) String() string {
	if int(t) < len(tokenCodeNames) {
		return tokenCodeNames[t]
	}
	return fmt.Sprintf("TokenErrorCode(%d)", uint8(t))
}

// ArithmeticErrorCode is the sub tag of CodeArithmetic
type ArithmeticErrorCode uint8

const (
	ArithmeticCodeUnderflow ArithmeticErrorCode = iota
	ArithmeticCodeOverflow
	ArithmeticCodeDivisionByZero
	ArithmeticCodeUnknown
)

var arithmeticCodeNames = []string{"Underflow", "Overflow", "DivisionByZero", "Unknown"}

func (a ArithmeticErrorCode) String() string {
	if int(a) < len(arithmeticCodeNames) {
		return arithmeticCodeNames[a]
	}
	return fmt.Sprintf("ArithmeticErrorCode(%d)", uint8(a))
}

// ErrorCode is the failure reported to contracts inside a Result envelope
type ErrorCode struct {
	Kind       ErrorKind
	Token      TokenErrorCode
	Arithmetic ArithmeticErrorCode
	// Cause is set for CodePartialAllowanceUpdate only
	Cause *ErrorCode
}

// Code returns an ErrorCode without sub tag
func Code(kind ErrorKind) ErrorCode {
	return ErrorCode{Kind: kind}
}

// TokenCode returns a CodeToken ErrorCode
func TokenCode(t TokenErrorCode) ErrorCode {
	return ErrorCode{Kind: CodeToken, Token: t}
}

// ArithmeticCode returns a CodeArithmetic ErrorCode
func ArithmeticCode(a ArithmeticErrorCode) ErrorCode {
	return ErrorCode{Kind: CodeArithmetic, Arithmetic: a}
}

// PartialAllowanceUpdate wraps the failure of the re-approve step
func PartialAllowanceUpdate(cause ErrorCode) ErrorCode {
	return ErrorCode{Kind: CodePartialAllowanceUpdate, Cause: &cause}
}

func (c ErrorCode) String() string {
	switch c.Kind {
	case CodeToken:
		return fmt.Sprintf("Token(%s)", c.Token)
	case CodeArithmetic:
		return fmt.Sprintf("Arithmetic(%s)", c.Arithmetic)
	case CodePartialAllowanceUpdate:
		if c.Cause != nil {
			return fmt.Sprintf("PartialAllowanceUpdate(%s)", c.Cause)
		}
	}
	return c.Kind.String()
}

// Encode returns the tag, followed by the sub tag for Token and Arithmetic and
// by the encoded cause for PartialAllowanceUpdate
func (c ErrorCode) Encode() []byte {
	out := []byte{byte(c.Kind)}
	switch c.Kind {
	case CodeToken:
		out = append(out, byte(c.Token))
	case CodeArithmetic:
		out = append(out, byte(c.Arithmetic))
	case CodePartialAllowanceUpdate:
		cause := Code(CodeUnknown)
		if c.Cause != nil {
			cause = *c.Cause
		}
		out = append(out, cause.Encode()...)
	}
	return out
}

var errBadErrorCode = errors.New("invalid error code encoding")

// DecodeErrorCode parses an encoded ErrorCode and returns the bytes consumed
func DecodeErrorCode(buf []byte) (ErrorCode, int, error) {
	if len(buf) == 0 {
		return ErrorCode{}, 0, fmt.Errorf("%w: empty", errBadErrorCode)
	}
	c := ErrorCode{Kind: ErrorKind(buf[0])}
	switch {
	case c.Kind == CodeToken || c.Kind == CodeArithmetic:
		if len(buf) < 2 { //nolint:mnd
			return ErrorCode{}, 0, fmt.Errorf("%w: missing sub tag", errBadErrorCode)
		}
		if c.Kind == CodeToken {
			c.Token = TokenErrorCode(buf[1])
			if c.Token > TokenCodeUnknown {
				return ErrorCode{}, 0, fmt.Errorf("%w: token sub tag %d", errBadErrorCode, buf[1])
			}
		} else {
			c.Arithmetic = ArithmeticErrorCode(buf[1])
			if c.Arithmetic > ArithmeticCodeUnknown {
				return ErrorCode{}, 0, fmt.Errorf("%w: arithmetic sub tag %d", errBadErrorCode, buf[1])
			}
		}
		return c, 2, nil //nolint:mnd
	case c.Kind == CodePartialAllowanceUpdate:
		cause, n, err := DecodeErrorCode(buf[1:])
		if err != nil {
			return ErrorCode{}, 0, err
		}
		c.Cause = &cause
		return c, 1 + n, nil
	case c.Kind > CodePartialAllowanceUpdate:
		return ErrorCode{}, 0, fmt.Errorf("%w: tag %d", errBadErrorCode, buf[0])
	}
	return c, 1, nil
}
