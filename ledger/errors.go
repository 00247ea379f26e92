package ledger

import (
	"errors"
	"fmt"
)

// ErrorKind is the top level class of a DispatchError
type ErrorKind uint8

const (
	// KindOther is a failure that has no specific kind
	KindOther ErrorKind = iota
	// KindCannotLookup means an account could not be looked up
	KindCannotLookup
	// KindBadOrigin means the origin is not allowed to perform the call
	KindBadOrigin
	// KindModule is a failure raised by a ledger module, see ModuleError
	KindModule
	// KindConsumerRemaining means an account still has consumer references
	KindConsumerRemaining
	// KindNoProviders means an account has no provider references
	KindNoProviders
	// KindTooManyConsumers means the consumer reference limit was reached
	KindTooManyConsumers
	// KindToken is a token related failure, see TokenError
	KindToken
	// KindArithmetic is an arithmetic failure, see ArithmeticError
	KindArithmetic
	// KindTransactional means the transactional layer limit was reached
	KindTransactional
	// KindExhausted means resources were exhausted
	KindExhausted
	// KindCorruption means the ledger state is corrupt
	KindCorruption
	// KindUnavailable means a resource is temporarily unavailable
	KindUnavailable
)

var kindNames = map[ErrorKind]string{
	KindOther:             "Other",
	KindCannotLookup:      "CannotLookup",
	KindBadOrigin:         "BadOrigin",
	KindModule:            "Module",
	KindConsumerRemaining: "ConsumerRemaining",
	KindNoProviders:       "NoProviders",
	KindTooManyConsumers:  "TooManyConsumers",
	KindToken:             "Token",
	KindArithmetic:        "Arithmetic",
	KindTransactional:     "Transactional",
	KindExhausted:         "Exhausted",
	KindCorruption:        "Corruption",
	KindUnavailable:       "Unavailable",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// TokenError is the sub kind of a KindToken failure
type TokenError uint8

const (
	TokenNoFunds TokenError = iota
	TokenWouldDie
	TokenBelowMinimum
	TokenCannotCreate
	TokenUnknownAsset
	TokenFrozen
	TokenUnsupported
	TokenCannotCreateHold
	TokenNotExpendable
	TokenBlocked
)

var tokenNames = []string{
	"NoFunds", "WouldDie", "BelowMinimum", "CannotCreate", "UnknownAsset",
	"Frozen", "Unsupported", "CannotCreateHold", "NotExpendable", "Blocked",
}

func (t TokenError) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenError(%d)", uint8(t))
}

// ArithmeticError is the sub kind of a KindArithmetic failure
type ArithmeticError uint8

const (
	ArithmeticUnderflow ArithmeticError = iota
	ArithmeticOverflow
	ArithmeticDivisionByZero
)

var arithmeticNames = []string{"Underflow", "Overflow", "DivisionByZero"}

func (a ArithmeticError) String() string {
	if int(a) < len(arithmeticNames) {
		return arithmeticNames[a]
	}
	return fmt.Sprintf("ArithmeticError(%d)", uint8(a))
}

// ModuleError identifies a failure raised by a specific ledger module
type ModuleError struct {
	// Index of the module raising the error
	Index uint8
	// Name of the error inside the module
	Name string
}

// DispatchError is a business failure returned by the ledger. The ledger state is
// left untouched when a call returns one.
type DispatchError struct {
	Kind       ErrorKind
	Token      TokenError
	Arithmetic ArithmeticError
	Module     ModuleError
	// Message is an optional human readable detail, ignored by Is
	Message string
}

// Error implements error
func (e *DispatchError) Error() string {
	var desc string
	switch e.Kind {
	case KindToken:
		desc = fmt.Sprintf("Token(%s)", e.Token)
	case KindArithmetic:
		desc = fmt.Sprintf("Arithmetic(%s)", e.Arithmetic)
	case KindModule:
		desc = fmt.Sprintf("Module(%d, %s)", e.Module.Index, e.Module.Name)
	default:
		desc = e.Kind.String()
	}
	if e.Message != "" {
		return desc + ": " + e.Message
	}
	return desc
}

// Is reports whether target describes the same failure, regardless of Message
func (e *DispatchError) Is(target error) bool {
	t, ok := target.(*DispatchError)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	switch e.Kind {
	case KindToken:
		return e.Token == t.Token
	case KindArithmetic:
		return e.Arithmetic == t.Arithmetic
	case KindModule:
		return e.Module == t.Module
	default:
		return true
	}
}

// WithMessage returns a copy of e carrying msg
func (e *DispatchError) WithMessage(format string, args ...interface{}) *DispatchError {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// AsDispatchError unwraps err into a DispatchError
func AsDispatchError(err error) (*DispatchError, bool) {
	var de *DispatchError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// NewError returns a DispatchError of a kind without sub kind
func NewError(kind ErrorKind) *DispatchError {
	return &DispatchError{Kind: kind}
}

// NewTokenError returns a KindToken DispatchError
func NewTokenError(t TokenError) *DispatchError {
	return &DispatchError{Kind: KindToken, Token: t}
}

// NewArithmeticError returns a KindArithmetic DispatchError
func NewArithmeticError(a ArithmeticError) *DispatchError {
	return &DispatchError{Kind: KindArithmetic, Arithmetic: a}
}

// NewModuleError returns a KindModule DispatchError
func NewModuleError(index uint8, name string) *DispatchError {
	return &DispatchError{Kind: KindModule, Module: ModuleError{Index: index, Name: name}}
}

var (
	ErrOther        = NewError(KindOther)
	ErrCannotLookup = NewError(KindCannotLookup)
	ErrBadOrigin    = NewError(KindBadOrigin)
	ErrNoFunds      = NewTokenError(TokenNoFunds)
	ErrWouldDie     = NewTokenError(TokenWouldDie)
	ErrBelowMinimum = NewTokenError(TokenBelowMinimum)
	ErrUnknownAsset = NewTokenError(TokenUnknownAsset)
	ErrFrozen       = NewTokenError(TokenFrozen)
	ErrOverflow     = NewArithmeticError(ArithmeticOverflow)
	ErrUnderflow    = NewArithmeticError(ArithmeticUnderflow)
)
