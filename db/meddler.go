package db

import (
	"errors"
	"fmt"

	"github.com/assetbridge/chainext/ledger"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
)

// init registers tags to be used to read/write from SQL DBs using meddler
func init() {
	meddler.Default = meddler.SQLite
	meddler.Register("balance", BalanceMeddler{})
	meddler.Register("account", AccountMeddler{})
}

func SQLiteErr(err error) (*sqlite.Error, bool) {
	sqliteErr := &sqlite.Error{}
	if ok := errors.As(err, sqliteErr); ok {
		return sqliteErr, true
	}
	if driverErr, ok := meddler.DriverErr(err); ok {
		return sqliteErr, errors.As(driverErr, sqliteErr)
	}
	return sqliteErr, false
}

// IsUniqueViolation reports whether err comes from a UNIQUE or PRIMARY KEY constraint
func IsUniqueViolation(err error) bool {
	sqliteErr, ok := SQLiteErr(err)
	if !ok {
		return false
	}
	return int(sqliteErr.ExtendedCode) == UniqueConstrain || sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique
}

// BalanceMeddler stores a ledger.Balance as its decimal string, so u128 values
// survive sqlite's 64 bit integers
type BalanceMeddler struct{}

// PreRead is called before a Scan operation for fields that have the BalanceMeddler
func (b BalanceMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the BalanceMeddler
func (b BalanceMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	if ptr == nil {
		return errors.New("BalanceMeddler.PostRead: nil pointer")
	}
	field, ok := fieldPtr.(*ledger.Balance)
	if !ok {
		return errors.New("fieldPtr is not *ledger.Balance")
	}
	v, err := ledger.BalanceFromDecimal(*ptr)
	if err != nil {
		return fmt.Errorf("BalanceMeddler.PostRead: %w", err)
	}
	*field = v
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the BalanceMeddler
func (b BalanceMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(ledger.Balance)
	if !ok {
		return nil, errors.New("fieldPtr is not ledger.Balance")
	}
	return field.String(), nil
}

// AccountMeddler stores a ledger.AccountID as 0x prefixed hex
type AccountMeddler struct{}

// PreRead is called before a Scan operation for fields that have the AccountMeddler
func (a AccountMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the AccountMeddler
func (a AccountMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	if ptr == nil {
		return errors.New("AccountMeddler.PostRead: nil pointer")
	}
	field, ok := fieldPtr.(*ledger.AccountID)
	if !ok {
		return errors.New("fieldPtr is not *ledger.AccountID")
	}
	return field.UnmarshalText([]byte(*ptr))
}

// PreWrite is called before an Insert or Update operation for fields that have the AccountMeddler
func (a AccountMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(ledger.AccountID)
	if !ok {
		return nil, errors.New("fieldPtr is not ledger.AccountID")
	}
	return field.String(), nil
}
