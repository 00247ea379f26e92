package ledger

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AccountIDLength is the size of the native account identity
const AccountIDLength = 32

// AccountID is the native account identity of the ledger
type AccountID [AccountIDLength]byte

// String returns the 0x prefixed hex encoding of the account
func (a AccountID) String() string {
	return hexutil.Encode(a[:])
}

// MarshalText implements encoding.TextMarshaler
func (a AccountID) MarshalText() ([]byte, error) {
	return hexutil.Bytes(a[:]).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *AccountID) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("AccountID", input, a[:])
}

// AssetID identifies an asset class inside the ledger
type AssetID uint64

// Metadata describes an asset class
type Metadata struct {
	Name     []byte `json:"name"`
	Symbol   []byte `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}
