package chainext

import (
	"fmt"

	"github.com/assetbridge/chainext/ledger"
)

// DecodeAccount converts a raw 32 byte address into a ledger account.
// Any other length is an ErrBadAddress.
func DecodeAccount(raw []byte) (ledger.AccountID, error) {
	var id ledger.AccountID
	if len(raw) != ledger.AccountIDLength {
		return id, fmt.Errorf("%w: expected %d bytes, got %d", ErrBadAddress, ledger.AccountIDLength, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}
