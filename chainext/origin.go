package chainext

import (
	"fmt"

	"github.com/assetbridge/chainext/ledger"
)

// OriginSelector chooses whose identity authenticates a ledger call
type OriginSelector uint8

const (
	// CallerOrigin acts as whoever called the contract
	CallerOrigin OriginSelector = 0
	// ContractOrigin acts as the contract itself
	ContractOrigin OriginSelector = 1
)

func (o OriginSelector) String() string {
	switch o {
	case CallerOrigin:
		return "caller"
	case ContractOrigin:
		return "contract"
	default:
		return fmt.Sprintf("OriginSelector(%d)", uint8(o))
	}
}

func (o OriginSelector) valid() bool {
	return o == CallerOrigin || o == ContractOrigin
}

// ResolveOrigin is the single origin policy of the extension
func ResolveOrigin(selector OriginSelector, caller, contract ledger.AccountID) ledger.AccountID {
	if selector == ContractOrigin {
		return contract
	}
	return caller
}
