package chainext

import "fmt"

// FuncID is the operation code a contract passes to the extension.
// Values are stable and never renumbered.
type FuncID uint32

const (
	FuncCreate           FuncID = 1102
	FuncMint             FuncID = 1103
	FuncBurn             FuncID = 1104
	FuncTransfer         FuncID = 1105
	FuncBalance          FuncID = 1106
	FuncTotalSupply      FuncID = 1107
	FuncApproveTransfer  FuncID = 1108
	FuncTransferApproved FuncID = 1109
	FuncAllowance        FuncID = 1110
	FuncAdjustAllowance  FuncID = 1111
	FuncSetMetadata      FuncID = 1112
)

var funcNames = map[FuncID]string{
	FuncCreate:           "create",
	FuncMint:             "mint",
	FuncBurn:             "burn",
	FuncTransfer:         "transfer",
	FuncBalance:          "balance",
	FuncTotalSupply:      "total_supply",
	FuncApproveTransfer:  "approve_transfer",
	FuncTransferApproved: "transfer_approved",
	FuncAllowance:        "allowance",
	FuncAdjustAllowance:  "increase_decrease_allowance",
	FuncSetMetadata:      "set_metadata",
}

func (f FuncID) String() string {
	if name, ok := funcNames[f]; ok {
		return name
	}
	return fmt.Sprintf("func_%d", uint32(f))
}
