package types

import (
	"unicode/utf8"

	"github.com/assetbridge/chainext/chainext"
	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/vmhost"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AssetMetadata is the JSON view of ledger.Metadata. Name and Symbol are
// returned as text when they are valid utf8, RawName and RawSymbol always
type AssetMetadata struct {
	Name      string        `json:"name"`
	Symbol    string        `json:"symbol"`
	RawName   hexutil.Bytes `json:"rawName"`
	RawSymbol hexutil.Bytes `json:"rawSymbol"`
	Decimals  uint8         `json:"decimals"`
}

func NewAssetMetadata(m ledger.Metadata) AssetMetadata {
	return AssetMetadata{
		Name:      text(m.Name),
		Symbol:    text(m.Symbol),
		RawName:   m.Name,
		RawSymbol: m.Symbol,
		Decimals:  m.Decimals,
	}
}

// text trims the zero padding of a fixed width field
func text(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	if !utf8.Valid(b[:end]) {
		return ""
	}
	return string(b[:end])
}

// ExtensionCall is the request of assets_extensionCall
type ExtensionCall struct {
	FuncID         uint32           `json:"funcID"`
	Caller         ledger.AccountID `json:"caller"`
	Contract       ledger.AccountID `json:"contract"`
	Input          hexutil.Bytes    `json:"input"`
	OutputCapacity uint32           `json:"outputCapacity,omitempty"`
}

// ExtensionResult is what the contract observed after the call
type ExtensionResult struct {
	ReturnCode uint32        `json:"returnCode"`
	Written    bool          `json:"written"`
	Output     hexutil.Bytes `json:"output"`
	// Value is set for queries
	Value *ledger.Balance `json:"value,omitempty"`
	// Error is set when the output is an Err envelope
	Error string `json:"error,omitempty"`
}

func NewExtensionResult(id chainext.FuncID, res *vmhost.Result) ExtensionResult {
	out := ExtensionResult{
		ReturnCode: res.Code,
		Written:    res.Written,
		Output:     res.Output,
	}
	if !res.Written {
		return out
	}
	switch id {
	case chainext.FuncBalance, chainext.FuncTotalSupply, chainext.FuncAllowance:
		if v, err := ledger.BalanceFromBE(res.Output); err == nil {
			out.Value = &v
		}
	default:
		if code, err := chainext.DecodeResult(res.Output); err == nil && code != nil {
			out.Error = code.String()
		}
	}
	return out
}
