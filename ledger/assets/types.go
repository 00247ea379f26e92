package assets

import "github.com/assetbridge/chainext/ledger"

// Asset is the stored state of an asset class
type Asset struct {
	AssetID    ledger.AssetID   `meddler:"asset_id" json:"assetId"`
	Owner      ledger.AccountID `meddler:"owner,account" json:"owner"`
	Issuer     ledger.AccountID `meddler:"issuer,account" json:"issuer"`
	Admin      ledger.AccountID `meddler:"admin,account" json:"admin"`
	Freezer    ledger.AccountID `meddler:"freezer,account" json:"freezer"`
	Supply     ledger.Balance   `meddler:"supply,balance" json:"supply"`
	MinBalance ledger.Balance   `meddler:"min_balance,balance" json:"minBalance"`
	Accounts   uint32           `meddler:"accounts" json:"accounts"`
	Approvals  uint32           `meddler:"approvals" json:"approvals"`
	IsFrozen   bool             `meddler:"is_frozen" json:"isFrozen"`
}

type account struct {
	AssetID  ledger.AssetID   `meddler:"asset_id"`
	Who      ledger.AccountID `meddler:"who,account"`
	Balance  ledger.Balance   `meddler:"balance,balance"`
	IsFrozen bool             `meddler:"is_frozen"`
}

type approval struct {
	AssetID  ledger.AssetID   `meddler:"asset_id"`
	Owner    ledger.AccountID `meddler:"owner,account"`
	Delegate ledger.AccountID `meddler:"delegate,account"`
	Amount   ledger.Balance   `meddler:"amount,balance"`
}

type metadata struct {
	AssetID  ledger.AssetID `meddler:"asset_id"`
	Name     []byte         `meddler:"name"`
	Symbol   []byte         `meddler:"symbol"`
	Decimals uint8          `meddler:"decimals"`
}
