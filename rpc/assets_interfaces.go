package rpc

import (
	"context"

	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/vmhost"
)

type AssetQuerier interface {
	Balance(ctx context.Context, id ledger.AssetID, who ledger.AccountID) (ledger.Balance, error)
	TotalSupply(ctx context.Context, id ledger.AssetID) (ledger.Balance, error)
	Allowance(ctx context.Context, id ledger.AssetID, owner, delegate ledger.AccountID) (ledger.Balance, error)
	Metadata(ctx context.Context, id ledger.AssetID) (ledger.Metadata, error)
}

type ExtensionInvoker interface {
	Invoke(ctx context.Context, inv vmhost.Invocation) (*vmhost.Result, error)
}
