package rpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/assetbridge/chainext/chainext"
	"github.com/assetbridge/chainext/db"
	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/log"
	"github.com/assetbridge/chainext/rpc/types"
	"github.com/assetbridge/chainext/vmhost"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// ErrExtensionCallDisabled is returned by assets_extensionCall unless RPC.EnableExtensionCall is set
var ErrExtensionCallDisabled = errors.New("assets_extensionCall is disabled")

const (
	// ASSETS is the namespace of the assets service
	ASSETS    = "assets"
	meterName = "github.com/assetbridge/chainext/rpc"
)

// AssetsEndpoints contains implementations for the "assets" RPC endpoints
type AssetsEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	// extensionCalls gates ExtensionCall
	extensionCalls bool
	assets         AssetQuerier
	extension      ExtensionInvoker
}

// NewAssetsEndpoints returns AssetsEndpoints
func NewAssetsEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	enableExtensionCall bool,
	assets AssetQuerier,
	extension ExtensionInvoker,
) *AssetsEndpoints {
	meter := otel.Meter(meterName)
	return &AssetsEndpoints{
		logger:         logger,
		meter:          meter,
		readTimeout:    readTimeout,
		writeTimeout:   writeTimeout,
		extensionCalls: enableExtensionCall,
		assets:         assets,
		extension:      extension,
	}
}

func (a *AssetsEndpoints) count(ctx context.Context, name string) {
	c, merr := a.meter.Int64Counter(name)
	if merr != nil {
		a.logger.Warnf("failed to create %s counter: %s", name, merr)
		return
	}
	c.Add(ctx, 1)
}

// Balance returns the balance of who in the asset
// curl -X POST http://localhost:5577/ -H "Content-Type: application/json" \
// -d '{"method":"assets_balance", "params":[5, "0x0a00..."], "id":1}'
func (a *AssetsEndpoints) Balance(assetID uint32, who ledger.AccountID) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.readTimeout)
	defer cancel()
	a.count(ctx, "balance")

	b, err := a.assets.Balance(ctx, ledger.AssetID(assetID), who)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to get balance of %s for asset %d, error: %s", who, assetID, err))
	}
	return b, nil
}

// TotalSupply returns the amount of the asset in existence
func (a *AssetsEndpoints) TotalSupply(assetID uint32) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.readTimeout)
	defer cancel()
	a.count(ctx, "total_supply")

	b, err := a.assets.TotalSupply(ctx, ledger.AssetID(assetID))
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to get total supply of asset %d, error: %s", assetID, err))
	}
	return b, nil
}

// Allowance returns how much delegate may transfer out of owner's balance
func (a *AssetsEndpoints) Allowance(assetID uint32, owner, delegate ledger.AccountID) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.readTimeout)
	defer cancel()
	a.count(ctx, "allowance")

	b, err := a.assets.Allowance(ctx, ledger.AssetID(assetID), owner, delegate)
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to get allowance of %s over %s for asset %d, error: %s", delegate, owner, assetID, err))
	}
	return b, nil
}

// Metadata returns the metadata of the asset
func (a *AssetsEndpoints) Metadata(assetID uint32) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.readTimeout)
	defer cancel()
	a.count(ctx, "metadata")

	m, err := a.assets.Metadata(ctx, ledger.AssetID(assetID))
	if errors.Is(err, db.ErrNotFound) {
		return nil, rpc.NewRPCError(rpc.NotFoundErrorCode, "metadata not found")
	}
	if err != nil {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("failed to get metadata of asset %d, error: %s", assetID, err))
	}
	return types.NewAssetMetadata(m), nil
}

// ExtensionCall runs a single chain extension call on behalf of a contract.
// Calls are executed one at a time by the VM host.
func (a *AssetsEndpoints) ExtensionCall(call types.ExtensionCall) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.writeTimeout)
	defer cancel()
	a.count(ctx, "extension_call")

	if !a.extensionCalls {
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode, ErrExtensionCallDisabled.Error())
	}

	res, err := a.extension.Invoke(ctx, vmhost.Invocation{
		Caller:         call.Caller,
		Contract:       call.Contract,
		FuncID:         call.FuncID,
		Input:          call.Input,
		OutputCapacity: call.OutputCapacity,
	})
	if err != nil {
		a.logger.Infof("extension call %s aborted: %s", chainext.FuncID(call.FuncID), err)
		return nil, rpc.NewRPCError(rpc.DefaultErrorCode,
			fmt.Sprintf("extension call %d aborted, error: %s", call.FuncID, err))
	}
	return types.NewExtensionResult(chainext.FuncID(call.FuncID), res), nil
}
