package chainext

import (
	"context"
	"fmt"

	"github.com/assetbridge/chainext/ledger"
)

// NewAssetRegistry registers the asset operations
func NewAssetRegistry(cfg Config) *Registry {
	return NewRegistry(AssetHandlers(cfg)...)
}

// AssetHandlers returns the handlers of every asset operation
func AssetHandlers(cfg Config) []Handler {
	return []Handler{
		NewHandler(FuncCreate, DecodeAssetRequest, handleCreate),
		NewHandler(FuncMint, DecodeAssetRequest, handleMint),
		NewHandler(FuncBurn, DecodeAssetRequest, handleBurn),
		NewHandler(FuncTransfer, DecodeAssetRequest, handleTransfer),
		NewHandler(FuncBalance, DecodeBalanceRequest, handleBalance),
		NewHandler(FuncTotalSupply, DecodeTotalSupplyRequest, handleTotalSupply),
		NewHandler(FuncApproveTransfer, DecodeAssetRequest, handleApproveTransfer),
		NewHandler(FuncTransferApproved, DecodeTransferApprovedRequest, handleTransferApproved),
		NewHandler(FuncAllowance, DecodeAllowanceRequest, handleAllowance),
		NewHandler(FuncAdjustAllowance, DecodeAdjustAllowanceRequest, adjustAllowance(cfg.StrictAllowanceOrigin)),
		NewHandler(FuncSetMetadata, DecodeMetadataRequest, handleSetMetadata),
	}
}

// mutation turns the outcome of a ledger call without payload into a Response
func mutation(err error) Response {
	return mutationOr(err, noResponse{})
}

// mutationOr answers ok when the ledger call succeeded
func mutationOr(err error, ok Response) Response {
	if err != nil {
		return errResponse{code: TranslateError(err)}
	}
	return ok
}

func handleCreate(ctx context.Context, c Call, r AssetRequest) (Response, error) {
	return mutationOr(
		c.Ledger.Create(ctx, c.Origin(r.Origin), ledger.AssetID(r.AssetID), r.Target, r.Amount),
		okResponse{},
	), nil
}

func handleMint(ctx context.Context, c Call, r AssetRequest) (Response, error) {
	return mutation(c.Ledger.Mint(ctx, c.Origin(r.Origin), ledger.AssetID(r.AssetID), r.Target, r.Amount)), nil
}

func handleBurn(ctx context.Context, c Call, r AssetRequest) (Response, error) {
	return mutation(c.Ledger.Burn(ctx, c.Origin(r.Origin), ledger.AssetID(r.AssetID), r.Target, r.Amount)), nil
}

func handleTransfer(ctx context.Context, c Call, r AssetRequest) (Response, error) {
	return mutation(c.Ledger.Transfer(ctx, c.Origin(r.Origin), ledger.AssetID(r.AssetID), r.Target, r.Amount)), nil
}

func handleApproveTransfer(ctx context.Context, c Call, r AssetRequest) (Response, error) {
	return mutation(
		c.Ledger.ApproveTransfer(ctx, c.Origin(r.Origin), ledger.AssetID(r.AssetID), r.Target, r.Amount),
	), nil
}

func handleTransferApproved(ctx context.Context, c Call, r TransferApprovedRequest) (Response, error) {
	return mutation(c.Ledger.TransferApproved(ctx, c.Origin(r.Origin), ledger.AssetID(r.AssetID),
		r.Owner, r.Target, r.Amount)), nil
}

func handleSetMetadata(ctx context.Context, c Call, r MetadataRequest) (Response, error) {
	return mutation(c.Ledger.SetMetadata(ctx, c.Origin(r.Origin), ledger.AssetID(r.AssetID),
		r.Name[:], r.Symbol[:], r.Decimals)), nil
}

func handleBalance(ctx context.Context, c Call, r BalanceRequest) (Response, error) {
	b, err := c.Ledger.Balance(ctx, ledger.AssetID(r.AssetID), r.Who)
	if err != nil {
		return nil, fmt.Errorf("error reading balance of %s: %w", r.Who, err)
	}
	return balanceResponse{value: b}, nil
}

func handleTotalSupply(ctx context.Context, c Call, r TotalSupplyRequest) (Response, error) {
	b, err := c.Ledger.TotalSupply(ctx, ledger.AssetID(r.AssetID))
	if err != nil {
		return nil, fmt.Errorf("error reading supply of asset %d: %w", r.AssetID, err)
	}
	return balanceResponse{value: b}, nil
}

func handleAllowance(ctx context.Context, c Call, r AllowanceRequest) (Response, error) {
	b, err := c.Ledger.Allowance(ctx, ledger.AssetID(r.AssetID), r.Owner, r.Delegate)
	if err != nil {
		return nil, fmt.Errorf("error reading allowance of %s: %w", r.Delegate, err)
	}
	return balanceResponse{value: b}, nil
}

// adjustAllowance raises or lowers an allowance. Ledger calls are
// authenticated as the owner of the allowance. Increases that do not fit in
// 128 bits are Arithmetic(Overflow); decreases floor at zero.
func adjustAllowance(strictOrigin bool) func(context.Context, Call, AdjustAllowanceRequest) (Response, error) {
	return func(ctx context.Context, c Call, r AdjustAllowanceRequest) (Response, error) {
		if strictOrigin && r.Owner != c.Caller && r.Owner != c.Contract {
			return errResponse{code: Code(CodeBadOrigin)}, nil
		}
		id := ledger.AssetID(r.AssetID)
		current, err := c.Ledger.Allowance(ctx, id, r.Owner, r.Delegate)
		if err != nil {
			return nil, fmt.Errorf("error reading allowance of %s: %w", r.Delegate, err)
		}

		var next ledger.Balance
		if r.IsIncrease {
			var ok bool
			if next, ok = current.CheckedAdd(r.Amount); !ok {
				return errResponse{code: ArithmeticCode(ArithmeticCodeOverflow)}, nil
			}
		} else {
			next = current.SaturatingSub(r.Amount)
		}

		if setter, ok := c.Ledger.(ledger.ApprovalSetter); ok {
			return mutation(setter.SetApproval(ctx, r.Owner, id, r.Delegate, next)), nil
		}

		cancelled := false
		if !current.IsZero() {
			if err := c.Ledger.CancelApproval(ctx, r.Owner, id, r.Delegate); err != nil {
				return errResponse{code: TranslateError(err)}, nil
			}
			cancelled = true
		}
		if next.IsZero() {
			return noResponse{}, nil
		}
		if err := c.Ledger.ApproveTransfer(ctx, r.Owner, id, r.Delegate, next); err != nil {
			code := TranslateError(err)
			if cancelled {
				code = PartialAllowanceUpdate(code)
			}
			return errResponse{code: code}, nil
		}
		return noResponse{}, nil
	}
}
