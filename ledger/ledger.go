// Package ledger defines the fungible asset ledger the chain extension talks to.
//
// Every mutating call is authenticated by its origin and is atomic: it either
// applies completely or returns an error and leaves the state unchanged.
// Business failures are reported as *DispatchError, anything else is an
// infrastructure failure.
package ledger

import "context"

// Ledger is the set of asset operations exposed to contracts
type Ledger interface {
	// Create registers a new asset class owned by origin and administered by admin
	Create(ctx context.Context, origin AccountID, id AssetID, admin AccountID, minBalance Balance) error
	// Mint credits amount to beneficiary. origin must be the issuer
	Mint(ctx context.Context, origin AccountID, id AssetID, beneficiary AccountID, amount Balance) error
	// Burn debits up to amount from who. origin must be the admin
	Burn(ctx context.Context, origin AccountID, id AssetID, who AccountID, amount Balance) error
	// Transfer moves amount from origin to target
	Transfer(ctx context.Context, origin AccountID, id AssetID, target AccountID, amount Balance) error
	// Balance returns the balance of who, zero if unknown
	Balance(ctx context.Context, id AssetID, who AccountID) (Balance, error)
	// TotalSupply returns the supply of the asset, zero if unknown
	TotalSupply(ctx context.Context, id AssetID) (Balance, error)
	// ApproveTransfer adds amount to the allowance origin grants to delegate
	ApproveTransfer(ctx context.Context, origin AccountID, id AssetID, delegate AccountID, amount Balance) error
	// CancelApproval removes the allowance origin granted to delegate
	CancelApproval(ctx context.Context, origin AccountID, id AssetID, delegate AccountID) error
	// TransferApproved moves amount from owner to destination spending the allowance of origin
	TransferApproved(ctx context.Context, origin AccountID, id AssetID, owner, destination AccountID,
		amount Balance) error
	// Allowance returns what owner allows delegate to spend, zero if none
	Allowance(ctx context.Context, id AssetID, owner, delegate AccountID) (Balance, error)
	// SetMetadata sets name, symbol and decimals. origin must be the owner
	SetMetadata(ctx context.Context, origin AccountID, id AssetID, name, symbol []byte, decimals uint8) error
}

// ApprovalSetter is implemented by ledgers able to replace an allowance in a single atomic call
type ApprovalSetter interface {
	// SetApproval sets the allowance origin grants to delegate to amount, removing it when zero
	SetApproval(ctx context.Context, origin AccountID, id AssetID, delegate AccountID, amount Balance) error
}

// UnitOfWork is implemented by ledgers able to group several calls. Calls
// made with the context handed to fn apply only if fn returns nil.
type UnitOfWork interface {
	UnitOfWork(ctx context.Context, fn func(ctx context.Context) error) error
}
