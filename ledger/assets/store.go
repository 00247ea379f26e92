// Package assets is a sqlite backed implementation of ledger.Ledger following
// the rules of a fungible asset pallet: asset classes with an owner, issuer,
// admin and freezer; an existential minimum balance; allowances and metadata.
package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/assetbridge/chainext/db"
	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/ledger/assets/migrations"
	"github.com/assetbridge/chainext/log"
	"github.com/russross/meddler"
)

const (
	// DefaultStringLimit is used when Config.StringLimit is zero
	DefaultStringLimit = 50
	// DefaultModuleIndex is used when Config.ModuleIndex is zero
	DefaultModuleIndex = 4
)

// Module error names
const (
	ErrNameInUse          = "InUse"
	ErrNameMinBalanceZero = "MinBalanceZero"
	ErrNameNoPermission   = "NoPermission"
	ErrNameNoAccount      = "NoAccount"
	ErrNameUnknown        = "Unknown"
	ErrNameUnapproved     = "Unapproved"
	ErrNameBadMetadata    = "BadMetadata"
)

var (
	_ ledger.Ledger         = (*Store)(nil)
	_ ledger.ApprovalSetter = (*Store)(nil)
	_ ledger.UnitOfWork     = (*Store)(nil)
)

// Store is the sqlite asset ledger. Every call runs in its own transaction,
// or in a savepoint of the enclosing unit of work.
type Store struct {
	logger      *log.Logger
	db          *sql.DB
	stringLimit int
	moduleIndex uint8
}

// New opens (and migrates) the ledger database at cfg.DBPath
func New(logger *log.Logger, cfg Config) (*Store, error) {
	database, err := db.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening asset ledger db %s: %w", cfg.DBPath, err)
	}
	if err := migrations.RunMigrations(logger, database); err != nil {
		database.Close()
		return nil, err
	}

	s := &Store{
		logger:      logger,
		db:          database,
		stringLimit: int(cfg.StringLimit),
		moduleIndex: cfg.ModuleIndex,
	}
	if s.stringLimit == 0 {
		s.stringLimit = DefaultStringLimit
	}
	if s.moduleIndex == 0 {
		s.moduleIndex = DefaultModuleIndex
	}
	return s, nil
}

// Close releases the database
func (s *Store) Close() error {
	return s.db.Close()
}

// UnitOfWork runs fn in one transaction. Every call made with the context
// handed to fn joins it, and nothing is visible to other callers unless fn
// returns nil.
func (s *Store) UnitOfWork(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		return fn(db.WithTx(ctx, tx))
	})
}

func (s *Store) moduleErr(name string) *ledger.DispatchError {
	return ledger.NewModuleError(s.moduleIndex, name)
}

// Create registers asset id. origin becomes the owner, admin the issuer, admin and freezer
func (s *Store) Create(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	admin ledger.AccountID, minBalance ledger.Balance) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		_, err := getAsset(tx, id)
		switch {
		case err == nil:
			return s.moduleErr(ErrNameInUse)
		case !errors.Is(err, ledger.ErrUnknownAsset):
			return err
		}
		if minBalance.IsZero() {
			return s.moduleErr(ErrNameMinBalanceZero)
		}
		asset := &Asset{
			AssetID:    id,
			Owner:      origin,
			Issuer:     admin,
			Admin:      admin,
			Freezer:    admin,
			MinBalance: minBalance,
		}
		if err := meddler.Insert(tx, "asset", asset); err != nil {
			if db.IsUniqueViolation(err) {
				return s.moduleErr(ErrNameInUse)
			}
			return fmt.Errorf("error inserting asset %d: %w", id, err)
		}
		tx.OnCommit(func() {
			s.logger.Debugf("created asset %d owner %s admin %s min balance %s", id, origin, admin, minBalance)
		})
		return nil
	})
}

// Mint credits amount to beneficiary
func (s *Store) Mint(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	beneficiary ledger.AccountID, amount ledger.Balance) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		if asset.Issuer != origin {
			return s.moduleErr(ErrNameNoPermission)
		}
		if amount.IsZero() {
			return nil
		}
		supply, ok := asset.Supply.CheckedAdd(amount)
		if !ok {
			return ledger.ErrOverflow
		}
		if err := s.credit(tx, asset, beneficiary, amount); err != nil {
			return err
		}
		asset.Supply = supply
		return updateAsset(tx, asset)
	})
}

// Burn debits min(amount, balance) from who. A remainder under the minimum balance is burnt too
func (s *Store) Burn(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	who ledger.AccountID, amount ledger.Balance) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		if asset.Admin != origin {
			return s.moduleErr(ErrNameNoPermission)
		}
		acc, err := getAccount(tx, id, who)
		if err != nil {
			return err
		}
		if acc == nil {
			return s.moduleErr(ErrNameNoAccount)
		}
		if asset.IsFrozen || acc.IsFrozen {
			return ledger.ErrFrozen
		}
		burnt := acc.Balance.Min(amount)
		rest := acc.Balance.SaturatingSub(burnt)
		if !rest.IsZero() && rest.Lt(asset.MinBalance) {
			burnt, rest = acc.Balance, ledger.Balance{}
		}
		if err := s.setAccountBalance(tx, asset, acc, rest); err != nil {
			return err
		}
		asset.Supply = asset.Supply.SaturatingSub(burnt)
		return updateAsset(tx, asset)
	})
}

// Transfer moves amount from origin to target
func (s *Store) Transfer(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	target ledger.AccountID, amount ledger.Balance) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		if err := s.move(tx, asset, origin, target, amount); err != nil {
			return err
		}
		return updateAsset(tx, asset)
	})
}

// Balance of who, zero when the account or the asset does not exist
func (s *Store) Balance(ctx context.Context, id ledger.AssetID, who ledger.AccountID) (ledger.Balance, error) {
	acc, err := getAccount(db.Querier(ctx, s.db), id, who)
	if err != nil || acc == nil {
		return ledger.Balance{}, err
	}
	return acc.Balance, nil
}

// TotalSupply of the asset, zero when it does not exist
func (s *Store) TotalSupply(ctx context.Context, id ledger.AssetID) (ledger.Balance, error) {
	asset, err := getAsset(db.Querier(ctx, s.db), id)
	if errors.Is(err, ledger.ErrUnknownAsset) {
		return ledger.Balance{}, nil
	}
	if err != nil {
		return ledger.Balance{}, err
	}
	return asset.Supply, nil
}

// ApproveTransfer adds amount to the allowance of delegate over origin's funds
func (s *Store) ApproveTransfer(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	delegate ledger.AccountID, amount ledger.Balance) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		if asset.IsFrozen {
			return ledger.ErrFrozen
		}
		current, err := getApproval(tx, id, origin, delegate)
		if err != nil {
			return err
		}
		if current == nil {
			current = &approval{AssetID: id, Owner: origin, Delegate: delegate}
			asset.Approvals++
		}
		sum, ok := current.Amount.CheckedAdd(amount)
		if !ok {
			sum = ledger.MaxBalance()
		}
		current.Amount = sum
		if err := saveApproval(tx, current); err != nil {
			return err
		}
		return updateAsset(tx, asset)
	})
}

// CancelApproval removes the allowance of delegate over origin's funds
func (s *Store) CancelApproval(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	delegate ledger.AccountID) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		current, err := getApproval(tx, id, origin, delegate)
		if err != nil {
			return err
		}
		if current == nil {
			return s.moduleErr(ErrNameUnknown)
		}
		if err := deleteApproval(tx, current); err != nil {
			return err
		}
		asset.Approvals--
		return updateAsset(tx, asset)
	})
}

// SetApproval replaces the allowance of delegate over origin's funds in one call
func (s *Store) SetApproval(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	delegate ledger.AccountID, amount ledger.Balance) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		if asset.IsFrozen {
			return ledger.ErrFrozen
		}
		current, err := getApproval(tx, id, origin, delegate)
		if err != nil {
			return err
		}
		switch {
		case current == nil && amount.IsZero():
			return nil
		case current == nil:
			current = &approval{AssetID: id, Owner: origin, Delegate: delegate}
			asset.Approvals++
		case amount.IsZero():
			if err := deleteApproval(tx, current); err != nil {
				return err
			}
			asset.Approvals--
			return updateAsset(tx, asset)
		}
		current.Amount = amount
		if err := saveApproval(tx, current); err != nil {
			return err
		}
		return updateAsset(tx, asset)
	})
}

// TransferApproved moves amount from owner to destination spending origin's allowance
func (s *Store) TransferApproved(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	owner, destination ledger.AccountID, amount ledger.Balance) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		current, err := getApproval(tx, id, owner, origin)
		if err != nil {
			return err
		}
		if current == nil {
			return s.moduleErr(ErrNameUnapproved)
		}
		remaining, ok := current.Amount.CheckedSub(amount)
		if !ok {
			return s.moduleErr(ErrNameUnapproved)
		}
		if err := s.move(tx, asset, owner, destination, amount); err != nil {
			return err
		}
		if remaining.IsZero() {
			if err := deleteApproval(tx, current); err != nil {
				return err
			}
			asset.Approvals--
		} else {
			current.Amount = remaining
			if err := saveApproval(tx, current); err != nil {
				return err
			}
		}
		return updateAsset(tx, asset)
	})
}

// Allowance of delegate over owner's funds, zero if none
func (s *Store) Allowance(ctx context.Context, id ledger.AssetID, owner, delegate ledger.AccountID) (ledger.Balance, error) {
	current, err := getApproval(db.Querier(ctx, s.db), id, owner, delegate)
	if err != nil || current == nil {
		return ledger.Balance{}, err
	}
	return current.Amount, nil
}

// SetMetadata sets the name, symbol and decimals of the asset. origin must be the owner
func (s *Store) SetMetadata(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	name, symbol []byte, decimals uint8) error {
	if len(name) > s.stringLimit || len(symbol) > s.stringLimit {
		return s.moduleErr(ErrNameBadMetadata)
	}
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		if asset.Owner != origin {
			return s.moduleErr(ErrNameNoPermission)
		}
		if asset.IsFrozen {
			return ledger.ErrFrozen
		}
		_, err = tx.Exec(`
			INSERT INTO metadata (asset_id, name, symbol, decimals) VALUES ($1, $2, $3, $4)
			ON CONFLICT(asset_id) DO UPDATE SET name = excluded.name, symbol = excluded.symbol,
			decimals = excluded.decimals;`, id, name, symbol, decimals)
		if err != nil {
			return fmt.Errorf("error saving metadata of asset %d: %w", id, err)
		}
		return nil
	})
}

// Metadata returns the metadata of the asset, db.ErrNotFound if it was never set
func (s *Store) Metadata(ctx context.Context, id ledger.AssetID) (ledger.Metadata, error) {
	var m metadata
	if err := meddler.QueryRow(db.Querier(ctx, s.db), &m, "SELECT * FROM metadata WHERE asset_id = $1;", id); err != nil {
		return ledger.Metadata{}, db.ReturnErrNotFound(err)
	}
	return ledger.Metadata{Name: m.Name, Symbol: m.Symbol, Decimals: m.Decimals}, nil
}

// Asset returns the stored details of the asset
func (s *Store) Asset(ctx context.Context, id ledger.AssetID) (Asset, error) {
	asset, err := getAsset(db.Querier(ctx, s.db), id)
	if err != nil {
		return Asset{}, err
	}
	return *asset, nil
}

// Freeze stops who from sending funds. origin must be the freezer
func (s *Store) Freeze(ctx context.Context, origin ledger.AccountID, id ledger.AssetID, who ledger.AccountID) error {
	return s.setAccountFrozen(ctx, origin, id, who, true)
}

// Thaw reverts Freeze
func (s *Store) Thaw(ctx context.Context, origin ledger.AccountID, id ledger.AssetID, who ledger.AccountID) error {
	return s.setAccountFrozen(ctx, origin, id, who, false)
}

// FreezeAsset stops every transfer of the asset. origin must be the freezer
func (s *Store) FreezeAsset(ctx context.Context, origin ledger.AccountID, id ledger.AssetID) error {
	return s.setAssetFrozen(ctx, origin, id, true)
}

// ThawAsset reverts FreezeAsset
func (s *Store) ThawAsset(ctx context.Context, origin ledger.AccountID, id ledger.AssetID) error {
	return s.setAssetFrozen(ctx, origin, id, false)
}

func (s *Store) setAccountFrozen(ctx context.Context, origin ledger.AccountID, id ledger.AssetID,
	who ledger.AccountID, frozen bool) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		if asset.Freezer != origin {
			return s.moduleErr(ErrNameNoPermission)
		}
		acc, err := getAccount(tx, id, who)
		if err != nil {
			return err
		}
		if acc == nil {
			return s.moduleErr(ErrNameNoAccount)
		}
		acc.IsFrozen = frozen
		return saveAccount(tx, acc)
	})
}

func (s *Store) setAssetFrozen(ctx context.Context, origin ledger.AccountID, id ledger.AssetID, frozen bool) error {
	return db.RunInTx(ctx, s.db, func(tx *db.Tx) error {
		asset, err := getAsset(tx, id)
		if err != nil {
			return err
		}
		if asset.Freezer != origin {
			return s.moduleErr(ErrNameNoPermission)
		}
		asset.IsFrozen = frozen
		return updateAsset(tx, asset)
	})
}

// move debits source and credits dest. When the source remainder would fall
// under the minimum balance the whole balance moves and the source is reaped.
func (s *Store) move(tx meddler.DB, asset *Asset, source, dest ledger.AccountID, amount ledger.Balance) error {
	if asset.IsFrozen {
		return ledger.ErrFrozen
	}
	if amount.IsZero() {
		return nil
	}
	src, err := getAccount(tx, asset.AssetID, source)
	if err != nil {
		return err
	}
	if src == nil {
		return ledger.ErrNoFunds
	}
	if src.IsFrozen {
		return ledger.ErrFrozen
	}
	rest, ok := src.Balance.CheckedSub(amount)
	if !ok {
		return ledger.ErrNoFunds.WithMessage("balance %s, requested %s", src.Balance, amount)
	}
	if source == dest {
		return nil
	}
	debit := amount
	if !rest.IsZero() && rest.Lt(asset.MinBalance) {
		debit, rest = src.Balance, ledger.Balance{}
	}
	if err := s.credit(tx, asset, dest, debit); err != nil {
		return err
	}
	return s.setAccountBalance(tx, asset, src, rest)
}

// credit adds amount to who, creating the account when needed
func (s *Store) credit(tx meddler.DB, asset *Asset, who ledger.AccountID, amount ledger.Balance) error {
	acc, err := getAccount(tx, asset.AssetID, who)
	if err != nil {
		return err
	}
	if acc == nil {
		if amount.Lt(asset.MinBalance) {
			return ledger.ErrBelowMinimum
		}
		acc = &account{AssetID: asset.AssetID, Who: who}
		asset.Accounts++
	}
	sum, ok := acc.Balance.CheckedAdd(amount)
	if !ok {
		return ledger.ErrOverflow
	}
	acc.Balance = sum
	return saveAccount(tx, acc)
}

// setAccountBalance stores the new balance of acc, reaping it at zero
func (s *Store) setAccountBalance(tx meddler.DB, asset *Asset, acc *account, balance ledger.Balance) error {
	if balance.IsZero() {
		if _, err := tx.Exec(`DELETE FROM account WHERE asset_id = $1 AND who = $2;`,
			acc.AssetID, acc.Who.String()); err != nil {
			return fmt.Errorf("error reaping account %s: %w", acc.Who, err)
		}
		asset.Accounts--
		return nil
	}
	acc.Balance = balance
	return saveAccount(tx, acc)
}

func getAsset(tx meddler.DB, id ledger.AssetID) (*Asset, error) {
	var asset Asset
	if err := meddler.QueryRow(tx, &asset, "SELECT * FROM asset WHERE asset_id = $1;", id); err != nil {
		if errors.Is(db.ReturnErrNotFound(err), db.ErrNotFound) {
			return nil, ledger.ErrUnknownAsset
		}
		return nil, fmt.Errorf("error reading asset %d: %w", id, err)
	}
	return &asset, nil
}

func updateAsset(tx meddler.DB, asset *Asset) error {
	_, err := tx.Exec(`
		UPDATE asset SET supply = $1, accounts = $2, approvals = $3, is_frozen = $4
		WHERE asset_id = $5;`,
		asset.Supply.String(), asset.Accounts, asset.Approvals, asset.IsFrozen, asset.AssetID)
	if err != nil {
		return fmt.Errorf("error updating asset %d: %w", asset.AssetID, err)
	}
	return nil
}

func getAccount(tx meddler.DB, id ledger.AssetID, who ledger.AccountID) (*account, error) {
	var acc account
	err := meddler.QueryRow(tx, &acc, "SELECT * FROM account WHERE asset_id = $1 AND who = $2;", id, who.String())
	if err != nil {
		if errors.Is(db.ReturnErrNotFound(err), db.ErrNotFound) {
			return nil, nil //nolint:nilnil
		}
		return nil, fmt.Errorf("error reading account %s of asset %d: %w", who, id, err)
	}
	return &acc, nil
}

func saveAccount(tx meddler.DB, acc *account) error {
	_, err := tx.Exec(`
		INSERT INTO account (asset_id, who, balance, is_frozen) VALUES ($1, $2, $3, $4)
		ON CONFLICT(asset_id, who) DO UPDATE SET balance = excluded.balance, is_frozen = excluded.is_frozen;`,
		acc.AssetID, acc.Who.String(), acc.Balance.String(), acc.IsFrozen)
	if err != nil {
		return fmt.Errorf("error saving account %s of asset %d: %w", acc.Who, acc.AssetID, err)
	}
	return nil
}

func getApproval(tx meddler.DB, id ledger.AssetID, owner, delegate ledger.AccountID) (*approval, error) {
	var a approval
	err := meddler.QueryRow(tx, &a,
		"SELECT * FROM approval WHERE asset_id = $1 AND owner = $2 AND delegate = $3;",
		id, owner.String(), delegate.String())
	if err != nil {
		if errors.Is(db.ReturnErrNotFound(err), db.ErrNotFound) {
			return nil, nil //nolint:nilnil
		}
		return nil, fmt.Errorf("error reading approval of asset %d: %w", id, err)
	}
	return &a, nil
}

func saveApproval(tx meddler.DB, a *approval) error {
	_, err := tx.Exec(`
		INSERT INTO approval (asset_id, owner, delegate, amount) VALUES ($1, $2, $3, $4)
		ON CONFLICT(asset_id, owner, delegate) DO UPDATE SET amount = excluded.amount;`,
		a.AssetID, a.Owner.String(), a.Delegate.String(), a.Amount.String())
	if err != nil {
		return fmt.Errorf("error saving approval of asset %d: %w", a.AssetID, err)
	}
	return nil
}

func deleteApproval(tx meddler.DB, a *approval) error {
	_, err := tx.Exec(`DELETE FROM approval WHERE asset_id = $1 AND owner = $2 AND delegate = $3;`,
		a.AssetID, a.Owner.String(), a.Delegate.String())
	if err != nil {
		return fmt.Errorf("error deleting approval of asset %d: %w", a.AssetID, err)
	}
	return nil
}
