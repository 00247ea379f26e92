package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/russross/meddler"
)

// Tx is a ledger transaction. Hooks added with OnCommit run after a
// successful commit, in the order they were added.
type Tx struct {
	*sql.Tx
	onCommit []func()
	depth    int
}

// OnCommit defers fn until the transaction is durable. It is dropped on rollback.
func (t *Tx) OnCommit(fn func()) {
	t.onCommit = append(t.onCommit, fn)
}

type txKey struct{}

// WithTx returns a context under which RunInTx joins tx instead of opening
// a new transaction
func WithTx(ctx context.Context, tx *Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFrom returns the transaction attached to ctx
func TxFrom(ctx context.Context) (*Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*Tx)
	return tx, ok
}

// Querier returns the transaction attached to ctx, or db
func Querier(ctx context.Context, db *sql.DB) meddler.DB {
	if tx, ok := TxFrom(ctx); ok {
		return tx
	}
	return db
}

// RunInTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise; fn's error is returned untouched so
// callers can still match it.
// When ctx carries a transaction fn runs in a savepoint of it instead, and
// nothing is committed until the outer transaction is.
func RunInTx(ctx context.Context, db *sql.DB, fn func(tx *Tx) error) error {
	if outer, ok := TxFrom(ctx); ok {
		return outer.savepoint(ctx, fn)
	}
	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning tx: %w", err)
	}
	tx := &Tx{Tx: sqlTx}
	if err := fn(tx); err != nil {
		if errRllbck := sqlTx.Rollback(); errRllbck != nil {
			return fmt.Errorf("%w (rollback also failed: %v)", err, errRllbck) //nolint:errorlint
		}
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("error committing tx: %w", err)
	}
	for _, hook := range tx.onCommit {
		hook()
	}
	return nil
}

func (t *Tx) savepoint(ctx context.Context, fn func(tx *Tx) error) error {
	t.depth++
	defer func() { t.depth-- }()
	name := fmt.Sprintf("sp_%d", t.depth)
	hooks := len(t.onCommit)

	if _, err := t.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("error opening savepoint %s: %w", name, err)
	}
	if err := fn(t); err != nil {
		t.onCommit = t.onCommit[:hooks]
		if _, errRllbck := t.ExecContext(ctx, "ROLLBACK TO "+name); errRllbck != nil {
			return fmt.Errorf("%w (rollback to %s also failed: %v)", err, name, errRllbck) //nolint:errorlint
		}
		if _, errRel := t.ExecContext(ctx, "RELEASE "+name); errRel != nil {
			return fmt.Errorf("%w (release of %s also failed: %v)", err, name, errRel) //nolint:errorlint
		}
		return err
	}
	if _, err := t.ExecContext(ctx, "RELEASE "+name); err != nil {
		return fmt.Errorf("error releasing savepoint %s: %w", name, err)
	}
	return nil
}
