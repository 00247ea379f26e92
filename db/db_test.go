package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/assetbridge/chainext/db/types"
	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/log"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

const testMigration = `
-- +migrate Down
DROP TABLE IF EXISTS /*dbprefix*/holding;

-- +migrate Up
CREATE TABLE /*dbprefix*/holding (
	who    VARCHAR PRIMARY KEY,
	amount TEXT NOT NULL
);
`

type holding struct {
	Who    ledger.AccountID `meddler:"who,account"`
	Amount ledger.Balance   `meddler:"amount,balance"`
}

func newTestDB(t *testing.T) (string, []types.Migration) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.sqlite")
	migs := []types.Migration{{ID: "0001", SQL: testMigration, Prefix: "test_"}}
	require.NoError(t, RunMigrations(log.WithFields("module", "db-test"), path, migs))
	return path, migs
}

func TestMeddlersRoundTrip(t *testing.T) {
	path, _ := newTestDB(t)
	database, err := NewSQLiteDB(path)
	require.NoError(t, err)
	defer database.Close()

	amount, err := ledger.BalanceFromDecimal("340282366920938463463374607431768211455")
	require.NoError(t, err)
	in := holding{Who: ledger.AccountID{1, 2, 3}, Amount: amount}
	require.NoError(t, meddler.Insert(database, "test_holding", &in))

	var out holding
	require.NoError(t, meddler.QueryRow(database, &out, "SELECT * FROM test_holding WHERE who = $1;", in.Who.String()))
	require.Equal(t, in, out)

	err = meddler.Insert(database, "test_holding", &in)
	require.True(t, IsUniqueViolation(err))

	err = meddler.QueryRow(database, &out, "SELECT * FROM test_holding WHERE who = $1;", "0x00")
	require.ErrorIs(t, ReturnErrNotFound(err), ErrNotFound)
}

func TestRunInTxRollsBack(t *testing.T) {
	path, _ := newTestDB(t)
	database, err := NewSQLiteDB(path)
	require.NoError(t, err)
	defer database.Close()

	hookRan := false
	fooErr := errors.New("foo")
	err = RunInTx(context.Background(), database, func(tx *Tx) error {
		tx.OnCommit(func() { hookRan = true })
		if err := meddler.Insert(tx, "test_holding", &holding{Who: ledger.AccountID{9}}); err != nil {
			return err
		}
		return fooErr
	})
	require.ErrorIs(t, err, fooErr)
	require.False(t, hookRan)

	var count int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM test_holding;").Scan(&count))
	require.Zero(t, count)

	var order []int
	err = RunInTx(context.Background(), database, func(tx *Tx) error {
		tx.OnCommit(func() { order = append(order, 1) })
		tx.OnCommit(func() { order = append(order, 2) })
		return meddler.Insert(tx, "test_holding", &holding{Who: ledger.AccountID{9}})
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, order)
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM test_holding;").Scan(&count))
	require.Equal(t, 1, count)
}

func TestRunMigrationsRejectsMissingMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.sqlite")
	err := RunMigrations(log.WithFields("module", "db-test"), path,
		[]types.Migration{{ID: "0001", SQL: "CREATE TABLE x (a INTEGER);"}})
	require.Error(t, err)
}

func TestRunInTxJoinsOuterTx(t *testing.T) {
	ctx := context.Background()
	path, _ := newTestDB(t)
	database, err := NewSQLiteDB(path)
	require.NoError(t, err)
	defer database.Close()

	count := func(q meddler.DB) int {
		var n int
		require.NoError(t, q.QueryRow("SELECT COUNT(*) FROM test_holding;").Scan(&n))
		return n
	}
	insert := func(who byte) func(tx *Tx) error {
		return func(tx *Tx) error {
			return meddler.Insert(tx, "test_holding", &holding{Who: ledger.AccountID{who}})
		}
	}
	fooErr := errors.New("foo")

	var hooks []string
	err = RunInTx(ctx, database, func(outer *Tx) error {
		inner := WithTx(ctx, outer)
		require.NoError(t, RunInTx(inner, database, func(tx *Tx) error {
			require.Same(t, outer, tx)
			tx.OnCommit(func() { hooks = append(hooks, "kept") })
			return insert(1)(tx)
		}))
		err := RunInTx(inner, database, func(tx *Tx) error {
			tx.OnCommit(func() { hooks = append(hooks, "dropped") })
			require.NoError(t, insert(2)(tx))
			return fooErr
		})
		require.ErrorIs(t, err, fooErr)
		// reads under the joined context see the pending row only
		require.Equal(t, 1, count(Querier(inner, database)))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"kept"}, hooks)
	require.Equal(t, 1, count(database))

	err = RunInTx(ctx, database, func(outer *Tx) error {
		require.NoError(t, RunInTx(WithTx(ctx, outer), database, insert(3)))
		return fooErr
	})
	require.ErrorIs(t, err, fooErr)
	require.Equal(t, 1, count(database))

	_, ok := TxFrom(ctx)
	require.False(t, ok)
	require.Equal(t, database, Querier(ctx, database))
}
