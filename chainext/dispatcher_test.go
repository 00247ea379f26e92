package chainext_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/assetbridge/chainext/chainext"
	"github.com/assetbridge/chainext/chainext/mocks"
	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/ledger/assets"
	"github.com/assetbridge/chainext/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	accA = ledger.AccountID{0xa}
	accB = ledger.AccountID{0xb}
	accC = ledger.AccountID{0xc}
	accD = ledger.AccountID{0xd}
	// the contract driving the scenario
	contract = ledger.AccountID{0xff}
)

type testHarness struct {
	store      *assets.Store
	dispatcher *chainext.Dispatcher
}

func newHarness(t *testing.T, cfg chainext.Config, sink chainext.EventSink) *testHarness {
	t.Helper()
	logger := log.WithFields("module", "dispatcher-test")
	store, err := assets.New(logger, assets.Config{DBPath: filepath.Join(t.TempDir(), "assets.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return &testHarness{
		store:      store,
		dispatcher: chainext.NewDispatcher(logger, store, chainext.NewAssetRegistry(cfg), sink),
	}
}

// call dispatches req on behalf of caller and returns what was written
func (h *testHarness) call(t *testing.T, caller ledger.AccountID, id chainext.FuncID, req chainext.Request) []byte {
	t.Helper()
	env := mocks.NewEnvironment(t)
	var out []byte
	env.On("FuncID").Return(uint32(id))
	env.On("Input").Return(req.Encode(), nil)
	env.On("CallerAddress").Return(caller[:])
	env.On("ContractAddress").Return(contract[:])
	env.On("WriteOutput", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		out = args.Get(0).([]byte)
	}).Maybe()

	ret, err := h.dispatcher.Call(context.Background(), env)
	require.NoError(t, err)
	require.Equal(t, chainext.Converging, ret)
	return out
}

func (h *testHarness) query(t *testing.T, id chainext.FuncID, req chainext.Request) ledger.Balance {
	t.Helper()
	out := h.call(t, accA, id, req)
	require.Len(t, out, ledger.BalanceLength)
	b, err := ledger.BalanceFromBE(out)
	require.NoError(t, err)
	return b
}

func assetReq(amount uint64, target ledger.AccountID) chainext.AssetRequest {
	return chainext.AssetRequest{
		Origin:  chainext.CallerOrigin,
		AssetID: 5,
		Target:  target,
		Amount:  ledger.NewBalance(amount),
	}
}

func TestDispatchScenario(t *testing.T) {
	h := newHarness(t, chainext.Config{StrictAllowanceOrigin: true}, nil)

	require.Equal(t, []byte{0}, h.call(t, accA, chainext.FuncCreate, assetReq(10, accA)))
	require.Nil(t, h.call(t, accA, chainext.FuncMint, assetReq(100, accA)))
	require.Equal(t, ledger.NewBalance(100), h.query(t, chainext.FuncTotalSupply, chainext.TotalSupplyRequest{AssetID: 5}))
	require.Equal(t, ledger.NewBalance(100), h.query(t, chainext.FuncBalance, chainext.BalanceRequest{AssetID: 5, Who: accA}))

	require.Nil(t, h.call(t, accA, chainext.FuncTransfer, assetReq(40, accB)))
	require.Equal(t, ledger.NewBalance(60), h.query(t, chainext.FuncBalance, chainext.BalanceRequest{AssetID: 5, Who: accA}))
	require.Equal(t, ledger.NewBalance(40), h.query(t, chainext.FuncBalance, chainext.BalanceRequest{AssetID: 5, Who: accB}))

	require.Nil(t, h.call(t, accA, chainext.FuncApproveTransfer, assetReq(30, accD)))
	allowance := chainext.AllowanceRequest{AssetID: 5, Owner: accA, Delegate: accD}
	require.Equal(t, ledger.NewBalance(30), h.query(t, chainext.FuncAllowance, allowance))

	require.Nil(t, h.call(t, accD, chainext.FuncTransferApproved, chainext.TransferApprovedRequest{
		Owner:        accA,
		AssetRequest: assetReq(20, accC),
	}))
	require.Equal(t, ledger.NewBalance(20), h.query(t, chainext.FuncBalance, chainext.BalanceRequest{AssetID: 5, Who: accC}))
	require.Equal(t, ledger.NewBalance(10), h.query(t, chainext.FuncAllowance, allowance))

	// the store sets allowances in one step
	require.Nil(t, h.call(t, accA, chainext.FuncAdjustAllowance, chainext.AdjustAllowanceRequest{
		AssetID: 5, Owner: accA, Delegate: accD, Amount: ledger.NewBalance(15), IsIncrease: true,
	}))
	require.Equal(t, ledger.NewBalance(25), h.query(t, chainext.FuncAllowance, allowance))
	require.Nil(t, h.call(t, accA, chainext.FuncAdjustAllowance, chainext.AdjustAllowanceRequest{
		AssetID: 5, Owner: accA, Delegate: accD, Amount: ledger.NewBalance(100), IsIncrease: false,
	}))
	require.Equal(t, ledger.NewBalance(0), h.query(t, chainext.FuncAllowance, allowance))

	// rejected operations come back as Err envelopes
	require.Equal(t, []byte{0x01, 0x07, 0x00}, h.call(t, accB, chainext.FuncTransfer, assetReq(1000, accC)))
	require.Equal(t, []byte{0x01, 0x03}, h.call(t, accA, chainext.FuncCreate, assetReq(10, accA)))
	require.Equal(t, []byte{0x01, 0x03}, h.call(t, accB, chainext.FuncMint, assetReq(1, accB)))

	md := chainext.MetadataRequest{Origin: chainext.CallerOrigin, AssetID: 5, Decimals: 10}
	copy(md.Name[:], "Asset")
	copy(md.Symbol[:], "AST")
	require.Nil(t, h.call(t, accA, chainext.FuncSetMetadata, md))
	meta, err := h.store.Metadata(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, uint8(10), meta.Decimals)
	require.Equal(t, md.Name[:], meta.Name)
}

func TestDispatchUnknownOpcode(t *testing.T) {
	ctx := context.Background()
	sink := mocks.NewEventSink(t)
	h := newHarness(t, chainext.Config{}, sink)

	for _, id := range []uint32{9999, 1100, 1101} {
		env := mocks.NewEnvironment(t)
		env.On("FuncID").Return(id).Once()
		sink.On("Emit", ctx, mock.MatchedBy(func(e chainext.Event) bool {
			return e.Outcome == chainext.OutcomeAborted && e.Written == 0
		})).Once()

		_, err := h.dispatcher.Call(ctx, env)
		require.ErrorIs(t, err, chainext.ErrUnknownOpcode)
		env.AssertNotCalled(t, "WriteOutput", mock.Anything)
	}

	_, err := h.store.Asset(ctx, 5)
	require.Error(t, err)
}

func TestDispatchMalformedInput(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, chainext.Config{}, nil)
	full := assetReq(10, accA).Encode()

	for name, input := range map[string][]byte{
		"short":    full[:len(full)-1],
		"trailing": append(append([]byte(nil), full...), 0),
		"origin":   append([]byte{2}, full[1:]...),
	} {
		t.Run(name, func(t *testing.T) {
			env := mocks.NewEnvironment(t)
			env.On("FuncID").Return(uint32(chainext.FuncCreate)).Once()
			env.On("Input").Return(input, nil).Once()

			_, err := h.dispatcher.Call(ctx, env)
			require.ErrorIs(t, err, chainext.ErrMalformedRequest)
		})
	}

	env := mocks.NewEnvironment(t)
	env.On("FuncID").Return(uint32(chainext.FuncCreate)).Once()
	env.On("Input").Return(nil, errors.New("out of bounds")).Once()
	_, err := h.dispatcher.Call(ctx, env)
	require.ErrorIs(t, err, chainext.ErrMalformedRequest)

	_, err = h.store.Asset(ctx, 5)
	require.Error(t, err)
}

func TestDispatchBadAddress(t *testing.T) {
	h := newHarness(t, chainext.Config{}, nil)
	env := mocks.NewEnvironment(t)
	env.On("FuncID").Return(uint32(chainext.FuncBalance)).Once()
	env.On("Input").Return(chainext.BalanceRequest{AssetID: 5, Who: accA}.Encode(), nil).Once()
	env.On("CallerAddress").Return([]byte{1, 2, 3}).Once()

	_, err := h.dispatcher.Call(context.Background(), env)
	require.ErrorIs(t, err, chainext.ErrBadAddress)
}

func TestDispatchOutputWriteFailure(t *testing.T) {
	ctx := context.Background()
	sink := mocks.NewEventSink(t)
	h := newHarness(t, chainext.Config{}, sink)

	env := mocks.NewEnvironment(t)
	env.On("FuncID").Return(uint32(chainext.FuncTotalSupply)).Once()
	env.On("Input").Return(chainext.TotalSupplyRequest{AssetID: 5}.Encode(), nil).Once()
	env.On("CallerAddress").Return(accA[:]).Once()
	env.On("ContractAddress").Return(contract[:]).Once()
	env.On("WriteOutput", mock.Anything).Return(errors.New("buffer too small")).Once()
	sink.On("Emit", ctx, mock.MatchedBy(func(e chainext.Event) bool {
		return e.Outcome == chainext.OutcomeAborted && e.Operation == "total_supply"
	})).Once()

	_, err := h.dispatcher.Call(ctx, env)
	require.ErrorIs(t, err, chainext.ErrOutputWrite)
}

func TestDispatchOutputWriteFailureKeepsLedger(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, chainext.Config{}, nil)

	env := mocks.NewEnvironment(t)
	env.On("FuncID").Return(uint32(chainext.FuncCreate)).Once()
	env.On("Input").Return(assetReq(1, accA).Encode(), nil).Once()
	env.On("CallerAddress").Return(accA[:]).Once()
	env.On("ContractAddress").Return(contract[:]).Once()
	env.On("WriteOutput", []byte{0}).Return(errors.New("buffer too small")).Once()

	_, err := h.dispatcher.Call(ctx, env)
	require.ErrorIs(t, err, chainext.ErrOutputWrite)

	_, err = h.store.Asset(ctx, 5)
	require.ErrorIs(t, err, ledger.ErrUnknownAsset)

	// the same request goes through once the output fits
	require.Equal(t, []byte{0}, h.call(t, accA, chainext.FuncCreate, assetReq(1, accA)))
	require.Nil(t, h.call(t, accA, chainext.FuncMint, assetReq(100, accB)))

	env = mocks.NewEnvironment(t)
	env.On("FuncID").Return(uint32(chainext.FuncTransfer)).Once()
	env.On("Input").Return(assetReq(500, accC).Encode(), nil).Once()
	env.On("CallerAddress").Return(accB[:]).Once()
	env.On("ContractAddress").Return(contract[:]).Once()
	// Err(Token(NoFunds)) cannot be delivered either
	env.On("WriteOutput", []byte{1, 7, 0}).Return(errors.New("buffer too small")).Once()
	_, err = h.dispatcher.Call(ctx, env)
	require.ErrorIs(t, err, chainext.ErrOutputWrite)

	require.Equal(t, ledger.NewBalance(100), h.query(t, chainext.FuncBalance, chainext.BalanceRequest{AssetID: 5, Who: accB}))
	require.Equal(t, ledger.NewBalance(100), h.query(t, chainext.FuncTotalSupply, chainext.TotalSupplyRequest{AssetID: 5}))
}

func TestDispatchEvents(t *testing.T) {
	ctx := context.Background()
	sink := mocks.NewEventSink(t)
	h := newHarness(t, chainext.Config{}, sink)
	input := assetReq(10, accA).Encode()

	sink.On("Emit", ctx, mock.MatchedBy(func(e chainext.Event) bool {
		return e.Outcome == chainext.OutcomeSuccess && e.Written == 1 &&
			e.Digest == chainext.RequestDigest(input) && e.FuncID == chainext.FuncCreate
	})).Once()
	sink.On("Emit", ctx, mock.MatchedBy(func(e chainext.Event) bool {
		return e.Outcome == chainext.OutcomeRejected && e.Code != nil &&
			e.Code.Kind == chainext.CodeModule && e.Written == 2
	})).Once()

	h.call(t, accA, chainext.FuncCreate, assetReq(10, accA))
	h.call(t, accA, chainext.FuncCreate, assetReq(10, accA))
}
