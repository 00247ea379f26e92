package vmhost

import (
	"context"
	"testing"

	"github.com/assetbridge/chainext/chainext"
	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/ledger/mocks"
	"github.com/assetbridge/chainext/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	caller   = ledger.AccountID{0x01}
	contract = ledger.AccountID{0x02}
	holder   = ledger.AccountID{0x03}
)

// memoryOnly declares one page of memory and nothing else
var memoryOnly = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x05, 0x03, 0x01, 0x00, 0x01}

func newTestHost(t *testing.T) (*Host, *mocks.Ledger) {
	t.Helper()
	ctx := context.Background()
	logger := log.WithFields("module", "vmhost-test")
	l := mocks.NewLedger(t)
	d := chainext.NewDispatcher(logger, l, chainext.NewAssetRegistry(chainext.Config{StrictAllowanceOrigin: true}), nil)
	h, err := New(ctx, logger, Config{}, d)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, h.Close(ctx)) })
	return h, l
}

func TestInvokeQuery(t *testing.T) {
	ctx := context.Background()
	h, l := newTestHost(t)
	l.On("Balance", mock.Anything, ledger.AssetID(7), holder).Return(ledger.NewBalance(258), nil).Once()

	res, err := h.Invoke(ctx, Invocation{
		Caller:   caller,
		Contract: contract,
		FuncID:   uint32(chainext.FuncBalance),
		Input:    chainext.BalanceRequest{AssetID: 7, Who: holder}.Encode(),
	})
	require.NoError(t, err)
	require.Equal(t, chainext.Converging, res.Code)
	require.True(t, res.Written)
	expected := make([]byte, 16)
	expected[14], expected[15] = 1, 2
	require.Equal(t, expected, res.Output)
}

func TestInvokeMutations(t *testing.T) {
	ctx := context.Background()
	h, l := newTestHost(t)
	req := chainext.AssetRequest{Origin: chainext.ContractOrigin, AssetID: 7, Target: holder, Amount: ledger.NewBalance(5)}

	l.On("Create", mock.Anything, contract, ledger.AssetID(7), holder, ledger.NewBalance(5)).Return(nil).Once()
	res, err := h.Invoke(ctx, Invocation{
		Caller: caller, Contract: contract, FuncID: uint32(chainext.FuncCreate), Input: req.Encode(),
	})
	require.NoError(t, err)
	require.Equal(t, []byte{0}, res.Output)

	l.On("Mint", mock.Anything, contract, ledger.AssetID(7), holder, ledger.NewBalance(5)).Return(nil).Once()
	res, err = h.Invoke(ctx, Invocation{
		Caller: caller, Contract: contract, FuncID: uint32(chainext.FuncMint), Input: req.Encode(),
	})
	require.NoError(t, err)
	require.False(t, res.Written)
	require.Nil(t, res.Output)

	req.Origin = chainext.CallerOrigin
	l.On("Burn", mock.Anything, caller, ledger.AssetID(7), holder, ledger.NewBalance(5)).
		Return(ledger.ErrNoFunds).Once()
	res, err = h.Invoke(ctx, Invocation{
		Caller: caller, Contract: contract, FuncID: uint32(chainext.FuncBurn), Input: req.Encode(),
	})
	require.NoError(t, err)
	require.Equal(t, chainext.Converging, res.Code)
	require.Equal(t, []byte{1, 7, 0}, res.Output)
}

func TestInvokeAborts(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHost(t)

	_, err := h.Invoke(ctx, Invocation{Caller: caller, Contract: contract, FuncID: 9999})
	require.ErrorIs(t, err, chainext.ErrUnknownOpcode)

	_, err = h.Invoke(ctx, Invocation{
		Caller: caller, Contract: contract, FuncID: uint32(chainext.FuncTotalSupply), Input: []byte{1, 2},
	})
	require.ErrorIs(t, err, chainext.ErrMalformedRequest)

	_, err = h.Invoke(ctx, Invocation{
		Caller: caller, Contract: contract, FuncID: uint32(chainext.FuncBalance),
		Input: make([]byte, 70000),
	})
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestInvokeOutputTooSmall(t *testing.T) {
	ctx := context.Background()
	h, l := newTestHost(t)
	l.On("TotalSupply", mock.Anything, ledger.AssetID(7)).Return(ledger.NewBalance(1), nil).Once()

	_, err := h.Invoke(ctx, Invocation{
		Caller:         caller,
		Contract:       contract,
		FuncID:         uint32(chainext.FuncTotalSupply),
		Input:          chainext.TotalSupplyRequest{AssetID: 7}.Encode(),
		OutputCapacity: 8,
	})
	require.ErrorIs(t, err, chainext.ErrOutputWrite)
}

func TestCompile(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHost(t)

	compiled, err := h.Compile(ctx, ProxyContract)
	require.NoError(t, err)
	require.NoError(t, compiled.Close(ctx))

	_, err = h.Compile(ctx, memoryOnly)
	require.ErrorIs(t, err, ErrBadContract)

	_, err = h.Compile(ctx, []byte("not wasm"))
	require.ErrorIs(t, err, ErrBadContract)
}

func TestFrame(t *testing.T) {
	_, ok := FrameFrom(context.Background())
	require.False(t, ok)

	f := Frame{Caller: caller, Contract: contract}
	got, ok := FrameFrom(WithFrame(context.Background(), f))
	require.True(t, ok)
	require.Equal(t, f, got)
}
