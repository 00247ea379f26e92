package chainext

import (
	"bytes"
	"testing"

	"github.com/assetbridge/chainext/ledger"
	"github.com/stretchr/testify/require"
)

func account(b byte) ledger.AccountID {
	var a ledger.AccountID
	for i := range a {
		a[i] = b
	}
	return a
}

func TestRequestLengths(t *testing.T) {
	require.Equal(t, 53, AssetRequestLength)
	require.Equal(t, 85, TransferApprovedRequestLength)
	require.Equal(t, 36, BalanceRequestLength)
	require.Equal(t, 4, TotalSupplyRequestLength)
	require.Equal(t, 68, AllowanceRequestLength)
	require.Equal(t, 85, AdjustAllowanceRequestLength)
	require.Equal(t, 70, MetadataRequestLength)
}

func TestAssetRequestLayout(t *testing.T) {
	r := AssetRequest{
		Origin:  ContractOrigin,
		AssetID: 0x01020304,
		Target:  account(0xaa),
		Amount:  ledger.NewBalance(0x0506),
	}
	raw := r.Encode()
	require.Len(t, raw, AssetRequestLength)
	require.Equal(t, byte(1), raw[0])
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, raw[1:5])
	require.Equal(t, bytes.Repeat([]byte{0xaa}, 32), raw[5:37])
	require.Equal(t, []byte{0x06, 0x05}, raw[37:39])
	require.Equal(t, make([]byte, 14), raw[39:])
}

func TestRequestRoundTrip(t *testing.T) {
	name := [MetadataFieldLength]byte{'T', 'o', 'k', 'e', 'n'}
	symbol := [MetadataFieldLength]byte{'T', 'K', 'N'}

	tcs := []struct {
		name   string
		req    Request
		decode func([]byte) (Request, error)
	}{
		{
			name: "asset",
			req:  AssetRequest{Origin: CallerOrigin, AssetID: 5, Target: account(1), Amount: ledger.MaxBalance()},
			decode: func(b []byte) (Request, error) {
				return DecodeAssetRequest(b)
			},
		},
		{
			name: "transfer approved",
			req: TransferApprovedRequest{
				Owner:        account(2),
				AssetRequest: AssetRequest{Origin: ContractOrigin, AssetID: 7, Target: account(3), Amount: ledger.NewBalance(20)},
			},
			decode: func(b []byte) (Request, error) {
				return DecodeTransferApprovedRequest(b)
			},
		},
		{
			name: "balance",
			req:  BalanceRequest{AssetID: 9, Who: account(4)},
			decode: func(b []byte) (Request, error) {
				return DecodeBalanceRequest(b)
			},
		},
		{
			name: "total supply",
			req:  TotalSupplyRequest{AssetID: 0xffffffff},
			decode: func(b []byte) (Request, error) {
				return DecodeTotalSupplyRequest(b)
			},
		},
		{
			name: "allowance",
			req:  AllowanceRequest{AssetID: 1, Owner: account(5), Delegate: account(6)},
			decode: func(b []byte) (Request, error) {
				return DecodeAllowanceRequest(b)
			},
		},
		{
			name: "adjust allowance",
			req: AdjustAllowanceRequest{
				AssetID: 1, Owner: account(5), Delegate: account(6), Amount: ledger.NewBalance(3), IsIncrease: true,
			},
			decode: func(b []byte) (Request, error) {
				return DecodeAdjustAllowanceRequest(b)
			},
		},
		{
			name: "metadata",
			req:  MetadataRequest{Origin: ContractOrigin, AssetID: 2, Name: name, Symbol: symbol, Decimals: 18},
			decode: func(b []byte) (Request, error) {
				return DecodeMetadataRequest(b)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			raw := tc.req.Encode()
			decoded, err := tc.decode(raw)
			require.NoError(t, err)
			require.Equal(t, tc.req, decoded)
			require.Equal(t, raw, decoded.Encode())

			_, err = tc.decode(raw[:len(raw)-1])
			require.ErrorIs(t, err, ErrMalformedRequest)

			_, err = tc.decode(append(raw, 0))
			require.ErrorIs(t, err, ErrMalformedRequest)

			_, err = tc.decode(nil)
			require.ErrorIs(t, err, ErrMalformedRequest)
		})
	}
}

func TestDecodeRejectsInvalidTags(t *testing.T) {
	raw := AssetRequest{Origin: CallerOrigin, AssetID: 1, Target: account(1)}.Encode()
	raw[0] = 2
	_, err := DecodeAssetRequest(raw)
	require.ErrorIs(t, err, ErrMalformedRequest)

	adjust := AdjustAllowanceRequest{AssetID: 1, Owner: account(1), Delegate: account(2)}.Encode()
	adjust[len(adjust)-1] = 7
	_, err = DecodeAdjustAllowanceRequest(adjust)
	require.ErrorIs(t, err, ErrMalformedRequest)
}

func TestDecodeAccount(t *testing.T) {
	a, err := DecodeAccount(bytes.Repeat([]byte{9}, 32))
	require.NoError(t, err)
	require.Equal(t, account(9), a)

	_, err = DecodeAccount(make([]byte, 20))
	require.ErrorIs(t, err, ErrBadAddress)
}

func TestResolveOrigin(t *testing.T) {
	caller, contract := account(1), account(2)
	require.Equal(t, caller, ResolveOrigin(CallerOrigin, caller, contract))
	require.Equal(t, contract, ResolveOrigin(ContractOrigin, caller, contract))
}
