package chainext

import (
	"github.com/assetbridge/chainext/ledger"
)

// Fixed request sizes in bytes
const (
	AssetRequestLength            = selectorLength + assetIDLength + ledger.AccountIDLength + ledger.BalanceLength
	TransferApprovedRequestLength = ledger.AccountIDLength + AssetRequestLength
	BalanceRequestLength          = assetIDLength + ledger.AccountIDLength
	TotalSupplyRequestLength      = assetIDLength
	AllowanceRequestLength        = assetIDLength + 2*ledger.AccountIDLength
	AdjustAllowanceRequestLength  = AllowanceRequestLength + ledger.BalanceLength + boolLength
	MetadataRequestLength         = selectorLength + assetIDLength + 2*MetadataFieldLength + decimalsLength
)

// Request is a decoded contract request. Encode returns the exact wire bytes.
type Request interface {
	Encode() []byte
}

// AssetRequest is shared by create, mint, burn, transfer and approve_transfer.
// For create, Target is the admin and Amount the minimum balance.
type AssetRequest struct {
	Origin  OriginSelector
	AssetID uint32
	Target  ledger.AccountID
	Amount  ledger.Balance
}

// DecodeAssetRequest decodes an AssetRequest
func DecodeAssetRequest(buf []byte) (AssetRequest, error) {
	d := newDecoder(buf, AssetRequestLength)
	r := decodeAssetFields(d)
	return r, d.done()
}

func decodeAssetFields(d *decoder) AssetRequest {
	return AssetRequest{
		Origin:  d.origin(),
		AssetID: d.u32(),
		Target:  d.account(),
		Amount:  d.balance(),
	}
}

// Encode implements Request
func (r AssetRequest) Encode() []byte {
	return r.encodeTo(newEncoder(AssetRequestLength)).bytes()
}

func (r AssetRequest) encodeTo(e *encoder) *encoder {
	return e.u8(uint8(r.Origin)).u32(r.AssetID).account(r.Target).balance(r.Amount)
}

// TransferApprovedRequest spends an allowance granted by Owner
type TransferApprovedRequest struct {
	Owner ledger.AccountID
	AssetRequest
}

// DecodeTransferApprovedRequest decodes a TransferApprovedRequest
func DecodeTransferApprovedRequest(buf []byte) (TransferApprovedRequest, error) {
	d := newDecoder(buf, TransferApprovedRequestLength)
	r := TransferApprovedRequest{Owner: d.account()}
	r.AssetRequest = decodeAssetFields(d)
	return r, d.done()
}

// Encode implements Request
func (r TransferApprovedRequest) Encode() []byte {
	e := newEncoder(TransferApprovedRequestLength).account(r.Owner)
	return r.AssetRequest.encodeTo(e).bytes()
}

// BalanceRequest queries the balance of Who
type BalanceRequest struct {
	AssetID uint32
	Who     ledger.AccountID
}

// DecodeBalanceRequest decodes a BalanceRequest
func DecodeBalanceRequest(buf []byte) (BalanceRequest, error) {
	d := newDecoder(buf, BalanceRequestLength)
	r := BalanceRequest{AssetID: d.u32(), Who: d.account()}
	return r, d.done()
}

// Encode implements Request
func (r BalanceRequest) Encode() []byte {
	return newEncoder(BalanceRequestLength).u32(r.AssetID).account(r.Who).bytes()
}

// TotalSupplyRequest queries the supply of an asset
type TotalSupplyRequest struct {
	AssetID uint32
}

// DecodeTotalSupplyRequest decodes a TotalSupplyRequest
func DecodeTotalSupplyRequest(buf []byte) (TotalSupplyRequest, error) {
	d := newDecoder(buf, TotalSupplyRequestLength)
	r := TotalSupplyRequest{AssetID: d.u32()}
	return r, d.done()
}

// Encode implements Request
func (r TotalSupplyRequest) Encode() []byte {
	return newEncoder(TotalSupplyRequestLength).u32(r.AssetID).bytes()
}

// AllowanceRequest queries what Owner allows Delegate to spend
type AllowanceRequest struct {
	AssetID  uint32
	Owner    ledger.AccountID
	Delegate ledger.AccountID
}

// DecodeAllowanceRequest decodes an AllowanceRequest
func DecodeAllowanceRequest(buf []byte) (AllowanceRequest, error) {
	d := newDecoder(buf, AllowanceRequestLength)
	r := AllowanceRequest{AssetID: d.u32(), Owner: d.account(), Delegate: d.account()}
	return r, d.done()
}

// Encode implements Request
func (r AllowanceRequest) Encode() []byte {
	return newEncoder(AllowanceRequestLength).u32(r.AssetID).account(r.Owner).account(r.Delegate).bytes()
}

// AdjustAllowanceRequest raises or lowers an allowance by Amount
type AdjustAllowanceRequest struct {
	AssetID    uint32
	Owner      ledger.AccountID
	Delegate   ledger.AccountID
	Amount     ledger.Balance
	IsIncrease bool
}

// DecodeAdjustAllowanceRequest decodes an AdjustAllowanceRequest
func DecodeAdjustAllowanceRequest(buf []byte) (AdjustAllowanceRequest, error) {
	d := newDecoder(buf, AdjustAllowanceRequestLength)
	r := AdjustAllowanceRequest{
		AssetID:    d.u32(),
		Owner:      d.account(),
		Delegate:   d.account(),
		Amount:     d.balance(),
		IsIncrease: d.boolean(),
	}
	return r, d.done()
}

// Encode implements Request
func (r AdjustAllowanceRequest) Encode() []byte {
	return newEncoder(AdjustAllowanceRequestLength).
		u32(r.AssetID).account(r.Owner).account(r.Delegate).balance(r.Amount).boolean(r.IsIncrease).
		bytes()
}

// MetadataRequest sets the metadata of an asset
type MetadataRequest struct {
	Origin   OriginSelector
	AssetID  uint32
	Name     [MetadataFieldLength]byte
	Symbol   [MetadataFieldLength]byte
	Decimals uint8
}

// DecodeMetadataRequest decodes a MetadataRequest
func DecodeMetadataRequest(buf []byte) (MetadataRequest, error) {
	d := newDecoder(buf, MetadataRequestLength)
	r := MetadataRequest{
		Origin:   d.origin(),
		AssetID:  d.u32(),
		Name:     d.fixed32(),
		Symbol:   d.fixed32(),
		Decimals: d.u8(),
	}
	return r, d.done()
}

// Encode implements Request
func (r MetadataRequest) Encode() []byte {
	return newEncoder(MetadataRequestLength).
		u8(uint8(r.Origin)).u32(r.AssetID).raw(r.Name[:]).raw(r.Symbol[:]).u8(r.Decimals).
		bytes()
}
