package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/assetbridge/chainext/ledger"
	"github.com/assetbridge/chainext/rpc/types"
)

// AssetsClientInterface is the client side of the assets service
type AssetsClientInterface interface {
	Balance(assetID uint32, who ledger.AccountID) (ledger.Balance, error)
	TotalSupply(assetID uint32) (ledger.Balance, error)
	Allowance(assetID uint32, owner, delegate ledger.AccountID) (ledger.Balance, error)
	Metadata(assetID uint32) (*types.AssetMetadata, error)
	ExtensionCall(call types.ExtensionCall) (*types.ExtensionResult, error)
}

var _ AssetsClientInterface = (*Client)(nil)

// Client talks to the assets service of a running node
type Client struct {
	url string
}

// NewClient returns a client for the node listening at url
func NewClient(url string) *Client {
	return &Client{url: url}
}

func call[T any](url, method string, params ...interface{}) (T, error) {
	var result T
	response, err := rpc.JSONRPCCall(url, method, params...)
	if err != nil {
		return result, err
	}
	if response.Error != nil {
		return result, fmt.Errorf("%s: %v %v", method, response.Error.Code, response.Error.Message)
	}
	if err := json.Unmarshal(response.Result, &result); err != nil {
		return result, fmt.Errorf("%s: decoding result: %w", method, err)
	}
	return result, nil
}

// Balance returns the balance of who in the asset
func (c *Client) Balance(assetID uint32, who ledger.AccountID) (ledger.Balance, error) {
	return call[ledger.Balance](c.url, "assets_balance", assetID, who)
}

// TotalSupply returns the amount of the asset in existence
func (c *Client) TotalSupply(assetID uint32) (ledger.Balance, error) {
	return call[ledger.Balance](c.url, "assets_totalSupply", assetID)
}

// Allowance returns how much delegate may transfer out of owner's balance
func (c *Client) Allowance(assetID uint32, owner, delegate ledger.AccountID) (ledger.Balance, error) {
	return call[ledger.Balance](c.url, "assets_allowance", assetID, owner, delegate)
}

func (c *Client) Metadata(assetID uint32) (*types.AssetMetadata, error) {
	m, err := call[types.AssetMetadata](c.url, "assets_metadata", assetID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ExtensionCall runs a chain extension call on the node
func (c *Client) ExtensionCall(ext types.ExtensionCall) (*types.ExtensionResult, error) {
	res, err := call[types.ExtensionResult](c.url, "assets_extensionCall", ext)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
