package common

const (
	// LEDGER name to identify the asset ledger component
	LEDGER = "ledger"
	// CHAIN_EXTENSION name to identify the dispatcher component
	CHAIN_EXTENSION = "chain-extension" //nolint:stylecheck
	// VM name to identify the contract host component
	VM = "vm"
	// RPC name to identify the rpc component (implies vm)
	RPC = "rpc"
)
