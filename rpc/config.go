package rpc

import (
	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
)

// Config of the RPC server and the assets service
type Config struct {
	jRPC.Config `mapstructure:",squash"`

	// EnableExtensionCall exposes assets_extensionCall. Its callers choose the
	// caller and contract accounts the call runs as, so it must only be enabled
	// where every client is trusted with every account.
	EnableExtensionCall bool `mapstructure:"EnableExtensionCall"`
}
