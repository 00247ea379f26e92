package vmhost

import (
	"time"

	"github.com/assetbridge/chainext/config/types"
)

// Config is the configuration of the contract VM host
type Config struct {
	// ImportModule is the module name contracts import the extension from
	ImportModule string `mapstructure:"ImportModule"`
	// ImportName is the name of the imported extension function
	ImportName string `mapstructure:"ImportName"`
	// EntryPoint is the export invoked on a contract
	EntryPoint string `mapstructure:"EntryPoint"`
	// MemoryLimitPages caps the linear memory of a contract, 64KiB per page
	MemoryLimitPages uint32 `mapstructure:"MemoryLimitPages"`
	// OutputCapacity is the size of the output buffer offered to the extension
	// when the invocation does not set one
	OutputCapacity uint32 `mapstructure:"OutputCapacity"`
	// CallTimeout bounds the execution of a contract, the guest is closed
	// once it expires
	CallTimeout types.Duration `mapstructure:"CallTimeout"`
}

const (
	defaultImportModule   = "seal0"
	defaultImportName     = "call_chain_extension"
	defaultEntryPoint     = "call"
	defaultMemoryLimit    = 16
	defaultOutputCapacity = 256
	defaultCallTimeout    = time.Second
)

func (c Config) withDefaults() Config {
	if c.ImportModule == "" {
		c.ImportModule = defaultImportModule
	}
	if c.ImportName == "" {
		c.ImportName = defaultImportName
	}
	if c.EntryPoint == "" {
		c.EntryPoint = defaultEntryPoint
	}
	if c.MemoryLimitPages == 0 {
		c.MemoryLimitPages = defaultMemoryLimit
	}
	if c.OutputCapacity == 0 {
		c.OutputCapacity = defaultOutputCapacity
	}
	if c.CallTimeout.Duration <= 0 {
		c.CallTimeout = types.NewDuration(defaultCallTimeout)
	}
	return c
}
