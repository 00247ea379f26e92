package chainext

// Config of the chain extension
type Config struct {
	// StrictAllowanceOrigin requires the owner of an allowance adjustment to be
	// the caller or the contract itself
	StrictAllowanceOrigin bool `mapstructure:"StrictAllowanceOrigin"`
	// EmitEvents enables the per dispatch events
	EmitEvents bool `mapstructure:"EmitEvents"`
}
