package assets

// Config is the configuration of the sqlite asset ledger
type Config struct {
	// DBPath is the path of the database
	DBPath string `mapstructure:"DBPath"`
	// StringLimit is the maximum length in bytes of an asset name or symbol
	StringLimit uint32 `mapstructure:"StringLimit"`
	// ModuleIndex is reported in Module errors raised by the ledger
	ModuleIndex uint8 `mapstructure:"ModuleIndex"`
}
