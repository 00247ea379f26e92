package log

// Config for log
type Config struct {
	// Environment defining the log format ("production" or "development").
	// In development mode enables development mode (which makes DPanicLevel logs panic),
	// uses a console encoder, writes to standard error, and disables sampling.
	// Stacktraces are automatically included on logs of WarnLevel and above.
	// Check [here](https://pkg.go.dev/go.uber.org/zap@v1.24.0#NewDevelopmentConfig)
	Environment LogEnvironment `mapstructure:"Environment" jsonschema:"enum=production,enum=development"`
	// Level of log. As lower value more logs are going to be generated
	Level string `mapstructure:"Level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,enum=dpanic,enum=panic,enum=fatal"` //nolint:lll
	// Outputs. stdout and stderr are written as is, any other value is a file path
	// rotated according to Rotation
	Outputs []string `mapstructure:"Outputs"`
	// Rotation applies to file outputs only
	Rotation RotationConfig `mapstructure:"Rotation"`
}

// RotationConfig controls the rotation of file outputs
type RotationConfig struct {
	// MaxSizeMB is the size in megabytes a file reaches before it is rotated
	MaxSizeMB int `mapstructure:"MaxSizeMB"`
	// MaxBackups is the number of rotated files kept
	MaxBackups int `mapstructure:"MaxBackups"`
	// MaxAgeDays is the number of days a rotated file is kept
	MaxAgeDays int `mapstructure:"MaxAgeDays"`
	// Compress rotated files with gzip
	Compress bool `mapstructure:"Compress"`
}
