package config

const (
	LogsFormatConsole = "console"
	LogsFormatJSON    = "json"
)

// LogsCfg configures diagnostics emitted by executables built on the generator.
// The generator itself never logs.
type LogsCfg struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is either "console" (human readable, colored) or "json".
	Format string `yaml:"format"`
}
