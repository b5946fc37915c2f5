package logging

// Config contains the configurable items for the logging package.
type Config struct {
	Environment string `long:"environment" description:"the runtime environment, one of 'dev' or 'prod'"`
	Level       Level  `long:"level" description:"the minimum level a log entry must have to be emitted"`
}

// NewDefaultConfig returns the package's default configuration.
func NewDefaultConfig() Config {
	return Config{
		Environment: "dev",
		Level:       InfoLevel,
	}
}
