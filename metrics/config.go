package metrics

// Config controls whether and where the book's Prometheus instruments
// are exposed. It carries no domain logic — NewInstrumentedBook and
// NewPrometheusRecorder are wired by the caller using these values.
type Config struct {
	Enabled bool   `long:"enabled" description:"expose a Prometheus metrics endpoint"`
	Port    int    `long:"port" description:"port the metrics endpoint listens on"`
	Path    string `long:"path" description:"HTTP path the metrics endpoint is served at"`
}

// NewDefaultConfig returns the package's default configuration: metrics
// off, port 2112, path /metrics.
func NewDefaultConfig() Config {
	return Config{
		Enabled: false,
		Port:    2112,
		Path:    "/metrics",
	}
}
