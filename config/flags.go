package config

import "github.com/jessevdk/go-flags"

// ParseFlags parses os.Args (via go-flags' default parser behavior)
// into a Config seeded with defaults, overriding whichever fields the
// caller passed on the command line. Unknown flags are ignored so a
// binary embedding Config alongside its own subcommand flags (cobra's,
// say) doesn't fail on flags it doesn't own.
func ParseFlags() (Config, error) {
	cfg := NewDefaultConfig()
	_, err := flags.NewParser(&cfg, flags.Default|flags.IgnoreUnknown).Parse()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
