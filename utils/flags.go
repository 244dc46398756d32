package utils

import (
	"flag"
	"os"

	"github.com/pkg/errors"
)

// DefaultConfigPath is read when -config is not given. It may be absent.
const DefaultConfigPath = "config.json"

// Parse registers -config and every Config flag on fs, parses args, loads the
// JSON file named by -config and applies the flags given on the command line
// over the file values. Host-specific flags may be registered on fs first.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	configPath := fs.String("config", DefaultConfigPath, "path to a JSON config file")
	scratch := DefaultConfig()
	scratch.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return scratch, err
	}

	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	config, err := LoadConfig(*configPath)
	if err != nil && (explicit || !os.IsNotExist(errors.Cause(err))) {
		return config, err
	}

	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	config.Bind(overrides)
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if setErr != nil || overrides.Lookup(f.Name) == nil {
			return
		}
		setErr = overrides.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return config, errors.Wrap(setErr, "[Parse] failed to apply flag")
	}

	return config, config.Validate()
}
