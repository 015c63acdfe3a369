package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

// ShowConfig prints the configuration file in use followed by the merged configuration.
func ShowConfig(out io.Writer, file string, cfg *Config, colored bool) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		d := Defaults()
		cfg = &d
	}

	pp.ColoringEnabled = colored
	_, _ = pp.Fprintln(out, *cfg)
}
