package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lure23/pingen/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate an example pin configuration"`
}

// ConfigInit scaffolds a pin configuration document to start a new board
// family from.
type ConfigInit struct {
	Format string `help:"Output format" enum:"toml,yaml" default:"toml"`
	Output string `help:"Destination file path (defaults to pins.<format> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	root := examplePinsDocument()

	dest := c.Output
	if dest == "" {
		dest = "pins." + format
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	var err error
	switch format {
	case "toml":
		data, err = toml.Marshal(root)
	case "yaml":
		data, err = yaml.Marshal(root)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "toml":
		return "toml"
	case "yaml", "yml":
		return "yaml"
	default:
		return ""
	}
}

// examplePinsDocument is the scaffold content: one board with the required
// I2C lines and both optional lines filled in.
func examplePinsDocument() map[string]any {
	return map[string]any{
		"generate": "pins_gen.rs",
		"boards": map[string]any{
			"devkit": map[string]any{
				"sda":    4,
				"scl":    5,
				"pwr_en": 6,
				"int":    7,
			},
		},
	}
}
