package cmd

import (
	"log/slog"
	"os"

	"github.com/lure23/pingen/internal/codegen"
)

// Generate runs one full generation pass: load the pin configuration, resolve
// one board, render the fragment, write it to the configured output path.
type Generate struct {
	PinsFile string `arg:"" name:"pins-file" help:"Pin configuration document (TOML or YAML)." type:"existingfile" env:"PINGEN_PINS"`
	Board    string `help:"Board identifier to generate for." short:"b" required:"" env:"PINGEN_BOARD"`
	DryRun   bool   `help:"Render the fragment to stdout without writing the artifact."`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting generation pass", "pins", g.PinsFile, "board", g.Board)

	gen := codegen.New(logger)
	if g.DryRun {
		frag, target, err := gen.Render(g.PinsFile, g.Board)
		if err != nil {
			return err
		}
		logger.Debug("Dry run, skipping write", "target", target)
		_, err = os.Stdout.Write(frag)
		return err
	}

	_, err := gen.Generate(g.PinsFile, g.Board)
	return err
}
