package cmd

import (
	"log/slog"

	"github.com/lure23/pingen/internal/pinconfig"
)

// Check validates a pin configuration without writing anything. With --board
// it additionally resolves that board, so a build can fail fast before the
// expensive compile step.
type Check struct {
	PinsFile string `arg:"" name:"pins-file" help:"Pin configuration document (TOML or YAML)." type:"existingfile" env:"PINGEN_PINS"`
	Board    string `help:"Also resolve this board identifier." short:"b" env:"PINGEN_BOARD"`
}

func (c *Check) Run(logger *slog.Logger) error {
	doc, err := pinconfig.Load(c.PinsFile)
	if err != nil {
		return err
	}

	for _, id := range doc.BoardIDs() {
		board := doc.Boards[id]
		for pin, fields := range board.AliasedPins() {
			logger.Warn("Pin number assigned to multiple fields", "board", id, "pin", int(pin), "fields", fields)
		}
	}

	if c.Board != "" {
		board, err := doc.Resolve(c.Board)
		if err != nil {
			return err
		}
		logger.Info("Board resolves", "board", c.Board, "pins", board.String())
	}

	logger.Info("Pin configuration is valid", "pins", c.PinsFile, "boards", len(doc.Boards), "output", doc.Generate)
	return nil
}
