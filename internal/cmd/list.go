package cmd

import (
	"fmt"

	"github.com/lure23/pingen/internal/pinconfig"
)

// List prints the boards a pin configuration declares, one per line, sorted
// by identifier.
type List struct {
	PinsFile string `arg:"" name:"pins-file" help:"Pin configuration document (TOML or YAML)." type:"existingfile" env:"PINGEN_PINS"`
}

func (l *List) Run() error {
	doc, err := pinconfig.Load(l.PinsFile)
	if err != nil {
		return err
	}

	for _, id := range doc.BoardIDs() {
		fmt.Printf("%s: %s\n", id, doc.Boards[id])
	}
	return nil
}
