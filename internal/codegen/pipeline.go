package codegen

import (
	"log/slog"

	"github.com/lure23/pingen/internal/pinconfig"
)

// Generator runs the load -> resolve -> emit -> write pipeline once, for one
// board. It is invoked as a single synchronous build step: the first failure
// aborts the pass and no partial artifact is left behind.
type Generator struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate runs the full pass for the board identified by boardID and returns
// the path the artifact was written to.
func (g *Generator) Generate(configPath, boardID string) (string, error) {
	frag, target, err := g.Render(configPath, boardID)
	if err != nil {
		return "", err
	}

	if err := WriteArtifact(target, frag); err != nil {
		return "", err
	}

	g.logger.Info("Wrote pin fragment", "board", boardID, "output", target, "bytes", len(frag))
	return target, nil
}

// Render runs the pipeline up to (but not including) the write, returning the
// rendered fragment and the target path. Used by Generate and by dry runs.
func (g *Generator) Render(configPath, boardID string) (frag []byte, target string, err error) {
	g.logger.Debug("Loading pin configuration", "path", configPath)
	doc, err := pinconfig.Load(configPath)
	if err != nil {
		return nil, "", err
	}
	g.logger.Debug("Loaded pin configuration", "boards", doc.BoardIDs(), "output", doc.Generate)

	board, err := doc.Resolve(boardID)
	if err != nil {
		return nil, "", err
	}
	g.logger.Debug("Resolved board", "board", boardID, "pins", board.String())

	frag, err = Emit(doc.Generate, boardID, board)
	if err != nil {
		return nil, "", err
	}
	return frag, doc.Generate, nil
}
