package cmd_test

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/lure23/pingen/internal/cmd"
	"github.com/lure23/pingen/internal/pinconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pins_gen.rs")
	pins := filepath.Join(dir, "pins.toml")
	content := fmt.Sprintf("generate = %q\n\n[boards.devkit]\nsda = 4\nscl = 5\n", target)
	require.NoError(t, os.WriteFile(pins, []byte(content), 0o644))

	g := &cmd.Generate{PinsFile: pins, Board: "devkit"}
	require.NoError(t, g.Run(discardLogger()))

	out, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(out), `@generated by pingen (board "devkit")`)
}

func TestGenerateCommandDryRun(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pins_gen.rs")
	pins := filepath.Join(dir, "pins.toml")
	content := fmt.Sprintf("generate = %q\n\n[boards.devkit]\nsda = 4\nscl = 5\n", target)
	require.NoError(t, os.WriteFile(pins, []byte(content), 0o644))

	g := &cmd.Generate{PinsFile: pins, Board: "devkit", DryRun: true}

	// silence the fragment print while keeping the write observable
	old := os.Stdout
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	os.Stdout = devnull
	runErr := g.Run(discardLogger())
	os.Stdout = old
	_ = devnull.Close()

	require.NoError(t, runErr)
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "dry run must not write the artifact")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	pins := filepath.Join(dir, "pins.toml")
	content := "generate = \"pins_gen.rs\"\n\n[boards.devkit]\nsda = 4\nscl = 5\n"
	require.NoError(t, os.WriteFile(pins, []byte(content), 0o644))

	c := &cmd.Check{PinsFile: pins, Board: "devkit"}
	assert.NoError(t, c.Run(discardLogger()))

	c = &cmd.Check{PinsFile: pins, Board: "unknown"}
	err := c.Run(discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "devkit")
}

func TestConfigInitRoundTrip(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "pins."+format)
			ci := &cmd.ConfigInit{Format: format, Output: dest}
			require.NoError(t, ci.Run())

			// the scaffold must itself be a valid pin configuration
			doc, err := pinconfig.Load(dest)
			require.NoError(t, err)
			assert.NotEmpty(t, doc.Generate)

			b, err := doc.Resolve("devkit")
			require.NoError(t, err)
			assert.Equal(t, pinconfig.Pin(4), b.SDA)
			assert.Equal(t, pinconfig.Pin(5), b.SCL)
			require.NotNil(t, b.PwrEn)
			require.NotNil(t, b.Int)

			// refuses to clobber without --force
			err = ci.Run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--force")

			ci.Force = true
			assert.NoError(t, ci.Run())
		})
	}
}
