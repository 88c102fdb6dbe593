package codegen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/lure23/pingen/internal/codegen"
	"github.com/lure23/pingen/internal/pinconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pin(n int) *pinconfig.Pin {
	p := pinconfig.Pin(n)
	return &p
}

func TestEmitMinimalBoard(t *testing.T) {
	board := pinconfig.Board{SDA: 4, SCL: 5}

	frag, err := codegen.Emit("pins_gen.rs", "devkit", board)
	require.NoError(t, err)
	out := string(frag)

	// header: machine-generated marker with the board id for traceability
	assert.Contains(t, out, `@generated by pingen (board "devkit")`)
	assert.Contains(t, out, "DO NOT EDIT")

	// pin literals carry through
	assert.Contains(t, out, "let sda = $io.pins.gpio4;")
	assert.Contains(t, out, "let scl = $io.pins.gpio5;")

	// absent optionals stay typed-absent, not pin 0
	assert.Contains(t, out, "let pwr_en: Option<Output> = None;")
	assert.Contains(t, out, "let int: Option<Input> = None;")
	assert.NotContains(t, out, "Some(")

	// the fragment defines the macro and yields the four-element tuple
	assert.Contains(t, out, "macro_rules! pins {")
	assert.Contains(t, out, "(sda, scl, pwr_en, int)")
}

func TestEmitOptionalPinsPresent(t *testing.T) {
	board := pinconfig.Board{SDA: 21, SCL: 22, PwrEn: pin(0), Int: pin(7)}

	frag, err := codegen.Emit("pins_gen.rs", "rev_b", board)
	require.NoError(t, err)
	out := string(frag)

	// pin 0 is present, not absent
	assert.Contains(t, out, "let pwr_en = Some(Output::new($io.pins.gpio0, Level::High));")
	assert.Contains(t, out, "let int = Some(Input::new($io.pins.gpio7, Pull::None));")
	assert.NotContains(t, out, "= None;")
}

func TestEmitDeterministic(t *testing.T) {
	board := pinconfig.Board{SDA: 4, SCL: 5, PwrEn: pin(6)}

	first, err := codegen.Emit("pins_gen.rs", "devkit", board)
	require.NoError(t, err)
	second, err := codegen.Emit("pins_gen.rs", "devkit", board)
	require.NoError(t, err)

	assert.Equal(t, first, second, "emission must be byte-identical for identical inputs")
}

func TestEmitEmptyTarget(t *testing.T) {
	frag, err := codegen.Emit("", "devkit", pinconfig.Board{SDA: 4, SCL: 5})
	require.Error(t, err)
	assert.Nil(t, frag)

	var terr *pinconfig.InvalidTargetError
	assert.True(t, errors.As(err, &terr), "expected *InvalidTargetError, got %T", err)
}

func TestEmitFragmentShape(t *testing.T) {
	frag, err := codegen.Emit("pins_gen.rs", "devkit", pinconfig.Board{SDA: 4, SCL: 5})
	require.NoError(t, err)

	lines := strings.Split(string(frag), "\n")
	require.Greater(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[0], "//"), "fragment must start with the generated-file comment")
	assert.Equal(t, "", lines[len(lines)-1], "fragment must end with a newline")
}
