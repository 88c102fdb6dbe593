// Package codegen renders a resolved pin assignment into a Rust source
// fragment and writes it to the path the configuration names. The fragment
// defines a pins! macro that, given the HAL's Io handle, yields the tuple
// (SDA, SCL, PWR_EN, INT) with the optional lines as Option values.
package codegen

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/lure23/pingen/internal/pinconfig"
)

const fragmentTemplate = `// @generated by pingen (board "{{.BoardID}}") -- DO NOT EDIT.
//
// This file is machine-generated from the pin configuration; direct edits
// are lost on the next build. Change the configuration and rerun
// 'pingen generate' instead.

#[allow(unused_macros)]
macro_rules! pins {
    ($io:ident) => {{"{{"}}
        let sda = $io.pins.gpio{{.SDA}};
        let scl = $io.pins.gpio{{.SCL}};
        {{.PwrEnLine}}
        {{.IntLine}}
        (sda, scl, pwr_en, int)
    {{"}}"}};
}
`

type fragmentData struct {
	BoardID   string
	SDA       pinconfig.Pin
	SCL       pinconfig.Pin
	PwrEnLine string
	IntLine   string
}

var fragmentTmpl = template.Must(template.New("pins").Parse(fragmentTemplate))

// Emit renders the fragment for one board. target is the document's
// 'generate' path; emission refuses to produce output for an empty target.
// Emission is pure and deterministic: the same board and identifier always
// yield byte-identical output.
func Emit(target, boardID string, board pinconfig.Board) ([]byte, error) {
	if target == "" {
		return nil, &pinconfig.InvalidTargetError{}
	}

	data := fragmentData{
		BoardID:   boardID,
		SDA:       board.SDA,
		SCL:       board.SCL,
		PwrEnLine: `let pwr_en: Option<Output> = None;`,
		IntLine:   `let int: Option<Input> = None;`,
	}
	if board.PwrEn != nil {
		// Power-enable starts high: target powered, firmware may pulse it low
		// to reset the sensor.
		data.PwrEnLine = fmt.Sprintf(`let pwr_en = Some(Output::new($io.pins.gpio%d, Level::High));`, *board.PwrEn)
	}
	if board.Int != nil {
		data.IntLine = fmt.Sprintf(`let int = Some(Input::new($io.pins.gpio%d, Pull::None));`, *board.Int)
	}

	var buf bytes.Buffer
	if err := fragmentTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render pin fragment: %w", err)
	}
	return buf.Bytes(), nil
}
