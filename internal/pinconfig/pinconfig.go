// Package pinconfig loads and resolves declarative pin-mapping documents.
//
// A document names one output path and any number of boards, each board
// assigning GPIO numbers to the I2C lines and the optional power-enable and
// interrupt lines. Optional pins stay tagged present/absent all the way
// through; "pin 0" and "no pin" are never conflated.
package pinconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Pin is a numeric GPIO identifier on the target microcontroller.
type Pin int

// Board is one hardware revision's pin assignment.
type Board struct {
	SDA   Pin
	SCL   Pin
	PwrEn *Pin // nil when the board has no power-enable line
	Int   *Pin // nil when the board has no interrupt line
}

// Document is a fully validated pin configuration.
type Document struct {
	// Generate is the path the rendered fragment is written to.
	Generate string
	// Boards maps board identifier to its pin assignment. Identifiers are
	// unique by construction.
	Boards map[string]Board
}

// rawBoard mirrors the on-disk shape. Required fields are pointers too so a
// missing field is distinguishable from an explicit zero.
type rawBoard struct {
	SDA   *int `toml:"sda" yaml:"sda"`
	SCL   *int `toml:"scl" yaml:"scl"`
	PwrEn *int `toml:"pwr_en" yaml:"pwr_en"`
	Int   *int `toml:"int" yaml:"int"`
}

type rawDocument struct {
	Generate string              `toml:"generate" yaml:"generate"`
	Boards   map[string]rawBoard `toml:"boards" yaml:"boards"`
}

// Load reads and parses the pin configuration at path. The format is chosen
// by file extension: .yaml/.yml is YAML, everything else is TOML.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pin configuration: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Parse parses a TOML pin configuration.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Detail: "malformed TOML document", Err: err}
	}
	return validate(&raw)
}

// ParseYAML parses a YAML pin configuration with the same shape and rules as
// the TOML form.
func ParseYAML(data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Detail: "malformed YAML document", Err: err}
	}
	return validate(&raw)
}

func validate(raw *rawDocument) (*Document, error) {
	if raw.Generate == "" {
		return nil, &InvalidTargetError{}
	}

	doc := &Document{
		Generate: raw.Generate,
		Boards:   make(map[string]Board, len(raw.Boards)),
	}
	for id, rb := range raw.Boards {
		b, err := validateBoard(id, rb)
		if err != nil {
			return nil, err
		}
		doc.Boards[id] = b
	}
	return doc, nil
}

func validateBoard(id string, rb rawBoard) (Board, error) {
	required := func(name string, p *int) (Pin, error) {
		if p == nil {
			return 0, &ParseError{Detail: fmt.Sprintf("board %q: missing required field %q", id, name)}
		}
		if *p < 0 {
			return 0, &ParseError{Detail: fmt.Sprintf("board %q: field %q: pin number must not be negative (got %d)", id, name, *p)}
		}
		return Pin(*p), nil
	}
	optional := func(name string, p *int) (*Pin, error) {
		if p == nil {
			return nil, nil
		}
		if *p < 0 {
			return nil, &ParseError{Detail: fmt.Sprintf("board %q: field %q: pin number must not be negative (got %d)", id, name, *p)}
		}
		pin := Pin(*p)
		return &pin, nil
	}

	var (
		b   Board
		err error
	)
	if b.SDA, err = required("sda", rb.SDA); err != nil {
		return Board{}, err
	}
	if b.SCL, err = required("scl", rb.SCL); err != nil {
		return Board{}, err
	}
	if b.PwrEn, err = optional("pwr_en", rb.PwrEn); err != nil {
		return Board{}, err
	}
	if b.Int, err = optional("int", rb.Int); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Resolve returns the pin assignment for the given board identifier.
func (d *Document) Resolve(id string) (Board, error) {
	b, ok := d.Boards[id]
	if !ok {
		return Board{}, &BoardNotFoundError{ID: id, Known: d.BoardIDs()}
	}
	return b, nil
}

// BoardIDs returns the declared board identifiers, sorted.
func (d *Document) BoardIDs() []string {
	ids := make([]string, 0, len(d.Boards))
	for id := range d.Boards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AliasedPins reports pin numbers assigned to more than one field of the
// board, mapping each shared pin to the field names using it. Aliasing is not
// an error (the source format never forbade it) but tooling may warn on it.
func (b Board) AliasedPins() map[Pin][]string {
	byPin := map[Pin][]string{b.SDA: {"sda"}}
	byPin[b.SCL] = append(byPin[b.SCL], "scl")
	if b.PwrEn != nil {
		byPin[*b.PwrEn] = append(byPin[*b.PwrEn], "pwr_en")
	}
	if b.Int != nil {
		byPin[*b.Int] = append(byPin[*b.Int], "int")
	}
	for pin, fields := range byPin {
		if len(fields) < 2 {
			delete(byPin, pin)
		}
	}
	if len(byPin) == 0 {
		return nil
	}
	return byPin
}

// String renders the assignment in the compact single-line form used by the
// list command, e.g. "sda=4 scl=5 pwr_en=none int=7".
func (b Board) String() string {
	opt := func(p *Pin) string {
		if p == nil {
			return "none"
		}
		return fmt.Sprintf("%d", *p)
	}
	return fmt.Sprintf("sda=%d scl=%d pwr_en=%s int=%s", b.SDA, b.SCL, opt(b.PwrEn), opt(b.Int))
}
