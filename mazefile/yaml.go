package mazefile

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/maze"
)

// Document is the YAML form of a maze.
type Document struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Layout      []string `yaml:"layout"`
	// Legend maps single-rune glyphs to terrain names ("wall", "slow", ...)
	// and is applied on top of DefaultLegend.
	Legend map[string]string `yaml:"legend,omitempty"`
}

// ResolveLegend merges d.Legend over DefaultLegend.
func (d *Document) ResolveLegend() (Legend, error) {
	legend := DefaultLegend()
	for glyph, name := range d.Legend {
		if utf8.RuneCountInString(glyph) != 1 {
			return nil, fmt.Errorf("%w: legend key %q must be a single character", ErrUnknownGlyph, glyph)
		}
		t, err := maze.ParseTerrain(name)
		if err != nil {
			return nil, fmt.Errorf("mazefile: legend %q: %w", glyph, err)
		}
		r, _ := utf8.DecodeRuneInString(glyph)
		legend[r] = t
	}
	return legend, nil
}

// Grid parses d.Layout with the resolved legend.
func (d *Document) Grid() (*maze.Grid, error) {
	legend, err := d.ResolveLegend()
	if err != nil {
		return nil, err
	}
	return ParseLayout(d.Layout, legend)
}

// ReadYAML decodes one Document from r and builds its grid.
// Unknown keys are rejected.
func ReadYAML(r io.Reader) (*Document, *maze.Grid, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("mazefile: empty document: %w", maze.ErrEmptyGrid)
		}
		return nil, nil, fmt.Errorf("mazefile: decoding yaml: %w", err)
	}
	g, err := doc.Grid()
	if err != nil {
		return nil, nil, err
	}
	return &doc, g, nil
}

// WriteYAML encodes d with two-space indentation.
func WriteYAML(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("mazefile: encoding yaml: %w", err)
	}
	return enc.Close()
}

// NewDocument wraps g in a Document using DefaultLegend glyphs.
func NewDocument(name string, g *maze.Grid) (*Document, error) {
	layout, err := FormatLayout(g, nil)
	if err != nil {
		return nil, err
	}
	return &Document{Name: name, Layout: layout}, nil
}
