package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/mazefile"
	"github.com/katalvlaran/lvmaze/pathfinder"
)

// pathGlyph marks path cells other than Start and End.
const pathGlyph = '*'

var (
	colorWall   = lipgloss.Color("#5c6370")
	colorOpen   = lipgloss.Color("#abb2bf")
	colorSlow   = lipgloss.Color("#8BC34A")
	colorHazard = lipgloss.Color("#e53935")
	colorPath   = lipgloss.Color("#FFC107")
	colorEnd    = lipgloss.Color("#2196F3")
)

// renderer draws grids and labels, with or without terminal styling.
type renderer struct {
	color   bool
	legend  mazefile.Legend
	terrain map[maze.Terrain]lipgloss.Style
	path    lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
}

func newRenderer(color bool) *renderer {
	return &renderer{
		color:  color,
		legend: mazefile.DefaultLegend(),
		terrain: map[maze.Terrain]lipgloss.Style{
			maze.Wall:   lipgloss.NewStyle().Foreground(colorWall),
			maze.Open:   lipgloss.NewStyle().Foreground(colorOpen),
			maze.Slow:   lipgloss.NewStyle().Foreground(colorSlow),
			maze.Hazard: lipgloss.NewStyle().Foreground(colorHazard).Bold(true),
			maze.Start:  lipgloss.NewStyle().Foreground(colorEnd).Bold(true),
			maze.End:    lipgloss.NewStyle().Foreground(colorEnd).Bold(true),
		},
		path:  lipgloss.NewStyle().Foreground(colorPath).Bold(true),
		title: lipgloss.NewStyle().Bold(true).Underline(true),
		muted: lipgloss.NewStyle().Foreground(colorWall),
	}
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Title renders a section heading.
func (r *renderer) Title(text string) string {
	if !r.color {
		return "== " + text + " =="
	}
	return r.title.Render(text)
}

// Muted renders secondary text.
func (r *renderer) Muted(text string) string { return r.style(r.muted, text) }

// Grid draws g one row per line with p overlaid. p may be nil.
func (r *renderer) Grid(g *maze.Grid, p pathfinder.Path) string {
	onPath := make(map[maze.Coord]bool, len(p))
	for _, c := range p {
		onPath[c] = true
	}

	var sb strings.Builder
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			at := maze.Coord{Row: row, Col: col}
			t := g.At(at)
			if onPath[at] && t != maze.Start && t != maze.End {
				sb.WriteString(r.style(r.path, string(pathGlyph)))
				continue
			}
			glyph, ok := r.legend.Glyph(t)
			if !ok {
				glyph = '?'
			}
			sb.WriteString(r.style(r.terrain[t], string(glyph)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
