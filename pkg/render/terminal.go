package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-howitzer/pkg/entity"
	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// Cell glyphs
const (
	groundRune     = '▒'
	surfaceRune    = '▀'
	targetRune     = 'X'
	howitzerRune   = 'H'
	projectileRune = '●'
	trailRune      = '·'
)

var (
	groundStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	targetStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	howitzerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// TerminalRenderer draws the board on a tcell screen. The board is scaled
// to fill the screen; world Y grows upward while screen rows grow downward.
type TerminalRenderer struct {
	screen tcell.Screen
	zoom   physics.Zoom
	boardW float64 // board width in pixels
	boardH float64
	cols   int
	rows   int
}

// NewTerminalRenderer creates a renderer for a board of boardWidth×boardHeight
// pixels at the given zoom.
func NewTerminalRenderer(screen tcell.Screen, zoom physics.Zoom, boardWidth, boardHeight int) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		zoom:   zoom,
		boardW: float64(max(boardWidth, 1)),
		boardH: float64(max(boardHeight, 1)),
	}
	r.cols, r.rows = screen.Size()
	return r
}

// worldToCell converts a world position in meters to a screen cell.
func (r *TerminalRenderer) worldToCell(pos physics.Vector2D) (int, int) {
	px := r.zoom.ToPixels(pos)
	col := int(math.Floor(px.X / r.boardW * float64(r.cols)))
	row := r.rows - 1 - int(math.Floor(px.Y/r.boardH*float64(r.rows)))
	return col, row
}

func (r *TerminalRenderer) inBounds(col, row int) bool {
	return col >= 0 && col < r.cols && row >= 0 && row < r.rows
}

func (r *TerminalRenderer) set(col, row int, ch rune, style tcell.Style) {
	if r.inBounds(col, row) {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// Clear implements entity.Renderer. It also picks up terminal resizes.
func (r *TerminalRenderer) Clear() {
	r.cols, r.rows = r.screen.Size()
	r.screen.Clear()
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderGround fills every column up to the highest surface point that
// falls in it and marks the target.
func (r *TerminalRenderer) RenderGround(ground *entity.Ground) {
	if r.cols == 0 || r.rows == 0 {
		return
	}
	surface := make([]int, r.cols)
	for i := range surface {
		surface[i] = r.rows
	}
	for px, elevation := range ground.Columns() {
		col, row := r.worldToCell(physics.Vector2D{X: r.zoom.Meters(float64(px)), Y: elevation})
		if col >= 0 && col < r.cols && row < surface[col] {
			surface[col] = row
		}
	}

	for col, top := range surface {
		r.set(col, top, surfaceRune, groundStyle)
		for row := top + 1; row < r.rows; row++ {
			r.set(col, row, groundRune, groundStyle)
		}
	}

	col, row := r.worldToCell(ground.Target())
	r.set(col, row-1, targetRune, targetStyle)
}

// RenderHowitzer draws the gun one row above the surface with its barrel
// pointing along the elevation.
func (r *TerminalRenderer) RenderHowitzer(howitzer *entity.Howitzer) {
	col, row := r.worldToCell(howitzer.Position())
	row--
	r.set(col, row, howitzerRune, howitzerStyle)

	e := howitzer.Elevation().Normalize()
	dc := int(math.Round(e.Dx()))
	dr := -int(math.Round(e.Dy()))
	r.set(col+dc, row+dr, barrelRune(e), howitzerStyle)
}

// barrelRune picks the glyph closest to the barrel direction.
func barrelRune(e physics.Angle) rune {
	deg := e.DisplayDegrees()
	switch {
	case math.Abs(deg) < 22.5:
		return '|'
	case deg >= 22.5 && deg < 67.5:
		return '/'
	case deg <= -22.5 && deg > -67.5:
		return '\\'
	case math.Abs(deg) <= 112.5:
		return '-'
	case deg > 0 && deg < 157.5:
		return '\\'
	case deg < 0 && deg > -157.5:
		return '/'
	default:
		return '|'
	}
}

// RenderProjectile draws the round at age 0 and fading trail dots behind it.
func (r *TerminalRenderer) RenderProjectile(position physics.Vector2D, age int) {
	col, row := r.worldToCell(position)
	if age == 0 {
		r.set(col, row, projectileRune, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
		return
	}
	level := int32(max(60, 230-age*17))
	r.set(col, row, trailRune, tcell.StyleDefault.Foreground(tcell.NewRGBColor(level, level, level)))
}

// RenderStatus writes the readout in the top left corner.
func (r *TerminalRenderer) RenderStatus(lines []string) {
	for row, line := range lines {
		col := 1
		for _, ch := range line {
			r.set(col, row, ch, statusStyle)
			col++
		}
	}
}
