package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// Frame is everything drawn in one pass
type Frame struct {
	State   engine.Snapshot
	Elapsed time.Duration
	Muted   bool
}

// Layout is the screen placement of the board for a given terminal size
type Layout struct {
	TitleY int
	BoardX int // Border top-left corner
	BoardY int
	BoardW int // Including border
	BoardH int
	HUDY   int
	Fits   bool
}

// ComputeLayout centers a tileCount board with title and HUD on a width x height screen
func ComputeLayout(width, height, tileCount int) Layout {
	l := Layout{
		BoardW: tileCount*constants.CellWidth + 2,
		BoardH: tileCount + 2,
	}
	totalH := constants.TitleRows + l.BoardH + constants.HUDRows
	l.Fits = width >= l.BoardW && height >= totalH
	if !l.Fits {
		return l
	}

	top := (height - totalH) / 2
	l.TitleY = top
	l.BoardX = (width - l.BoardW) / 2
	l.BoardY = top + constants.TitleRows
	l.HUDY = l.BoardY + l.BoardH
	return l
}

// CellOrigin returns the screen position of the first column of grid cell p
func (l Layout) CellOrigin(p engine.Point) (int, int) {
	return l.BoardX + 1 + p.X*constants.CellWidth, l.BoardY + 1 + p.Y
}

// TerminalRenderer draws game snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen

	bgStyle    tcell.Style
	boardStyle tcell.Style
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:     screen,
		bgStyle:    tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUD),
		boardStyle: tcell.StyleDefault.Background(RgbBoard),
	}
}

// RenderFrame renders the entire game frame and shows it
func (r *TerminalRenderer) RenderFrame(f Frame) {
	width, height := r.screen.Size()
	r.screen.Fill(' ', r.bgStyle)

	layout := ComputeLayout(width, height, f.State.TileCount)
	if !layout.Fits {
		r.drawCentered(width/2, height/2, constants.TextTooSmall, r.bgStyle.Foreground(RgbGameOver))
		r.screen.Show()
		return
	}

	center := layout.BoardX + layout.BoardW/2

	r.drawCentered(center, layout.TitleY, constants.TextTitle, r.bgStyle.Foreground(RgbTitle).Bold(true))
	r.drawBoard(layout)
	r.drawFood(layout, f.State)
	r.drawSnake(layout, f.State)
	r.drawHUD(layout, f)
	r.drawOverlay(layout, f.State)

	r.screen.Show()
}

// drawBoard draws the border box and fills the play field
func (r *TerminalRenderer) drawBoard(l Layout) {
	border := r.bgStyle.Foreground(RgbBorder)
	x0, y0 := l.BoardX, l.BoardY
	x1, y1 := l.BoardX+l.BoardW-1, l.BoardY+l.BoardH-1

	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, border)
		r.screen.SetContent(x, y1, '─', nil, border)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, border)
		r.screen.SetContent(x1, y, '│', nil, border)
		for x := x0 + 1; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.boardStyle)
		}
	}
	r.screen.SetContent(x0, y0, '┌', nil, border)
	r.screen.SetContent(x1, y0, '┐', nil, border)
	r.screen.SetContent(x0, y1, '└', nil, border)
	r.screen.SetContent(x1, y1, '┘', nil, border)
}

func (r *TerminalRenderer) drawFood(l Layout, s engine.Snapshot) {
	if !s.HasFood {
		return
	}
	x, y := l.CellOrigin(s.Food)
	r.screen.SetContent(x, y, constants.GlyphFood, nil, r.boardStyle.Foreground(RgbFood))
}

// drawSnake paints tail first so the head wins on overlap
func (r *TerminalRenderer) drawSnake(l Layout, s engine.Snapshot) {
	n := len(s.Snake)
	for i := n - 1; i >= 0; i-- {
		seg := s.Snake[i]
		if seg.X < 0 || seg.X >= s.TileCount || seg.Y < 0 || seg.Y >= s.TileCount {
			continue // head past the wall on the collision tick
		}
		style := r.boardStyle.Foreground(SnakeSegmentColor(i, n))
		x, y := l.CellOrigin(seg)
		for dx := 0; dx < constants.CellWidth; dx++ {
			r.screen.SetContent(x+dx, y, constants.GlyphSnake, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawHUD(l Layout, f Frame) {
	s := f.State
	center := l.BoardX + l.BoardW/2

	stats := fmt.Sprintf("Score: %d   High: %d   Length: %d   Speed: %.1f   Time: %s",
		s.Score, s.HighScore, len(s.Snake), s.Speed, FormatElapsed(f.Elapsed))
	r.drawCentered(center, l.HUDY, stats, r.bgStyle.Foreground(RgbHUD))

	hint := constants.TextControls
	if f.Muted {
		hint += "  [muted]"
	}
	r.drawCentered(center, l.HUDY+1, hint, r.bgStyle.Foreground(RgbHUDDim))
}

// drawOverlay prints the phase message in the middle of the board
func (r *TerminalRenderer) drawOverlay(l Layout, s engine.Snapshot) {
	var lines []string
	style := r.boardStyle.Foreground(RgbOverlay).Bold(true)

	switch s.Phase {
	case engine.PhaseIdle:
		lines = []string{constants.TextIdle}
	case engine.PhasePaused:
		lines = []string{constants.TextPaused}
	case engine.PhaseOver:
		headline := constants.TextGameOver
		style = r.boardStyle.Foreground(RgbGameOver).Bold(true)
		if s.Cleared {
			headline = constants.TextCleared
			style = r.boardStyle.Foreground(RgbCleared).Bold(true)
		}
		lines = []string{headline, fmt.Sprintf("Score: %d", s.Score), constants.TextPlayAgain}
	default:
		return
	}

	center := l.BoardX + l.BoardW/2
	top := l.BoardY + (l.BoardH-len(lines))/2
	for i, line := range lines {
		r.drawCentered(center, top+i, line, style)
	}
}

// drawCentered writes s so that it is centered on column cx
func (r *TerminalRenderer) drawCentered(cx, y int, s string, style tcell.Style) {
	r.drawText(cx-runewidth.StringWidth(s)/2, y, s, style)
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// FormatElapsed renders play time as mm:ss, or h:mm:ss past an hour
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
