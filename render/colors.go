package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBoard      = tcell.NewRGBColor(31, 35, 53)    // Slightly lifted play field
	RgbBorder     = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray
	RgbTitle      = tcell.NewRGBColor(122, 162, 247) // Blue
	RgbHUD        = tcell.NewRGBColor(192, 202, 245) // Light foreground
	RgbHUDDim     = tcell.NewRGBColor(120, 124, 153) // Dimmed hints
	RgbFood       = tcell.NewRGBColor(247, 118, 142) // Red
	RgbOverlay    = tcell.NewRGBColor(224, 175, 104) // Orange
	RgbGameOver   = tcell.NewRGBColor(255, 80, 80)   // Bright red
	RgbCleared    = tcell.NewRGBColor(50, 255, 50)   // Bright green
)

// Snake body gradient, head to tail
var (
	SnakeHead = RGB{158, 206, 106}
	SnakeTail = RGB{40, 90, 40}
)

// SnakeSegmentColor shades segment i of a snake with n segments
func SnakeSegmentColor(i, n int) tcell.Color {
	if n <= 1 {
		return SnakeHead.Tcell()
	}
	return Lerp(SnakeHead, SnakeTail, float64(i)/float64(n-1)).Tcell()
}
