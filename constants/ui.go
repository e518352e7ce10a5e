package constants

// UI Layout
const (
	// CellWidth is the number of terminal columns per grid cell; two keeps cells roughly square
	CellWidth = 2

	// HUDRows is the number of rows reserved below the board
	HUDRows = 3

	// TitleRows is the number of rows reserved above the board
	TitleRows = 1
)

// Glyphs
const (
	GlyphSnake = '█'
	GlyphFood  = '●'
)

// Overlay text
const (
	TextTitle     = "vi-snake"
	TextIdle      = "Press Enter to start"
	TextPaused    = "PAUSED"
	TextGameOver  = "Game Over!"
	TextCleared   = "Board Cleared!"
	TextPlayAgain = "Press r to play again"
	TextControls  = "arrows/wasd move  space pause  enter start  r reset  q quit"
	TextTooSmall  = "terminal too small"
)
