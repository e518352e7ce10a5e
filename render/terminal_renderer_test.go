package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func screenText(screen tcell.Screen) string {
	_, h := screen.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = rowText(screen, y)
	}
	return strings.Join(rows, "\n")
}

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		TileCount: 20,
		Snake:     []engine.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
		Food:      engine.Point{X: 3, Y: 4},
		HasFood:   true,
		Velocity:  engine.DirRight,
		Score:     20,
		HighScore: 50,
		Speed:     7.4,
		Phase:     engine.PhaseRunning,
	}
}

// TestRenderBoard verifies snake, food and border placement
func TestRenderBoard(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(screen)
	snap := testSnapshot()

	r.RenderFrame(Frame{State: snap, Elapsed: 75 * time.Second})

	l := ComputeLayout(80, 30, 20)
	if !l.Fits {
		t.Fatal("Expected 20x20 board to fit 80x30")
	}

	if ch, _, _, _ := screen.GetContent(l.BoardX, l.BoardY); ch != '┌' {
		t.Errorf("Expected top-left corner, got %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(l.BoardX+l.BoardW-1, l.BoardY+l.BoardH-1); ch != '┘' {
		t.Errorf("Expected bottom-right corner, got %q", ch)
	}

	for _, seg := range snap.Snake {
		x, y := l.CellOrigin(seg)
		for dx := 0; dx < constants.CellWidth; dx++ {
			if ch, _, _, _ := screen.GetContent(x+dx, y); ch != constants.GlyphSnake {
				t.Errorf("Expected snake glyph at %v col %d, got %q", seg, dx, ch)
			}
		}
	}

	fx, fy := l.CellOrigin(snap.Food)
	if ch, _, _, _ := screen.GetContent(fx, fy); ch != constants.GlyphFood {
		t.Errorf("Expected food glyph at %v, got %q", snap.Food, ch)
	}

	hud := rowText(screen, l.HUDY)
	for _, want := range []string{"Score: 20", "High: 50", "Length: 3", "Speed: 7.4", "Time: 01:15"} {
		if !strings.Contains(hud, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, hud)
		}
	}
	if !strings.Contains(rowText(screen, l.TitleY), constants.TextTitle) {
		t.Error("Expected title row")
	}
}

// TestRenderSnakeGradient verifies the head is drawn brighter than the tail
func TestRenderSnakeGradient(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(screen)
	snap := testSnapshot()
	r.RenderFrame(Frame{State: snap})

	l := ComputeLayout(80, 30, 20)
	hx, hy := l.CellOrigin(snap.Snake[0])
	tx, ty := l.CellOrigin(snap.Snake[2])
	_, _, headStyle, _ := screen.GetContent(hx, hy)
	_, _, tailStyle, _ := screen.GetContent(tx, ty)

	headFg, _, _ := headStyle.Decompose()
	tailFg, _, _ := tailStyle.Decompose()
	_, hg, _ := headFg.RGB()
	_, tg, _ := tailFg.RGB()
	if hg <= tg {
		t.Errorf("Expected head green %d above tail green %d", hg, tg)
	}
}

// TestRenderOverlays verifies the phase messages
func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name    string
		phase   engine.Phase
		cleared bool
		want    []string
		absent  []string
	}{
		{"idle", engine.PhaseIdle, false, []string{constants.TextIdle}, []string{constants.TextGameOver}},
		{"running", engine.PhaseRunning, false, nil, []string{constants.TextIdle, constants.TextPaused, constants.TextGameOver}},
		{"paused", engine.PhasePaused, false, []string{constants.TextPaused}, nil},
		{"over", engine.PhaseOver, false, []string{constants.TextGameOver, "Score: 20", constants.TextPlayAgain}, []string{constants.TextCleared}},
		{"cleared", engine.PhaseOver, true, []string{constants.TextCleared, constants.TextPlayAgain}, []string{constants.TextGameOver}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newSimScreen(t, 80, 30)
			r := NewTerminalRenderer(screen)
			snap := testSnapshot()
			snap.Phase = tt.phase
			snap.Cleared = tt.cleared

			r.RenderFrame(Frame{State: snap})
			text := screenText(screen)

			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("Expected %q on screen", want)
				}
			}
			for _, absent := range tt.absent {
				if strings.Contains(text, absent) {
					t.Errorf("Did not expect %q on screen", absent)
				}
			}
		})
	}
}

// TestRenderHeadPastWall verifies an out-of-bounds head is skipped
func TestRenderHeadPastWall(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	r := NewTerminalRenderer(screen)
	snap := testSnapshot()
	snap.Snake = []engine.Point{{X: 20, Y: 10}, {X: 19, Y: 10}}
	snap.Phase = engine.PhaseOver

	r.RenderFrame(Frame{State: snap})

	l := ComputeLayout(80, 30, 20)
	if ch, _, _, _ := screen.GetContent(l.BoardX+l.BoardW-1, l.BoardY+1+10); ch != '│' {
		t.Errorf("Expected border intact, got %q", ch)
	}
}

// TestRenderTooSmall verifies a warning instead of a clipped board
func TestRenderTooSmall(t *testing.T) {
	screen := newSimScreen(t, 30, 10)
	r := NewTerminalRenderer(screen)
	r.RenderFrame(Frame{State: testSnapshot()})

	if !strings.Contains(screenText(screen), constants.TextTooSmall) {
		t.Error("Expected too-small message")
	}
}

func TestRenderMutedHint(t *testing.T) {
	screen := newSimScreen(t, 100, 30)
	r := NewTerminalRenderer(screen)
	r.RenderFrame(Frame{State: testSnapshot(), Muted: true})

	if !strings.Contains(screenText(screen), "[muted]") {
		t.Error("Expected muted hint")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{61 * time.Second, "01:01"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v): expected %s, got %s", tt.d, tt.want, got)
		}
	}
}

func TestComputeLayoutCentered(t *testing.T) {
	l := ComputeLayout(100, 40, 10)
	if !l.Fits {
		t.Fatal("Expected fit")
	}
	if l.BoardW != 22 || l.BoardH != 12 {
		t.Errorf("Expected 22x12 board, got %dx%d", l.BoardW, l.BoardH)
	}
	if l.BoardX != (100-22)/2 {
		t.Errorf("Expected centered board x, got %d", l.BoardX)
	}
	if l.HUDY != l.BoardY+l.BoardH {
		t.Error("Expected HUD directly below board")
	}
}

func TestLerp(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	if Lerp(a, b, -1) != a || Lerp(a, b, 2) != b {
		t.Error("Expected clamped endpoints")
	}
	if got := Lerp(a, b, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected midpoint, got %+v", got)
	}
}
