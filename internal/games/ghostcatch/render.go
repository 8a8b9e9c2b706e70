package ghostcatch

import (
	"fmt"

	"github.com/vovakirdan/ghost-catcher/internal/core"
	"github.com/vovakirdan/ghost-catcher/internal/games/ghostcatch/sim"
)

// lowTimeSecs is the remaining time at which the clock turns red.
const lowTimeSecs = 10

var kindStyle = map[sim.Kind]struct {
	glyph rune
	color core.Color
}{
	sim.KindGhost: {'ᗣ', core.ColorGhost},
	sim.KindBomb:  {'✹', core.ColorBomb},
	sim.KindNet:   {'❄', core.ColorNet},
}

// FormatClock renders whole seconds as MM:SS.
func FormatClock(secs int) string {
	secs = max(0, secs)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Render draws the HUD, the play area and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorWarning)
		return
	}

	state := g.State()
	g.drawHUD(dst, state)

	area := g.cells.Area
	border := core.NewRect(area.X-1, area.Y-1, area.W+2, area.H+2)
	borderColor := core.ColorDim
	if state.Frozen {
		borderColor = core.ColorFrost
	}
	dst.DrawBox(border, borderColor)

	if g.session != nil {
		for _, e := range g.session.Entities() {
			g.drawEntity(dst, e)
		}
	}

	if state.Frozen {
		for y := area.Y; y < area.Bottom(); y++ {
			for x := area.X; x < area.Right(); x++ {
				if dst.Get(x, y) == ' ' {
					dst.SetColored(x, y, '·', core.ColorFrost)
				} else {
					dst.Tint(x, y, core.ColorFrost)
				}
			}
		}
	}

	if !state.Running {
		g.drawOverlay(dst, state)
	}
}

func (g *Game) drawHUD(dst *core.Screen, state core.GameState) {
	dst.DrawTextColored(1, 0, g.Title(), core.ColorTitle)

	score := fmt.Sprintf("Score %02d", state.Score)
	dst.DrawTextColored(1, 1, score, core.ColorDefault)
	if state.HighScore > 0 {
		dst.DrawTextColored(len(score)+3, 1, fmt.Sprintf("Best %02d", state.HighScore), core.ColorHighlight)
	}

	clockColor := core.ColorDefault
	if state.Running && state.TimeLeft <= lowTimeSecs {
		clockColor = core.ColorWarning
	}
	clock := FormatClock(state.TimeLeft)
	if state.Frozen {
		clock = "❄ " + clock
		clockColor = core.ColorFrost
	}
	dst.DrawTextColored(dst.Width()-len([]rune(clock))-1, 1, clock, clockColor)
}

// drawEntity fills the cells covered by an entity with its glyph. Cells
// above the play area are clipped.
func (g *Game) drawEntity(dst *core.Screen, e sim.Entity) {
	if e.Resolved {
		return
	}
	style := kindStyle[e.Kind]
	r := g.cells.PixelRect(e.X, e.Y, e.Size)
	area := g.cells.Area
	cx, cy := r.Center()

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if !area.Contains(x, y) {
				continue
			}
			ch := '░'
			if x == cx && y == cy {
				ch = style.glyph
			}
			dst.SetColored(x, y, ch, style.color)
		}
	}
}

func (g *Game) drawOverlay(dst *core.Screen, state core.GameState) {
	title := g.Title()
	if state.GameOver {
		title = "Time's up!"
	}
	action := "Press Enter to start"
	if g.rounds > 0 {
		action = "Press Enter to play again"
	}

	lines := []string{title, ""}
	if state.GameOver {
		lines = append(lines, fmt.Sprintf("Score %02d", state.Score))
	}
	if state.HighScore > 0 {
		lines = append(lines, fmt.Sprintf("Best  %02d", state.HighScore))
	}
	lines = append(lines, "", action)

	w := 28
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorTitle)
	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorTitle
		}
		dst.DrawTextCentered(box.Y+1+i, line, color)
	}
}
