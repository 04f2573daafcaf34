package terminal

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gravity-shift/engine"
)

// drawText writes text from (x, y) honoring wide runes, stopping before maxX; returns the next column
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes text centered within cols
func drawCentered(s tcell.Screen, y, cols int, style tcell.Style, text string) {
	w := runewidth.StringWidth(text)
	x := max((cols-w)/2, 0)
	drawText(s, x, y, cols, style, text)
}

// clearRow fills a row with blanks in style
func clearRow(s tcell.Screen, y, cols int, style tcell.Style) {
	for x := 0; x < cols; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// hudStyles is the set of styles derived from the palette once per app
type hudStyles struct {
	base   tcell.Style
	label  tcell.Style
	value  tcell.Style
	accent tcell.Style
	alert  tcell.Style
}

func (a *App) drawHUD(st *engine.State) {
	cols, _ := a.screen.Size()
	clearRow(a.screen, 0, cols, a.styles.base)

	score, coins := 0, 0
	if st != nil {
		score, coins = st.Score, st.CoinsCollected
		if st.Over {
			score = st.FinalScore
		}
	}

	x := 1
	x = drawText(a.screen, x, 0, cols, a.styles.label, "SCORE ")
	x = drawText(a.screen, x, 0, cols, a.styles.value, strconv.Itoa(score))
	x = drawText(a.screen, x, 0, cols, a.styles.label, "   COINS ")
	x = drawText(a.screen, x, 0, cols, a.styles.accent, "● "+strconv.Itoa(coins))
	x = drawText(a.screen, x, 0, cols, a.styles.label, "   BEST ")
	drawText(a.screen, x, 0, cols, a.styles.value, strconv.Itoa(a.prefs.HighScore()))

	mode := a.sched.Phase().String()
	if a.mobile {
		mode += " · mobile"
	}
	w := runewidth.StringWidth(mode)
	drawText(a.screen, max(cols-w-1, 0), 0, cols, a.styles.label, mode)

	if a.debug {
		a.drawMetrics(cols)
	}
}

// drawMetrics lists registry readings down the right edge below the HUD
func (a *App) drawMetrics(cols int) {
	y := hudRows
	for _, m := range a.reg.Readings() {
		var line string
		if m.Int {
			line = fmt.Sprintf("%s %d", m.Key, int64(m.Value))
		} else {
			line = fmt.Sprintf("%s %.3f", m.Key, m.Value)
		}
		x := max(cols-runewidth.StringWidth(line)-1, 0)
		drawText(a.screen, x, y, cols, a.styles.base, line)
		y++
	}
}

// drawCard shows the idle or game over panel centered over the field
func (a *App) drawCard(st *engine.State) {
	var lines []string
	var styles []tcell.Style

	switch a.sched.Phase() {
	case engine.PhaseIdle:
		lines = []string{
			"G R A V I T Y   S H I F T",
			"",
			"Flip gravity to dodge spikes and blocks",
			"Space, Enter or click to start",
			"",
			fmt.Sprintf("High score %d", a.prefs.HighScore()),
			"m mobile   d metrics   q quit",
		}
		styles = []tcell.Style{a.styles.accent, a.styles.base, a.styles.value, a.styles.value, a.styles.base, a.styles.label, a.styles.label}

	case engine.PhaseOver:
		final, coins := 0, 0
		if st != nil {
			final, coins = st.FinalScore, st.CoinsCollected
		}
		best := fmt.Sprintf("High score %d", a.prefs.HighScore())
		if a.newBest {
			best = "★ New high score ★"
		}
		lines = []string{
			"G A M E   O V E R",
			"",
			fmt.Sprintf("Score %d   Coins %d", final, coins),
			best,
			"",
			"Space to play again",
		}
		styles = []tcell.Style{a.styles.alert, a.styles.base, a.styles.value, a.styles.accent, a.styles.base, a.styles.label}

	default:
		return
	}

	cols, rows := a.screen.Size()
	top := max((rows-len(lines))/2, hudRows)
	for i, line := range lines {
		if line == "" {
			continue
		}
		drawCentered(a.screen, top+i, cols, styles[i], line)
	}
}

// newHUDStyles derives HUD styles from the palette colors
func newHUDStyles(bg, fg, muted, accent, alert tcell.Color) hudStyles {
	base := tcell.StyleDefault.Background(bg).Foreground(fg)
	return hudStyles{
		base:   base,
		label:  base.Foreground(muted),
		value:  base.Bold(true),
		accent: base.Foreground(accent).Bold(true),
		alert:  base.Foreground(alert).Bold(true),
	}
}
