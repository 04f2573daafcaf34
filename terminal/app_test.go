package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravity-shift/engine"
	"github.com/lixenwraith/gravity-shift/parameter"
	"github.com/lixenwraith/gravity-shift/parameter/visual"
	"github.com/lixenwraith/gravity-shift/status"
)

// constRand returns the same value forever
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

type memPrefs struct {
	high    int
	mobile  bool
	records []int
}

func (p *memPrefs) HighScore() int { return p.high }

func (p *memPrefs) RecordScore(score int) (bool, error) {
	p.records = append(p.records, score)
	if score <= p.high {
		return false, nil
	}
	p.high = score
	return true, nil
}

func (p *memPrefs) Mobile() bool { return p.mobile }

func (p *memPrefs) SetMobile(on bool) error {
	p.mobile = on
	return nil
}

type harness struct {
	screen tcell.SimulationScreen
	src    *engine.ManualTickSource
	sched  *engine.Scheduler
	clock  *engine.ManualClock
	prefs  *memPrefs
	app    *App
}

func newHarness(t *testing.T, tuning parameter.Tuning, rng constRand) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)

	src := engine.NewManualTickSource()
	reg := status.NewRegistry()
	sched := engine.NewScheduler(engine.New(tuning, engine.WithRand(rng)), src, reg)
	sched.Start()
	t.Cleanup(sched.Stop)

	h := &harness{
		screen: screen,
		src:    src,
		sched:  sched,
		clock:  engine.NewManualClock(time.Unix(1000, 0)),
		prefs:  &memPrefs{high: 3},
	}
	h.app = NewApp(screen, sched, Options{
		Palette:       visual.DefaultPalette(),
		Prefs:         h.prefs,
		Registry:      reg,
		Clock:         h.clock,
		UnitsPerPixel: 10,
		Seed:          1,
	})
	return h
}

func (h *harness) tick(t *testing.T) engine.TickResult {
	t.Helper()
	h.src.Tick()
	select {
	case res := <-h.sched.Updates():
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
	}
	return engine.TickResult{}
}

func (h *harness) row(y int) string {
	cols, _ := h.screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := h.screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func (h *harness) screenText() string {
	_, rows := h.screen.Size()
	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.WriteString(h.row(y))
		b.WriteByte('\n')
	}
	return b.String()
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestAppIdleCardAndStart(t *testing.T) {
	h := newHarness(t, parameter.DefaultTuning(), constRand(0.9))

	h.app.Draw()
	if text := h.screenText(); !strings.Contains(text, "Space, Enter or click to start") {
		t.Errorf("idle card missing:\n%s", text)
	}

	if !h.app.HandleEvent(key(' ')) {
		t.Fatal("space should not quit")
	}
	if h.sched.Phase() != engine.PhasePlaying {
		t.Fatalf("expected playing, got %v", h.sched.Phase())
	}
	st := h.sched.State()
	if st.Width != 800 || st.Height != 480 {
		t.Errorf("expected 800x480 field, got %vx%v", st.Width, st.Height)
	}

	h.tick(t)
	h.app.Draw()
	if hud := h.row(0); !strings.Contains(hud, "SCORE") || !strings.Contains(hud, "BEST 3") {
		t.Errorf("unexpected HUD: %q", hud)
	}
	if r, _, _, _ := h.screen.GetContent(10, 20); r != halfBlock {
		t.Errorf("expected half-block field cell, got %q", r)
	}
}

func TestAppPressFlipsWhilePlaying(t *testing.T) {
	h := newHarness(t, parameter.DefaultTuning(), constRand(0.9))
	h.app.HandleEvent(key(' '))

	h.app.HandleEvent(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	if g := h.sched.State().Player.Gravity; g != -1 {
		t.Fatalf("expected flip on click, gravity %v", g)
	}

	// Held button is not a new press
	h.app.HandleEvent(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone))
	h.app.HandleEvent(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone))
	if h.sched.Phase() != engine.PhasePlaying {
		t.Errorf("expected still playing, got %v", h.sched.Phase())
	}
}

func TestAppGameOverRecordsAndShakes(t *testing.T) {
	tuning := parameter.DefaultTuning()
	tuning.MinGap, tuning.MaxGap = 0, 0
	h := newHarness(t, tuning, constRand(0.1))
	h.app.HandleEvent(key(' '))

	var res engine.TickResult
	for i := 0; i < 300 && !res.Ended; i++ {
		res = h.tick(t)
	}
	if !res.Ended {
		t.Fatal("expected game over")
	}

	h.app.Update()
	if len(h.prefs.records) != 1 || h.prefs.records[0] != res.FinalScore {
		t.Errorf("expected one record of %d, got %v", res.FinalScore, h.prefs.records)
	}
	if !h.app.Shaking() {
		t.Error("expected shake after game over")
	}

	h.app.Update()
	if len(h.prefs.records) != 1 {
		t.Error("game over must be recorded once")
	}

	h.app.Draw()
	if text := h.screenText(); !strings.Contains(text, "G A M E   O V E R") {
		t.Errorf("game over card missing:\n%s", text)
	}

	h.clock.Advance(parameter.ShakeDuration)
	if h.app.Shaking() {
		t.Error("shake should stop after its duration")
	}

	h.app.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if h.sched.Phase() != engine.PhasePlaying {
		t.Errorf("expected restart, got %v", h.sched.Phase())
	}
	if st := h.sched.State(); st.Over || st.Tick != 0 {
		t.Errorf("expected fresh session, got over=%v tick=%d", st.Over, st.Tick)
	}
}

func TestAppResizeDebounce(t *testing.T) {
	h := newHarness(t, parameter.DefaultTuning(), constRand(0.9))
	h.app.HandleEvent(key(' '))

	h.screen.SetSize(100, 30)
	h.app.HandleEvent(tcell.NewEventResize(100, 30))
	h.clock.Advance(parameter.ResizeDebounce / 2)
	h.app.Update()
	if w := h.sched.State().Width; w != 800 {
		t.Errorf("resize applied before debounce, width %v", w)
	}

	h.clock.Advance(parameter.ResizeDebounce / 2)
	h.app.Update()
	st := h.sched.State()
	if st.Width != 1000 || st.Height != 580 {
		t.Errorf("expected 1000x580 after debounce, got %vx%v", st.Width, st.Height)
	}
}

func TestAppToggles(t *testing.T) {
	h := newHarness(t, parameter.DefaultTuning(), constRand(0.9))

	h.app.HandleEvent(key('m'))
	if !h.prefs.mobile {
		t.Error("mobile preference not saved")
	}
	if l := h.app.Layout(); l.Rows != 20 || l.Height != 400 {
		t.Errorf("expected letterboxed layout, got %+v", l)
	}

	h.app.HandleEvent(key('d'))
	h.app.Draw()
	if text := h.screenText(); !strings.Contains(text, "sim.resets") {
		t.Errorf("metrics overlay missing:\n%s", text)
	}

	if h.app.HandleEvent(key('q')) {
		t.Error("q should quit")
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Command
	}{
		{key(' '), CmdPress},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), CmdPress},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), CmdPress},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CmdQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), CmdQuit},
		{key('q'), CmdQuit},
		{key('m'), CmdToggleMobile},
		{key('d'), CmdToggleDebug},
		{key('x'), CmdNone},
	}
	for _, tt := range tests {
		if got := Translate(tt.ev); got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.ev.Name(), tt.want, got)
		}
	}
}
