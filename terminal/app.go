package terminal

import (
	"image"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gravity-shift/engine"
	"github.com/lixenwraith/gravity-shift/parameter"
	"github.com/lixenwraith/gravity-shift/parameter/visual"
	"github.com/lixenwraith/gravity-shift/render"
	"github.com/lixenwraith/gravity-shift/status"
	"github.com/lixenwraith/gravity-shift/vmath"
)

// Prefs is the persisted host state the app reads and updates
type Prefs interface {
	HighScore() int
	RecordScore(score int) (bool, error)
	Mobile() bool
	SetMobile(on bool) error
}

// Options configures an App
type Options struct {
	Palette       visual.Palette
	Prefs         Prefs
	Registry      *status.Registry
	Clock         engine.Clock
	UnitsPerPixel float64
	Debug         bool
	Seed          uint64
}

// App is the terminal frontend: input, layout, HUD and frame presentation
// HandleEvent, Update and Draw must be called from one goroutine
type App struct {
	screen   tcell.Screen
	sched    *engine.Scheduler
	renderer *render.Renderer
	prefs    Prefs
	reg      *status.Registry
	clock    engine.Clock
	rng      *vmath.FastRand
	styles   hudStyles

	unitsPerPixel float64
	layout        Layout
	frame         *image.RGBA

	mobile bool
	debug  bool

	resizePending bool
	resizeAt      time.Time

	lastPhase  engine.Phase
	shakeUntil time.Time
	newBest    bool

	buttons tcell.ButtonMask
}

// NewApp lays out the field for the current screen size and pushes it to the scheduler
// The scheduler must already be running
func NewApp(screen tcell.Screen, sched *engine.Scheduler, opts Options) *App {
	if opts.Clock == nil {
		opts.Clock = engine.SystemClock{}
	}
	if opts.Registry == nil {
		opts.Registry = status.NewRegistry()
	}
	if !(opts.UnitsPerPixel > 0) {
		opts.UnitsPerPixel = parameter.TerminalUnitsPerPixel
	}

	p := opts.Palette
	a := &App{
		screen:        screen,
		sched:         sched,
		renderer:      render.NewRenderer(p, 1/opts.UnitsPerPixel),
		prefs:         opts.Prefs,
		reg:           opts.Registry,
		clock:         opts.Clock,
		rng:           vmath.NewFastRand(opts.Seed),
		unitsPerPixel: opts.UnitsPerPixel,
		mobile:        opts.Prefs.Mobile(),
		debug:         opts.Debug,
		lastPhase:     sched.Phase(),
		styles: newHUDStyles(
			paletteColor(p.Background),
			paletteColor(p.Foreground),
			paletteColor(p.Primary),
			paletteColor(p.Accent),
			paletteColor(p.Destructive),
		),
	}
	a.relayout()
	return a
}

// Layout returns the current field placement
func (a *App) Layout() Layout { return a.layout }

// HandleEvent applies one terminal event; returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.apply(Translate(ev))

	case *tcell.EventMouse:
		btn := ev.Buttons()
		pressed := btn&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = btn
		if pressed {
			return a.apply(CmdPress)
		}

	case *tcell.EventResize:
		a.resizePending = true
		a.resizeAt = a.clock.Now().Add(parameter.ResizeDebounce)
	}
	return true
}

func (a *App) apply(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return false

	case CmdPress:
		if a.sched.Phase() == engine.PhasePlaying {
			a.sched.Flip()
			return true
		}
		a.newBest = false
		a.shakeUntil = time.Time{}
		a.sched.Begin()
		a.lastPhase = a.sched.Phase()

	case CmdToggleMobile:
		a.mobile = !a.mobile
		if err := a.prefs.SetMobile(a.mobile); err != nil {
			log.Printf("save mobile preference: %v", err)
		}
		a.relayout()

	case CmdToggleDebug:
		a.debug = !a.debug
	}
	return true
}

// Update applies a settled resize and reacts to the session ending
func (a *App) Update() {
	now := a.clock.Now()

	if a.resizePending && !now.Before(a.resizeAt) {
		a.resizePending = false
		a.relayout()
	}

	phase := a.sched.Phase()
	if phase == engine.PhaseOver && a.lastPhase != engine.PhaseOver {
		a.shakeUntil = now.Add(parameter.ShakeDuration)
		if st := a.sched.State(); st != nil {
			changed, err := a.prefs.RecordScore(st.FinalScore)
			if err != nil {
				log.Printf("save high score: %v", err)
			}
			a.newBest = changed
		}
	}
	a.lastPhase = phase
}

// Shaking reports whether the game over shake is active
func (a *App) Shaking() bool {
	return a.clock.Now().Before(a.shakeUntil)
}

// Draw renders the latest snapshot, HUD and any phase card, then shows the screen
func (a *App) Draw() {
	a.screen.Fill(' ', a.styles.base)
	st := a.sched.State()

	if !a.layout.Empty() && st != nil {
		a.renderer.RenderAt(a.frame, *st, a.shakeOffset())
		present(a.screen, a.frame, a.layout)
	}

	a.drawHUD(st)
	a.drawCard(st)
	a.screen.Show()
}

// shakeOffset jitters the field by up to ShakeAmplitude pixels while shaking
func (a *App) shakeOffset() mgl64.Vec2 {
	if !a.Shaking() {
		return mgl64.Vec2{}
	}
	step := parameter.ShakeAmplitude * a.unitsPerPixel
	dx := float64(a.rng.Intn(3)-1) * step
	dy := float64(a.rng.Intn(3)-1) * step
	return mgl64.Vec2{dx, dy}
}

// relayout recomputes the field from the screen size and resizes the session
func (a *App) relayout() {
	cols, rows := a.screen.Size()
	a.layout = ComputeLayout(cols, rows, a.unitsPerPixel, a.mobile)
	if !a.layout.Empty() {
		a.frame = image.NewRGBA(image.Rect(0, 0, a.layout.Cols, 2*a.layout.Rows))
	}
	a.sched.Resize(a.layout.Width, a.layout.Height)
	a.screen.Sync()
}

// Run polls events and redraws at FrameInterval until a quit command
func (a *App) Run() {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.Update()
			a.Draw()
		}
	}
}
