package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/gravity-shift/config"
	"github.com/lixenwraith/gravity-shift/engine"
	"github.com/lixenwraith/gravity-shift/parameter"
	"github.com/lixenwraith/gravity-shift/render"
	"github.com/lixenwraith/gravity-shift/status"
	"github.com/lixenwraith/gravity-shift/store"
	"github.com/lixenwraith/gravity-shift/vmath"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	envFlag    = flag.String("env", "", "dotenv file with GRAVITY_SHIFT_* overrides")
	seedFlag   = flag.Uint64("seed", 0, "random seed, 0 for time based")
)

const (
	windowW = 800
	windowH = 400
)

// field is the letterboxed play area inside the window, in window units
type field struct {
	top           float64
	width, height float64
}

// fitField returns the whole window, or in mobile mode a centered 2:1 band capped at MobileMaxHeight
func fitField(w, h float64, mobile bool) field {
	if !mobile {
		return field{width: w, height: h}
	}
	fh := math.Min(math.Min(w/parameter.MobileAspect, parameter.MobileMaxHeight), h)
	return field{top: (h - fh) / 2, width: w, height: fh}
}

type game struct {
	sched    *engine.Scheduler
	ticks    *engine.ManualTickSource
	prefs    *store.Store
	palette  func(scale float64) *render.Renderer
	renderer *render.Renderer
	rng      *vmath.FastRand

	outW, outH int
	scale      float64
	field      field
	frame      *image.RGBA

	mobile        bool
	resizePending bool
	resizeAt      time.Time

	lastPhase  engine.Phase
	shakeUntil time.Time
	newBest    atomic.Bool
}

// recordScore runs on the scheduler goroutine when a session ends
func (g *game) recordScore(final int) {
	changed, err := g.prefs.RecordScore(final)
	if err != nil {
		log.Printf("save high score: %v", err)
	}
	g.newBest.Store(changed)
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mobile = !g.mobile
		if err := g.prefs.SetMobile(g.mobile); err != nil {
			log.Printf("save mobile preference: %v", err)
		}
		g.relayout()
	}
	if g.pressed() {
		if g.sched.Phase() == engine.PhasePlaying {
			g.sched.Flip()
		} else {
			g.newBest.Store(false)
			g.shakeUntil = time.Time{}
			g.sched.Begin()
			g.lastPhase = g.sched.Phase()
		}
	}

	now := time.Now()
	if g.resizePending && !now.Before(g.resizeAt) {
		g.resizePending = false
		g.relayout()
	}

	g.ticks.Tick()

	phase := g.sched.Phase()
	if phase == engine.PhaseOver && g.lastPhase != engine.PhaseOver {
		g.shakeUntil = now.Add(parameter.ShakeDuration)
	}
	g.lastPhase = phase
	return nil
}

// pressed reports a new key, click, or touch this frame
func (g *game) pressed() bool {
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (g *game) Draw(screen *ebiten.Image) {
	st := g.sched.State()
	if g.frame == nil || st == nil {
		return
	}

	offset := mgl64.Vec2{0, g.field.top}
	if time.Now().Before(g.shakeUntil) {
		offset = offset.Add(mgl64.Vec2{
			float64(g.rng.Intn(5) - 2),
			float64(g.rng.Intn(5) - 2),
		})
	}
	g.renderer.RenderAt(g.frame, *st, offset)
	screen.WritePixels(g.frame.Pix)

	score := st.Score
	if st.Over {
		score = st.FinalScore
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("SCORE %d   COINS %d   BEST %d", score, st.CoinsCollected, g.prefs.HighScore()), 8, 8)

	cx, cy := g.outW/2-90, g.outH/2-20
	switch g.sched.Phase() {
	case engine.PhaseIdle:
		ebitenutil.DebugPrintAt(screen, "GRAVITY SHIFT\n\nSpace, click or tap to start\nM mobile   Esc quit", cx, cy)
	case engine.PhaseOver:
		best := fmt.Sprintf("High score %d", g.prefs.HighScore())
		if g.newBest.Load() {
			best = "New high score!"
		}
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("GAME OVER\n\nScore %d   Coins %d\n%s\n\nSpace to play again", st.FinalScore, st.CoinsCollected, best), cx, cy)
	}
}

// Layout renders at device resolution; field units stay in window units
func (g *game) Layout(outsideW, outsideH int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	w, h := int(float64(outsideW)*scale), int(float64(outsideH)*scale)

	if w != g.outW || h != g.outH || scale != g.scale {
		first := g.frame == nil
		g.outW, g.outH, g.scale = w, h, scale
		g.frame = image.NewRGBA(image.Rect(0, 0, w, h))
		g.renderer = g.palette(scale)
		if first {
			g.relayout()
		} else {
			g.resizePending = true
			g.resizeAt = time.Now().Add(parameter.ResizeDebounce)
		}
	}
	return w, h
}

func (g *game) relayout() {
	if g.scale <= 0 {
		return
	}
	g.field = fitField(float64(g.outW)/g.scale, float64(g.outH)/g.scale, g.mobile)
	g.sched.Resize(g.field.width, g.field.height)
}

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		log.Printf("config: %v; using defaults", err)
	}
	palette, err := cfg.ResolvePalette()
	if err != nil {
		log.Printf("palette: %v", err)
	}

	storePath := cfg.Host.StorePath
	if storePath == "" {
		storePath = store.DefaultPath()
	}
	prefs, err := store.Open(storePath)
	if err != nil {
		log.Printf("preferences: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = cfg.Host.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &game{
		ticks:  engine.NewManualTickSource(),
		prefs:  prefs,
		mobile: prefs.Mobile(),
		rng:    vmath.NewFastRand(seed),
		palette: func(scale float64) *render.Renderer {
			return render.NewRenderer(palette, scale)
		},
	}

	// Frames drive ticks, so the simulation pauses with the window loop
	eng := engine.New(cfg.Tuning,
		engine.WithRand(vmath.NewFastRand(seed)),
		engine.WithReporter(engine.ReporterFuncs{OnGameOver: g.recordScore}),
	)
	g.sched = engine.NewScheduler(eng, g.ticks, status.NewRegistry())
	g.sched.Start()
	defer g.sched.Stop()

	windowScale := cfg.Host.WindowScale

	ebiten.SetWindowTitle("Gravity Shift")
	ebiten.SetWindowSize(int(windowW*windowScale), int(windowH*windowScale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Host.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("run: %v", err)
		os.Exit(1)
	}
}
