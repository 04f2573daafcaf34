package engine

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/gravity-shift/status"
)

type commandKind uint8

const (
	cmdFlip commandKind = iota
	cmdBegin
	cmdResize
)

type command struct {
	kind          commandKind
	width, height float64
	reply         chan bool
}

// Scheduler drives an Engine from a TickSource on a single goroutine
// Host commands travel through a channel and run between ticks, so a reset never overlaps a tick
type Scheduler struct {
	engine *Engine
	source TickSource

	width, height float64 // owned by loop
	phase         atomic.Int32
	snapshot      atomic.Pointer[State]

	commands chan command
	updates  chan TickResult

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statTicks     *atomic.Int64
	statResets    *atomic.Int64
	statPickups   *atomic.Int64
	statParticles *atomic.Int64
	statSpeed     *status.AtomicFloat
	statPeakSpeed *status.AtomicFloat
}

// NewScheduler wraps engine; the engine must not be touched directly once Start is called
func NewScheduler(engine *Engine, source TickSource, reg *status.Registry) *Scheduler {
	s := &Scheduler{
		engine:        engine,
		source:        source,
		commands:      make(chan command),
		updates:       make(chan TickResult, 1),
		stopChan:      make(chan struct{}),
		statTicks:     reg.Ints.Get("sim.ticks"),
		statResets:    reg.Ints.Get("sim.resets"),
		statPickups:   reg.Ints.Get("sim.pickups"),
		statParticles: reg.Ints.Get("sim.particles"),
		statSpeed:     reg.Floats.Get("sim.speed"),
		statPeakSpeed: reg.Floats.Get("sim.peak_speed"),
	}
	s.publish()
	return s
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts the loop and the tick source
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		s.source.Stop()
		if s.running.Load() {
			s.wg.Wait()
		}
	})
}

// Phase returns the current lifecycle phase
func (s *Scheduler) Phase() Phase {
	return Phase(s.phase.Load())
}

// State returns the most recently published snapshot
func (s *Scheduler) State() *State {
	return s.snapshot.Load()
}

// Updates delivers tick results; a slow reader sees only the latest
func (s *Scheduler) Updates() <-chan TickResult {
	return s.updates
}

// Flip forwards a gravity flip; ignored unless playing
func (s *Scheduler) Flip() bool {
	return s.send(command{kind: cmdFlip})
}

// Begin starts a fresh session from idle or game over; no-op while playing
func (s *Scheduler) Begin() bool {
	return s.send(command{kind: cmdBegin})
}

// Resize records new field dimensions; a session in progress restarts at the new size
func (s *Scheduler) Resize(width, height float64) {
	s.send(command{kind: cmdResize, width: width, height: height})
}

func (s *Scheduler) send(cmd command) bool {
	cmd.reply = make(chan bool, 1)
	select {
	case s.commands <- cmd:
	case <-s.stopChan:
		return false
	}
	select {
	case ok := <-cmd.reply:
		return ok
	case <-s.stopChan:
		return false
	}
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopChan:
			return
		case cmd := <-s.commands:
			cmd.reply <- s.execute(cmd)
		case <-s.source.C():
			s.tick()
		}
	}
}

func (s *Scheduler) execute(cmd command) bool {
	switch cmd.kind {
	case cmdFlip:
		if s.Phase() != PhasePlaying || !s.engine.FlipGravity() {
			return false
		}
		s.publish()
		return true

	case cmdBegin:
		if s.Phase() == PhasePlaying {
			return false
		}
		s.reset()
		s.phase.Store(int32(PhasePlaying))
		log.Printf("session started %.0fx%.0f", s.width, s.height)
		return true

	case cmdResize:
		s.width, s.height = cmd.width, cmd.height
		if s.Phase() == PhasePlaying {
			s.reset()
			log.Printf("session restarted on resize %.0fx%.0f", s.width, s.height)
		}
		return true
	}
	return false
}

func (s *Scheduler) reset() {
	s.engine.Reset(s.width, s.height)
	s.statResets.Add(1)
	s.publish()
}

func (s *Scheduler) tick() {
	if s.Phase() != PhasePlaying {
		return
	}

	res := s.engine.Advance(s.width, s.height)
	s.statTicks.Store(int64(res.Tick))
	s.statPickups.Add(int64(res.Pickups))
	s.publish()

	if res.Ended {
		s.phase.Store(int32(PhaseOver))
		log.Printf("game over: score %d, coins %d, tick %d", res.FinalScore, res.CoinsCollected, res.Tick)
	}

	// Keep only the newest result for slow readers
	select {
	case s.updates <- res:
	default:
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- res:
		default:
		}
	}
}

func (s *Scheduler) publish() {
	st := s.engine.Snapshot()
	s.statSpeed.Set(st.Speed)
	s.statPeakSpeed.SetMax(st.Speed)
	s.statParticles.Store(int64(len(st.Particles)))
	s.snapshot.Store(&st)
}
