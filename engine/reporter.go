package engine

// Reporter receives session notifications from the engine
// Calls happen on the goroutine driving the engine and must not block
type Reporter interface {
	// Score is called whenever the visible score changes, and with 0 on reset
	Score(score int)
	// Coins is called after a tick that collected coins, and with 0 on reset
	Coins(total int)
	// GameOver is called exactly once per session
	GameOver(finalScore int)
}

// NopReporter discards every notification
type NopReporter struct{}

func (NopReporter) Score(int)    {}
func (NopReporter) Coins(int)    {}
func (NopReporter) GameOver(int) {}

// ReporterFuncs adapts plain functions to Reporter; nil fields are skipped
type ReporterFuncs struct {
	OnScore    func(int)
	OnCoins    func(int)
	OnGameOver func(int)
}

func (r ReporterFuncs) Score(score int) {
	if r.OnScore != nil {
		r.OnScore(score)
	}
}

func (r ReporterFuncs) Coins(total int) {
	if r.OnCoins != nil {
		r.OnCoins(total)
	}
}

func (r ReporterFuncs) GameOver(finalScore int) {
	if r.OnGameOver != nil {
		r.OnGameOver(finalScore)
	}
}
