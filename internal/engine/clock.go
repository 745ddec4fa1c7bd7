package engine

import "time"

// Clock creates tickers. The scheduler takes one so tests can substitute a
// counting double and assert how many timers are live.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker is the slice of time.Ticker the scheduler needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(d)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t *systemTicker) C() <-chan time.Time { return t.ticker.C }

func (t *systemTicker) Stop() { t.ticker.Stop() }
