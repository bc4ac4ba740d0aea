package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRoundDuration approximates the block interval the round counter models
const DefaultRoundDuration = 3 * time.Second

// Clock provides the time and round inputs of an action.
// Both values are non-decreasing across calls.
type Clock interface {
	// Now returns the current time in unix seconds
	Now() uint64
	// Round returns the current round number
	Round() uint64
}

// RealClock derives time from the system clock and rounds from the time
// elapsed since genesis.
type RealClock struct {
	genesis       time.Time
	roundDuration time.Duration
	lastNow       atomic.Uint64
	lastRound     atomic.Uint64
}

// NewRealClock creates a RealClock whose round 1 starts at genesis
func NewRealClock(genesis time.Time, roundDuration time.Duration) *RealClock {
	if roundDuration <= 0 {
		roundDuration = DefaultRoundDuration
	}
	return &RealClock{genesis: genesis, roundDuration: roundDuration}
}

// Now returns the system time, never going backwards if the wall clock does
func (c *RealClock) Now() uint64 {
	ts := time.Now().Unix()
	if ts < 0 {
		ts = 0
	}
	return advance(&c.lastNow, uint64(ts))
}

// Round returns the number of whole round durations since genesis, plus one
func (c *RealClock) Round() uint64 {
	elapsed := time.Since(c.genesis)
	if elapsed < 0 {
		elapsed = 0
	}
	return advance(&c.lastRound, uint64(elapsed/c.roundDuration)+1)
}

// advance stores v in last if it is larger and returns the stored maximum
func advance(last *atomic.Uint64, v uint64) uint64 {
	for {
		prev := last.Load()
		if v <= prev {
			return prev
		}
		if last.CompareAndSwap(prev, v) {
			return v
		}
	}
}

// SimulatedClock is a manually driven clock for tests and tooling.
type SimulatedClock struct {
	mu    sync.Mutex
	now   uint64
	round uint64
}

// NewSimulatedClock creates a clock at the given unix time and round 1
func NewSimulatedClock(now uint64) *SimulatedClock {
	return &SimulatedClock{now: now, round: 1}
}

// Now returns the simulated time
func (c *SimulatedClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Round returns the simulated round
func (c *SimulatedClock) Round() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.round
}

// Advance moves time forward by seconds and starts a new round
func (c *SimulatedClock) Advance(seconds uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += seconds
	c.round++
}

// Set moves the clock to ts. Earlier values are ignored.
func (c *SimulatedClock) Set(ts uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ts > c.now {
		c.now = ts
		c.round++
	}
}
