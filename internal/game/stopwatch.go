package game

import (
	"fmt"
	"time"
)

// Stopwatch times consecutive games. Each finished game is one lap.
type Stopwatch struct {
	now     func() time.Time
	started time.Time
	running bool
	laps    []time.Duration
}

// NewStopwatch returns a stopped Stopwatch reading the given clock.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

// Start begins timing a new lap.
func (s *Stopwatch) Start() {
	s.started = s.now()
	s.running = true
}

// Elapsed returns the time spent in the current lap, or zero when stopped.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return 0
	}
	return s.now().Sub(s.started)
}

// Lap stops the clock and records the current lap.
func (s *Stopwatch) Lap() time.Duration {
	d := s.Elapsed()
	s.running = false
	s.laps = append(s.laps, d)
	return d
}

// Discard stops the clock without recording a lap.
func (s *Stopwatch) Discard() time.Duration {
	d := s.Elapsed()
	s.running = false
	return d
}

// Laps returns the recorded lap durations.
func (s *Stopwatch) Laps() []time.Duration { return s.laps }

// Summary totals the recorded laps.
func (s *Stopwatch) Summary() Summary {
	sum := Summary{Games: len(s.laps)}
	for _, l := range s.laps {
		sum.Total += l
	}
	if sum.Games > 0 {
		sum.Average = sum.Total / time.Duration(sum.Games)
		sum.Last = s.laps[len(s.laps)-1]
	}
	return sum
}

// Summary holds the timing statistics of a session.
type Summary struct {
	Games   int
	Total   time.Duration
	Average time.Duration
	Last    time.Duration
}

// String renders the farewell text printed once the screen is released.
func (s Summary) String() string {
	switch s.Games {
	case 0:
		return "Goodbye!\n"
	case 1:
		return fmt.Sprintf("You played 1 game that took %s.\nGoodbye!\n", formatDuration(s.Last))
	}
	return fmt.Sprintf("You played %d games that took an average time of %s.\nGoodbye!\n",
		s.Games, formatDuration(s.Average))
}

// formatDuration rounds d to hundredths of a second for display.
func formatDuration(d time.Duration) string {
	return d.Round(10 * time.Millisecond).String()
}
