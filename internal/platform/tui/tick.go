// Package tui provides the Bubble Tea integration for the shooter.
// It owns the repeating timers, maps keys to game input, and renders frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilt-shooter/internal/config"
)

// TimerKind identifies one of the repeating activities.
type TimerKind int

const (
	TimerTick   TimerKind = iota // Simulation step
	TimerSpawn                   // Enemy spawn
	TimerSensor                  // Tilt sensor sample
)

// String returns the timer's name for logs.
func (k TimerKind) String() string {
	switch k {
	case TimerTick:
		return "tick"
	case TimerSpawn:
		return "spawn"
	case TimerSensor:
		return "sensor"
	default:
		return "unknown"
	}
}

// RepeatMsg is delivered each time a repeating timer fires.
type RepeatMsg struct {
	Kind TimerKind
	Tag  int
	Time time.Time
}

// Repeater is a fixed-interval timer driven through the Bubble Tea loop.
// Every Start and Stop bumps the tag; messages carrying an older tag are
// dropped, so a stopped timer never fires again and a restarted one never
// runs two chains at once.
type Repeater struct {
	kind     TimerKind
	interval time.Duration
	tag      int
	running  bool
}

// NewRepeater creates a stopped repeater.
func NewRepeater(kind TimerKind, interval time.Duration) Repeater {
	return Repeater{kind: kind, interval: interval}
}

// Start arms the repeater and returns the command for its first firing.
func (r *Repeater) Start() tea.Cmd {
	r.tag++
	r.running = true
	return r.next()
}

// Stop disarms the repeater. Any in-flight message is ignored.
func (r *Repeater) Stop() {
	r.tag++
	r.running = false
}

// Running reports whether the repeater is armed.
func (r *Repeater) Running() bool {
	return r.running
}

// Interval returns the firing interval.
func (r *Repeater) Interval() time.Duration {
	return r.interval
}

// Update reports whether msg is a live firing of this repeater and, if so,
// returns the command for the next firing.
func (r *Repeater) Update(msg RepeatMsg) (bool, tea.Cmd) {
	if !r.running || msg.Kind != r.kind || msg.Tag != r.tag {
		return false, nil
	}
	return true, r.next()
}

func (r *Repeater) next() tea.Cmd {
	kind, tag := r.kind, r.tag
	return tea.Tick(r.interval, func(t time.Time) tea.Msg {
		return RepeatMsg{Kind: kind, Tag: tag, Time: t}
	})
}

// Schedule groups the three repeating activities of a session.
// Tick and spawn follow the game state; the sensor runs until teardown.
type Schedule struct {
	tick   Repeater
	spawn  Repeater
	sensor Repeater
}

// NewSchedule creates a stopped schedule from the configured intervals.
func NewSchedule(t config.Timing) *Schedule {
	return &Schedule{
		tick:   NewRepeater(TimerTick, t.Tick),
		spawn:  NewRepeater(TimerSpawn, t.Spawn),
		sensor: NewRepeater(TimerSensor, t.Sensor),
	}
}

// StartAll arms every timer.
func (s *Schedule) StartAll() tea.Cmd {
	return tea.Batch(s.tick.Start(), s.spawn.Start(), s.sensor.Start())
}

// StopAll disarms every timer. Called on teardown.
func (s *Schedule) StopAll() {
	s.tick.Stop()
	s.spawn.Stop()
	s.sensor.Stop()
}

// Suspend stops the tick and spawn timers, e.g. on game over or pause.
func (s *Schedule) Suspend() {
	s.tick.Stop()
	s.spawn.Stop()
}

// Resume restarts the tick and spawn timers.
func (s *Schedule) Resume() tea.Cmd {
	return tea.Batch(s.tick.Start(), s.spawn.Start())
}

// Running reports whether the timer of the given kind is armed.
func (s *Schedule) Running(kind TimerKind) bool {
	if r := s.repeater(kind); r != nil {
		return r.Running()
	}
	return false
}

// Route dispatches a firing to its repeater. fired is false for stale or
// foreign messages, which must be dropped.
func (s *Schedule) Route(msg RepeatMsg) (fired bool, cmd tea.Cmd) {
	r := s.repeater(msg.Kind)
	if r == nil {
		return false, nil
	}
	return r.Update(msg)
}

func (s *Schedule) repeater(kind TimerKind) *Repeater {
	switch kind {
	case TimerTick:
		return &s.tick
	case TimerSpawn:
		return &s.spawn
	case TimerSensor:
		return &s.sensor
	default:
		return nil
	}
}
