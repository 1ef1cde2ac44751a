package tui

import (
	"github.com/vovakirdan/tilt-shooter/internal/config"
	"github.com/vovakirdan/tilt-shooter/internal/core"
)

// TiltSensor stands in for a device accelerometer. Key presses tilt the
// virtual device; each sample reports the reading scaled by the ship
// sensitivity as a position delta. The zero value is a missing sensor and
// always samples zero.
type TiltSensor struct {
	reading     float64
	step        float64
	maxTilt     float64
	sensitivity float64
}

// NewTiltSensor creates a level sensor from the input configuration.
func NewTiltSensor(cfg config.ShooterConfig) TiltSensor {
	return TiltSensor{
		step:        cfg.Input.TiltStep,
		maxTilt:     cfg.Input.MaxTilt,
		sensitivity: cfg.Ship.Sensitivity,
	}
}

// Nudge tilts the device one step in the sign of dir.
func (s *TiltSensor) Nudge(dir float64) {
	switch {
	case dir < 0:
		s.reading -= s.step
	case dir > 0:
		s.reading += s.step
	}
	s.reading = core.ClampF(s.reading, -s.maxTilt, s.maxTilt)
}

// Level returns the device to flat.
func (s *TiltSensor) Level() {
	s.reading = 0
}

// Reading returns the current tilt in [-max, max].
func (s *TiltSensor) Reading() float64 {
	return s.reading
}

// MaxTilt returns the largest absolute reading.
func (s *TiltSensor) MaxTilt() float64 {
	return s.maxTilt
}

// Sample returns the position delta for one sensor interval.
func (s *TiltSensor) Sample() float64 {
	return s.reading * s.sensitivity
}
