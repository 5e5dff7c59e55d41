package kinetic

import (
	"fmt"
	"math"
)

// SpringConfig holds the physical constants of a Spring.
type SpringConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	Mass      float64 `yaml:"mass"`
	RestDelta float64 `yaml:"restDelta"`
}

// DefaultSpringConfig returns the scroll section spring: stiffness 100,
// damping 30, mass 1 and a rest delta of 0.001.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{Stiffness: 100, Damping: 30, Mass: 1, RestDelta: 0.001}
}

// MaxSpringStep is the longest interval a Spring integrates in one go.
// Longer deltas are split into equal sub-steps no longer than this.
const MaxSpringStep = 1.0 / 60

// Validate reports an error unless every constant is finite and positive.
func (c SpringConfig) Validate() error {
	check := func(name string, v float64) error {
		if !isFinite(v) || v <= 0 {
			return fmt.Errorf("kinetic: spring %s = %v: %w", name, v, ErrInvalidSpring)
		}
		return nil
	}
	if err := check("stiffness", c.Stiffness); err != nil {
		return err
	}
	if err := check("damping", c.Damping); err != nil {
		return err
	}
	if err := check("mass", c.Mass); err != nil {
		return err
	}
	return check("restDelta", c.RestDelta)
}

// Spring damps a scalar signal toward its most recent target with a
// mass-spring-damper model integrated by semi-implicit Euler. Output is a
// pure function of the initial value and the (target, dt) sequence.
type Spring struct {
	cfg      SpringConfig
	position float64
	velocity float64
	target   float64
	settled  bool
}

// NewSpring creates a spring at rest at initial.
func NewSpring(cfg SpringConfig, initial float64) (*Spring, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Spring{cfg: cfg, position: initial, target: initial, settled: true}, nil
}

// Config returns the spring's constants.
func (s *Spring) Config() SpringConfig { return s.cfg }

// Position returns the current value.
func (s *Spring) Position() float64 { return s.position }

// Velocity returns the current velocity in units per second.
func (s *Spring) Velocity() float64 { return s.velocity }

// Target returns the target passed to the last Step.
func (s *Spring) Target() float64 { return s.target }

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool { return s.settled }

// Jump places the spring at rest at v.
func (s *Spring) Jump(v float64) {
	s.position = v
	s.target = v
	s.velocity = 0
	s.settled = true
}

// Step integrates dt seconds toward target and returns the new position.
// Deltas longer than MaxSpringStep are integrated as several equal
// sub-steps, so a stalled frame cannot destabilise the spring. Once both the
// distance to target and the velocity fall under RestDelta the spring snaps
// to target and stops advancing until the target changes.
func (s *Spring) Step(target, dt float64) float64 {
	if !isFinite(target) {
		return s.position
	}
	s.target = target
	if s.settled && s.position == target {
		return s.position
	}
	s.settled = false
	if !(dt > 0) {
		return s.position
	}

	n := 1
	if dt > MaxSpringStep {
		n = int(math.Ceil(dt / MaxSpringStep))
	}
	h := dt / float64(n)
	for i := 0; i < n && !s.settled; i++ {
		s.integrate(target, h)
	}
	return s.position
}

func (s *Spring) integrate(target, dt float64) {
	s.velocity += ((target-s.position)*s.cfg.Stiffness - s.velocity*s.cfg.Damping) * dt / s.cfg.Mass
	s.position += s.velocity * dt

	if math.Abs(s.position-target) < s.cfg.RestDelta && math.Abs(s.velocity) < s.cfg.RestDelta {
		s.position = target
		s.velocity = 0
		s.settled = true
	}
}
