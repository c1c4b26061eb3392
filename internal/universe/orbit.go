package universe

import (
	"math"

	"github.com/charmbracelet/log"
)

// Integrator advances orbital angles under a simplified circular model:
// every body completes one revolution per simulated year, and the length
// of a simulated year in real seconds is fixed configuration. Star mass
// deliberately does not enter the time scale; the pacing is a gameplay
// constant, not Kepler's third law.
type Integrator struct {
	secondsPerYear float64
	logger         *log.Logger
}

// NewIntegrator creates an integrator with the given year length in
// real seconds. Non-positive values fall back to 60 seconds.
func NewIntegrator(secondsPerYear float64, logger *log.Logger) *Integrator {
	if secondsPerYear <= 0 || math.IsNaN(secondsPerYear) {
		secondsPerYear = 60
	}
	return &Integrator{secondsPerYear: secondsPerYear, logger: logger}
}

// Advance moves every body in the system forward by dt real seconds.
// It is stateless aside from mutating the bodies' angle and position.
// Bodies with invalid orbital distances are parked at the origin and
// skipped; a non-finite result resets the body rather than propagating.
func (it *Integrator) Advance(sys *StarSystem, dt float64) {
	if sys == nil || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}
	step := (2 * math.Pi / it.secondsPerYear) * dt

	for _, p := range sys.Planets {
		if p == nil {
			continue
		}
		it.advanceBody(&p.Angle, &p.X, &p.Y, p.Distance, step)
	}
	if sys.Starbase != nil {
		sb := sys.Starbase
		it.advanceBody(&sb.Angle, &sb.X, &sb.Y, sb.Distance, step)
	}
}

// advanceBody updates one body's angle and Cartesian position in place.
func (it *Integrator) advanceBody(angle, x, y *float64, distance, step float64) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance <= 0 {
		it.warnf("invalid orbital distance, parking body at origin", "distance", distance)
		*x, *y = 0, 0
		return
	}

	*angle = wrapAngle(*angle + step)
	*x = math.Cos(*angle) * distance
	*y = math.Sin(*angle) * distance

	if math.IsNaN(*x) || math.IsInf(*x, 0) || math.IsNaN(*y) || math.IsInf(*y, 0) {
		it.warnf("non-finite orbital position, resetting body", "angle", *angle)
		*x, *y = 0, 0
	}
}

// wrapAngle normalizes an angle into [0, 2pi).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func (it *Integrator) warnf(msg string, kv ...any) {
	if it.logger != nil {
		it.logger.Warn(msg, kv...)
	}
}
