package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Phase is a stage of the launch sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLiftOff
	PhaseCurve
	PhaseHorizontal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLiftOff:
		return "lift-off"
	case PhaseCurve:
		return "curve"
	case PhaseHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// FlightParams configures the launch sequence. Speeds are in units per tick.
type FlightParams struct {
	LiftOffHeight float32
	CurveRadius   float32
	CurveDuration float32 // seconds
	Acceleration  float32 // speed gain per tick
	TickRate      int     // ticks per second
}

// DefaultFlightParams is a 5 unit climb, a 5 second quarter turn of radius
// 5 and 60 ticks per second.
func DefaultFlightParams() FlightParams {
	return FlightParams{
		LiftOffHeight: 5,
		CurveRadius:   5,
		CurveDuration: 5,
		Acceleration:  0.001,
		TickRate:      60,
	}
}

// IdlePosition is where the vehicle rests on its pad.
var IdlePosition = mgl32.Vec3{0, -0.5, 0}

// maxStepsPerUpdate bounds catch-up after a long frame.
const maxStepsPerUpdate = 10

// Vehicle is the launch animation state machine:
// idle, lift-off, a quarter-circle curve, then accelerating horizontal flight.
type Vehicle struct {
	Params FlightParams

	Phase     Phase
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Speed     float32
	Angle     float32 // curve angle, 0..π/2

	curveTime float32
	pending   float64
}

// NewVehicle returns a vehicle resting at IdlePosition.
func NewVehicle(p FlightParams) *Vehicle {
	v := &Vehicle{Params: p}
	v.Reset()
	return v
}

// Reset stops any flight and returns to the idle position.
func (v *Vehicle) Reset() {
	v.Phase = PhaseIdle
	v.Position = IdlePosition
	v.Direction = mgl32.Vec3{0, 0, 1}
	v.Speed = 0
	v.Angle = 0
	v.curveTime = 0
	v.pending = 0
}

// Launch starts the lift-off from ground level.
func (v *Vehicle) Launch() {
	v.Reset()
	v.Phase = PhaseLiftOff
	v.Position = mgl32.Vec3{}
}

// Flying reports whether a launch is in progress.
func (v *Vehicle) Flying() bool {
	return v.Phase != PhaseIdle
}

// TickDuration is the simulated time of one Step, in seconds.
func (v *Vehicle) TickDuration() float64 {
	return 1 / float64(v.Params.TickRate)
}

// Update advances the simulation by dt seconds of wall time in whole ticks
// and returns the number of ticks run. Leftover time carries over.
func (v *Vehicle) Update(dt float64) int {
	if v.Phase == PhaseIdle {
		return 0
	}
	tick := v.TickDuration()
	v.pending += dt

	steps := 0
	for v.pending >= tick {
		v.pending -= tick
		v.Step()
		steps++
		if steps == maxStepsPerUpdate {
			v.pending = 0
			break
		}
	}
	return steps
}

// Step advances the simulation by one tick.
func (v *Vehicle) Step() {
	p := v.Params
	switch v.Phase {
	case PhaseLiftOff:
		v.Speed += p.Acceleration
		v.Position[1] += v.Speed
		if v.Position[1] >= p.LiftOffHeight {
			v.Phase = PhaseCurve
			v.curveTime = 0
			v.Angle = 0
		}

	case PhaseCurve:
		v.curveTime += float32(v.TickDuration())
		if v.curveTime < p.CurveDuration {
			v.Angle = halfPi * v.curveTime / p.CurveDuration
			sin, cos := sincos(v.Angle)
			v.Position[1] = p.LiftOffHeight + p.CurveRadius*(1-cos)
			v.Position[0] = p.CurveRadius * sin
			v.Direction = mgl32.Vec3{sin, cos, 0}
		} else {
			v.Phase = PhaseHorizontal
			v.Direction = mgl32.Vec3{1, 0, 0}
		}

	case PhaseHorizontal:
		v.Speed += p.Acceleration
		v.Position[0] += v.Speed
	}
}

// Model returns the vehicle's model-to-world matrix. The ship is tilted by
// the curve angle while curving, lies flat in horizontal flight, and is
// turned to face its direction whenever it is not lifting off.
func (v *Vehicle) Model() mgl32.Mat4 {
	m := mgl32.Translate3D(v.Position[0], v.Position[1], v.Position[2])
	switch v.Phase {
	case PhaseCurve:
		m = m.Mul4(mgl32.HomogRotate3DZ(-v.Angle))
	case PhaseHorizontal:
		m = m.Mul4(mgl32.HomogRotate3DZ(-halfPi))
	}
	if v.Phase != PhaseLiftOff {
		heading := math.Atan2(float64(v.Direction[2]), float64(v.Direction[0]))
		m = m.Mul4(mgl32.HomogRotate3DY(float32(heading)))
	}
	return m
}

// Throttle is the engine load for audio: off when idle, rising with speed.
func (v *Vehicle) Throttle() float64 {
	if v.Phase == PhaseIdle {
		return 0
	}
	return math.Min(0.5+float64(v.Speed)*5, 1)
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
