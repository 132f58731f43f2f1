package watchface

import "math"

// Default rotation parameters applied when a descriptor omits them.
const (
	DefaultStartAngle = 0.0
	DefaultMaxAngle   = 360.0
	DefaultDirection  = Clockwise
)

// Rotation holds the angular parameters of a rotatable item.
// Angles are in degrees; positive angles turn clockwise on screen.
type Rotation struct {
	// Start is the angle drawn for a normalized value of 0.
	Start float64
	// Max is the span covered as the normalized value goes from 0 to 1.
	Max float64
	// Direction flips the sign of the final angle when CounterClockwise.
	Direction Direction
}

// DefaultRotation returns the parameters used for omitted descriptor fields.
func DefaultRotation() Rotation {
	return Rotation{Start: DefaultStartAngle, Max: DefaultMaxAngle, Direction: DefaultDirection}
}

// Angle returns the draw angle for a live value of the given kind.
//
//	angle = Start + Normalize(kind, value) * Max
//
// negated for CounterClockwise.
func (r Rotation) Angle(kind RotatableKind, value float64) float64 {
	a := r.Start + Normalize(kind, value)*r.Max
	if r.Direction == CounterClockwise {
		return -a
	}
	return a
}

// period describes how a kind's natural units map onto one revolution:
// normalized = (value - offset) / length. Clock periods are cyclic; ratio
// periods saturate past a full gauge.
type period struct {
	offset float64
	length float64
	ratio  bool
}

var periods = map[RotatableKind]period{
	RotateSecond:       {0, 60, false},
	RotateSecondShadow: {0, 60, false},
	RotateMinute:       {0, 60, false},
	RotateMinuteShadow: {0, 60, false},
	RotateHour:         {0, 12, false},
	RotateHourShadow:   {0, 12, false},
	RotateHour24:       {0, 24, false},
	RotateMonth:        {1, 12, false},
	RotateWeekday:      {0, 7, false},
	RotateDay:          {1, 31, false},
	RotateBattery:      {0, 1, true},
	RotateBalance:      {0, 1, true},
	RotateStep:         {0, 1, true},
	RotateKCal:         {0, 1, true},
	RotateDistance:     {0, 1, true},
}

// fullGauge is the largest normalized value, just short of a revolution.
var fullGauge = math.Nextafter(1, 0)

// Normalize maps a live value in the kind's natural units into [0, 1).
//
// Seconds and minutes use a period of 60, hours 12 (24 for Hour24), months
// run 1..12, weekdays 0..6 with Sunday as 0, and days 1..31. Battery, Step,
// KCal, Distance and Balance expect a current/target ratio.
//
// Negative and NaN values map to 0. A value exactly at the end of its period
// maps back to 0. Past that, clock kinds wrap around the dial while ratio
// kinds clamp to just under 1, so an over-target gauge stays full. Unknown
// kinds map to 0.
func Normalize(kind RotatableKind, value float64) float64 {
	p, ok := periods[kind]
	if !ok {
		return 0
	}
	n := (value - p.offset) / p.length
	if math.IsNaN(n) || n <= 0 {
		return 0
	}
	if n == 1 {
		return 0
	}
	if p.ratio {
		return min(n, fullGauge)
	}
	if math.IsInf(n, 0) {
		return 0
	}
	n -= math.Floor(n)
	if n >= 1 {
		return 0
	}
	return n
}

// FrameIndex selects one of n frames for a live value, spreading the
// normalized range evenly across them. Returns 0 when n <= 0.
func FrameIndex(kind RotatableKind, value float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(Normalize(kind, value) * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
