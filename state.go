package watchface

import "time"

// Weather is the current weather condition reported by the host.
// Its value doubles as the frame index of a [WeatherItem].
type Weather int

// Weather conditions.
const (
	WeatherSunny Weather = iota
	WeatherCloudy
	WeatherOvercast
	WeatherRain
	WeatherThunderstorm
	WeatherSnow
	WeatherFog
	WeatherWindy
)

// State is the live context items are drawn against: the wall clock plus
// whatever sensor readings the host has. Zero sensor values are valid and
// simply draw as empty gauges.
type State struct {
	Time time.Time

	// Use24Hour selects 0..23 for Hour and HourMinute digits instead of 1..12.
	Use24Hour bool

	// Battery is the charge level in percent, 0..100.
	Battery int

	Steps      int
	StepTarget int

	KCal       int
	KCalTarget int

	// Distance and DistanceTarget share a unit; only their ratio is used.
	Distance       float64
	DistanceTarget float64

	// Balance is the balance-wheel position as a fraction of its swing.
	Balance float64

	Weather   Weather
	MoonPhase MoonPhase
}

// NewState returns a State for t with 24-hour digits and the moon phase
// computed from the date.
func NewState(t time.Time) *State {
	return &State{
		Time:      t,
		Use24Hour: true,
		MoonPhase: MoonPhaseAt(t),
	}
}

// Value returns the live value driving a rotatable kind, in the units
// [Normalize] expects. Hour kinds carry fractional minutes and minute kinds
// fractional seconds so hands sweep between marks.
func (s *State) Value(kind RotatableKind) float64 {
	t := s.Time
	sec := float64(t.Second())
	mins := float64(t.Minute()) + sec/60

	switch kind {
	case RotateSecond, RotateSecondShadow:
		return sec
	case RotateMinute, RotateMinuteShadow:
		return mins
	case RotateHour, RotateHourShadow:
		return float64(t.Hour()%12) + mins/60
	case RotateHour24:
		return float64(t.Hour()) + mins/60
	case RotateMonth:
		return float64(t.Month())
	case RotateWeekday:
		return float64(t.Weekday())
	case RotateDay:
		return float64(t.Day())
	case RotateBattery:
		return float64(s.Battery) / 100
	case RotateBalance:
		return s.Balance
	case RotateStep:
		return ratio(float64(s.Steps), float64(s.StepTarget))
	case RotateKCal:
		return ratio(float64(s.KCal), float64(s.KCalTarget))
	case RotateDistance:
		return ratio(s.Distance, s.DistanceTarget)
	}
	return 0
}

func ratio(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current / target
}
