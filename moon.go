package watchface

import (
	"math"
	"time"
)

// MoonPhase is one of eight lunar phases, starting at the new moon.
// Its value doubles as the frame index of a [MoonPhaseItem].
type MoonPhase int

// Moon phases.
const (
	MoonNew MoonPhase = iota
	MoonWaxingCrescent
	MoonFirstQuarter
	MoonWaxingGibbous
	MoonFull
	MoonWaningGibbous
	MoonLastQuarter
	MoonWaningCrescent
)

const synodicMonth = 29.530588853 * 24 * float64(time.Hour)

// referenceNewMoon is the new moon of 2000-01-06 18:14 UTC.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// MoonPhaseAt approximates the moon phase at t from the mean synodic month.
// Good to within a few hours, which is finer than eight phases need.
func MoonPhaseAt(t time.Time) MoonPhase {
	age := math.Mod(float64(t.Sub(referenceNewMoon)), synodicMonth)
	if age < 0 {
		age += synodicMonth
	}
	return MoonPhase(int(math.Floor(age/synodicMonth*8+0.5)) % 8)
}
