package watchface

import (
	"fmt"
	"image"
)

// separatorFrame is the frame index used for ':' and '-' in digit runs.
// Frames 0 through 9 are the digits themselves.
const separatorFrame = 10

// DigitItem draws a date or time component from a digit sheet.
//
// Multi-glyph types (Year, Month, Day, Hour, Minute, Second, HourMinute,
// YearMonthDay, MonthDay) lay their glyphs out left to right, centered on
// the item's center. Weekday and SpecialSecond select a single frame by
// value instead.
type DigitItem struct {
	base
	typ ItemType
}

var digitTypes = map[ItemType]bool{
	TypeYear:          true,
	TypeMonth:         true,
	TypeDay:           true,
	TypeWeekday:       true,
	TypeHour:          true,
	TypeMinute:        true,
	TypeSecond:        true,
	TypeHourMinute:    true,
	TypeYearMonthDay:  true,
	TypeMonthDay:      true,
	TypeSpecialSecond: true,
}

// NewDigitItem creates a digit item of type t. It panics if t is not one of
// the digit or date types; the parser only calls it after dispatch.
func NewDigitItem(t ItemType, cx, cy int, frames []image.Image) *DigitItem {
	if !digitTypes[t] {
		panic(fmt.Sprintf("watchface: %v is not a digit item type", t))
	}
	return &DigitItem{base: newBase(cx, cy, frames), typ: t}
}

func (it *DigitItem) Type() ItemType { return it.typ }

// Text returns the glyph string drawn for s, using '0'..'9', ':' and '-'.
// Weekday and SpecialSecond return their frame index in decimal.
func (it *DigitItem) Text(s *State) string {
	t := s.Time
	switch it.typ {
	case TypeYear:
		return fmt.Sprintf("%04d", t.Year())
	case TypeMonth:
		return fmt.Sprintf("%02d", int(t.Month()))
	case TypeDay:
		return fmt.Sprintf("%02d", t.Day())
	case TypeHour:
		return fmt.Sprintf("%02d", displayHour(s))
	case TypeMinute:
		return fmt.Sprintf("%02d", t.Minute())
	case TypeSecond:
		return fmt.Sprintf("%02d", t.Second())
	case TypeHourMinute:
		return fmt.Sprintf("%02d:%02d", displayHour(s), t.Minute())
	case TypeYearMonthDay:
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	case TypeMonthDay:
		return fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day())
	case TypeWeekday:
		return fmt.Sprint(int(t.Weekday()))
	case TypeSpecialSecond:
		return fmt.Sprint(t.Second())
	}
	return ""
}

func displayHour(s *State) int {
	h := s.Time.Hour()
	if s.Use24Hour {
		return h
	}
	if h %= 12; h == 0 {
		h = 12
	}
	return h
}

func (it *DigitItem) Sprites(s *State) []Sprite {
	switch it.typ {
	case TypeWeekday:
		return it.single(int(s.Time.Weekday()))
	case TypeSpecialSecond:
		return it.single(s.Time.Second())
	}
	return it.run(it.Text(s))
}

func (it *DigitItem) single(i int) []Sprite {
	img, ok := it.frameMod(i)
	if !ok {
		return nil
	}
	return it.centered(img, 0)
}

// run lays out glyphs for text. Glyphs without a frame are skipped rather
// than wrapped, so a sheet lacking a separator never draws a wrong digit.
func (it *DigitItem) run(text string) []Sprite {
	glyphs := make([]image.Image, 0, len(text))
	total := 0
	for _, r := range text {
		i := separatorFrame
		if r >= '0' && r <= '9' {
			i = int(r - '0')
		}
		if i >= len(it.frames) {
			continue
		}
		img := it.frames[i]
		glyphs = append(glyphs, img)
		total += img.Bounds().Dx()
	}
	if len(glyphs) == 0 {
		return nil
	}

	sprites := make([]Sprite, 0, len(glyphs))
	x := float64(it.center.X) - float64(total)/2
	for _, img := range glyphs {
		w := float64(img.Bounds().Dx())
		sprites = append(sprites, Sprite{
			Frame: img,
			X:     x + w/2,
			Y:     float64(it.center.Y),
		})
		x += w
	}
	return sprites
}
