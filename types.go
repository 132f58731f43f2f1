package watchface

import "strconv"

// ItemType is the descriptor type code selecting an item variant.
//
// The set of codes is closed. Some codes are known to the package but have
// no implementation; records using them are skipped with
// [ErrUnsupportedType], as are codes the package does not know at all.
type ItemType int

// Item type codes.
const (
	TypeStatic                  ItemType = 0
	TypeYearMonthDay            ItemType = 1
	TypeMonthDay                ItemType = 2
	TypeMonth                   ItemType = 3
	TypeDay                     ItemType = 4
	TypeWeekday                 ItemType = 5
	TypeHourMinute              ItemType = 6
	TypeHour                    ItemType = 7
	TypeMinute                  ItemType = 8
	TypeSecond                  ItemType = 9
	TypeWeather                 ItemType = 10
	TypeTemperature             ItemType = 11
	TypeSteps                   ItemType = 12
	TypeHeartRate               ItemType = 13
	TypeBattery                 ItemType = 14
	TypeSpecialSecond           ItemType = 15
	TypeYear                    ItemType = 16
	TypeBatteryPictureCircle    ItemType = 17
	TypeStepsPictureCircle      ItemType = 18
	TypeMoonPhase               ItemType = 19
	TypeYear2                   ItemType = 20
	TypeMissedCalls             ItemType = 21
	TypeMissedSMS               ItemType = 22
	TypeBatteryCircle           ItemType = 23
	TypeStepsPictureWithCircle2 ItemType = 24
	TypeKCal                    ItemType = 25
	TypeMissedCallsSMS          ItemType = 26
	TypeStepsCircle             ItemType = 27
	TypeKCalCircle              ItemType = 28
	TypePowerCircle             ItemType = 29
	TypeDistanceCircle          ItemType = 30
	TypeDistance                ItemType = 31
	TypeBatteryImage            ItemType = 32
	TypeUnknown1                ItemType = 33
	TypeBatteryImageCharging    ItemType = 34
	TypeTextPedometer           ItemType = 35
	TypeTextHeartRate           ItemType = 36
	TypeCharging                ItemType = 37
	TypeYearMonthDay2           ItemType = 38
	TypeRotatable               ItemType = 99
	TypeTapAction               ItemType = 100
)

type typeInfo struct {
	name      string
	supported bool
}

var itemTypes = map[ItemType]typeInfo{
	TypeStatic:                  {"Static", true},
	TypeYearMonthDay:            {"YearMonthDay", true},
	TypeMonthDay:                {"MonthDay", true},
	TypeMonth:                   {"Month", true},
	TypeDay:                     {"Day", true},
	TypeWeekday:                 {"Weekday", true},
	TypeHourMinute:              {"HourMinute", true},
	TypeHour:                    {"Hour", true},
	TypeMinute:                  {"Minute", true},
	TypeSecond:                  {"Second", true},
	TypeWeather:                 {"Weather", true},
	TypeTemperature:             {"Temperature", false},
	TypeSteps:                   {"Steps", false},
	TypeHeartRate:               {"HeartRate", false},
	TypeBattery:                 {"Battery", false},
	TypeSpecialSecond:           {"SpecialSecond", true},
	TypeYear:                    {"Year", true},
	TypeBatteryPictureCircle:    {"BatteryPictureCircle", false},
	TypeStepsPictureCircle:      {"StepsPictureCircle", false},
	TypeMoonPhase:               {"MoonPhase", true},
	TypeYear2:                   {"Year2", false},
	TypeMissedCalls:             {"MissedCalls", false},
	TypeMissedSMS:               {"MissedSMS", false},
	TypeBatteryCircle:           {"BatteryCircle", false},
	TypeStepsPictureWithCircle2: {"StepsPictureWithCircle2", false},
	TypeKCal:                    {"KCal", false},
	TypeMissedCallsSMS:          {"MissedCallsSMS", false},
	TypeStepsCircle:             {"StepsCircle", false},
	TypeKCalCircle:              {"KCalCircle", false},
	TypePowerCircle:             {"PowerCircle", false},
	TypeDistanceCircle:          {"DistanceCircle", false},
	TypeDistance:                {"Distance", false},
	TypeBatteryImage:            {"BatteryImage", false},
	TypeUnknown1:                {"Unknown1", false},
	TypeBatteryImageCharging:    {"BatteryImageCharging", false},
	TypeTextPedometer:           {"TextPedometer", false},
	TypeTextHeartRate:           {"TextHeartRate", false},
	TypeCharging:                {"Charging", false},
	TypeYearMonthDay2:           {"YearMonthDay2", false},
	TypeRotatable:               {"Rotatable", true},
	TypeTapAction:               {"TapAction", true},
}

// String returns the type name, or "ItemType(n)" for unknown codes.
func (t ItemType) String() string {
	if info, ok := itemTypes[t]; ok {
		return info.name
	}
	return "ItemType(" + strconv.Itoa(int(t)) + ")"
}

// Known reports whether t is one of the recognized type codes.
func (t ItemType) Known() bool {
	_, ok := itemTypes[t]
	return ok
}

// Supported reports whether records of type t can be turned into items.
func (t ItemType) Supported() bool {
	return itemTypes[t].supported
}

// RotatableKind selects the live value driving a [RotatableItem].
type RotatableKind int

// Rotatable kinds.
const (
	RotateHour         RotatableKind = 1
	RotateMinute       RotatableKind = 2
	RotateSecond       RotatableKind = 3
	RotateMonth        RotatableKind = 4
	RotateWeekday      RotatableKind = 5
	RotateBattery      RotatableKind = 6
	RotateHour24       RotatableKind = 7
	RotateHourShadow   RotatableKind = 8
	RotateMinuteShadow RotatableKind = 9
	RotateSecondShadow RotatableKind = 10
	RotateDay          RotatableKind = 11
	RotateBalance      RotatableKind = 12
	RotateStep         RotatableKind = 13
	RotateKCal         RotatableKind = 14
	RotateDistance     RotatableKind = 15
)

var rotatableNames = map[RotatableKind]string{
	RotateHour:         "Hour",
	RotateMinute:       "Minute",
	RotateSecond:       "Second",
	RotateMonth:        "Month",
	RotateWeekday:      "Weekday",
	RotateBattery:      "Battery",
	RotateHour24:       "Hour24",
	RotateHourShadow:   "HourShadow",
	RotateMinuteShadow: "MinuteShadow",
	RotateSecondShadow: "SecondShadow",
	RotateDay:          "Day",
	RotateBalance:      "Balance",
	RotateStep:         "Step",
	RotateKCal:         "KCal",
	RotateDistance:     "Distance",
}

func (k RotatableKind) String() string {
	if name, ok := rotatableNames[k]; ok {
		return name
	}
	return "RotatableKind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is a known rotatable kind.
func (k RotatableKind) Valid() bool {
	_, ok := rotatableNames[k]
	return ok
}

// Direction is the sense in which a rotatable item turns as its value grows.
type Direction int

// Rotation directions.
const (
	Clockwise        Direction = 1
	CounterClockwise Direction = 2
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "CounterClockwise"
	}
	return "Clockwise"
}
