package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/watchface"
)

type fileConfig struct {
	Out         string       `toml:"out"`
	Background  string       `toml:"background"`
	Concurrency int          `toml:"concurrency"`
	Use24Hour   bool         `toml:"use_24_hour"`
	Sensors     sensorConfig `toml:"sensors"`
}

type sensorConfig struct {
	Battery        int     `toml:"battery"`
	Steps          int     `toml:"steps"`
	StepTarget     int     `toml:"step_target"`
	KCal           int     `toml:"kcal"`
	KCalTarget     int     `toml:"kcal_target"`
	Distance       float64 `toml:"distance"`
	DistanceTarget float64 `toml:"distance_target"`
	Balance        float64 `toml:"balance"`
	Weather        int     `toml:"weather"`
}

// previewConfig is the effective configuration after the config file and
// flags are applied.
type previewConfig struct {
	Out         string
	Background  color.Color
	Concurrency int

	// Sensors is copied into every State; its Time and MoonPhase are
	// replaced per snapshot.
	Sensors watchface.State
}

func defaultPreviewConfig() previewConfig {
	return previewConfig{
		Out:         "face.png",
		Concurrency: 1,
		Sensors: watchface.State{
			Use24Hour:      true,
			Battery:        100,
			StepTarget:     10000,
			KCalTarget:     500,
			DistanceTarget: 10,
		},
	}
}

// state returns the sensor template stamped with the instant and its moon
// phase.
func (c previewConfig) state(s *watchface.State) *watchface.State {
	out := c.Sensors
	out.Time = s.Time
	out.MoonPhase = s.MoonPhase
	return &out
}

func loadPreviewConfig(path string) (previewConfig, error) {
	cfg := defaultPreviewConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return previewConfig{}, fmt.Errorf("load preview config: %w", err)
	}

	if meta.IsDefined("out") {
		if out := strings.TrimSpace(raw.Out); out != "" {
			cfg.Out = out
		}
	}

	if meta.IsDefined("background") {
		c, err := parseHexColor(raw.Background)
		if err != nil {
			return previewConfig{}, fmt.Errorf("parse background: %w", err)
		}
		cfg.Background = c
	}

	if meta.IsDefined("concurrency") {
		cfg.Concurrency = max(raw.Concurrency, 1)
	}

	if meta.IsDefined("use_24_hour") {
		cfg.Sensors.Use24Hour = raw.Use24Hour
	}

	s := &cfg.Sensors
	if meta.IsDefined("sensors", "battery") {
		s.Battery = raw.Sensors.Battery
	}
	if meta.IsDefined("sensors", "steps") {
		s.Steps = raw.Sensors.Steps
	}
	if meta.IsDefined("sensors", "step_target") {
		s.StepTarget = raw.Sensors.StepTarget
	}
	if meta.IsDefined("sensors", "kcal") {
		s.KCal = raw.Sensors.KCal
	}
	if meta.IsDefined("sensors", "kcal_target") {
		s.KCalTarget = raw.Sensors.KCalTarget
	}
	if meta.IsDefined("sensors", "distance") {
		s.Distance = raw.Sensors.Distance
	}
	if meta.IsDefined("sensors", "distance_target") {
		s.DistanceTarget = raw.Sensors.DistanceTarget
	}
	if meta.IsDefined("sensors", "balance") {
		s.Balance = raw.Sensors.Balance
	}
	if meta.IsDefined("sensors", "weather") {
		s.Weather = watchface.Weather(raw.Sensors.Weather)
	}

	return cfg, nil
}

// parseHexColor accepts #rrggbb and #rrggbbaa.
func parseHexColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("%q: want #rrggbb or #rrggbbaa", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
