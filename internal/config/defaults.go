package config

import (
	_ "embed"
)

//go:embed defaults/flyer.yaml
var defaultFlyerYAML []byte

// DefaultTuning returns the calibration the damage model was designed with.
func DefaultTuning() Tuning {
	return Tuning{
		DamagedIntervalFactor: 10.0,
		DamagedVelocityFactor: 0.5,
		ReactionMultiplier:    0.1,
		ClampStatus:           false,
	}
}

// DefaultConfig returns the hardcoded configuration.
func DefaultConfig() Config {
	return Config{
		Tuning: DefaultTuning(),
		World: WorldConfig{
			Gravity: -9.81,
			GroundY: 0,
		},
		Plane: PlaneConfig{
			Mass:     2500,
			Width:    8,
			Height:   2,
			Altitude: 500,
			Speed:    0,
			Guns: []GunMount{
				{
					Name:   "nose",
					Preset: "berezin",
					Muzzle: [2]float64{4, 0.2},
					Normal: [2]float64{1, 0},
				},
				{
					Name:        "tail",
					Preset:      "kalashnikov",
					Muzzle:      [2]float64{-4, 0.5},
					Normal:      [2]float64{-1, 0},
					MuzzleShift: 0.1,
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlyerYAML
}
