package config

import (
	_ "embed"
)

//go:embed defaults/tennis.yaml
var defaultTennisYAML []byte

// DefaultTennisConfig returns the built-in tennis configuration.
// It mirrors defaults/tennis.yaml and is the base every loaded file is merged onto.
func DefaultTennisConfig() TennisConfig {
	return TennisConfig{
		Viewport: ViewportConfig{
			Width:  640,
			Height: 480,
		},
		Calibration: CalibrationConfig{
			PxPerHUnit: 1.68,
			PxPerVUnit: 1.95,
			HBlank:     81,
			VBlank:     16,
			HShift:     16,
		},
		Paddle: PaddleConfig{
			Rate: 0.8,
		},
		Ball: BallConfig{
			ServeDelay: 1.5,
		},
		Gameplay: GameplayConfig{
			WinScore:       11,
			ServeDirection: ServeTowardLoser,
			FirstServe:     ServeRight,
		},
		CPU: CPUConfig{
			Skill:    0.7,
			DeadZone: 12,
		},
		Controls: ControlsConfig{
			KeyHoldMS: 120,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTennisYAML
}
