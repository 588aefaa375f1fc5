// Package config provides YAML-based game configuration loading and
// difficulty presets for the tennis game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tennis/internal/video"
)

// TennisConfig contains all configuration for the tennis game.
type TennisConfig struct {
	Viewport    ViewportConfig    `yaml:"viewport"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Paddle      PaddleConfig      `yaml:"paddle"`
	Ball        BallConfig        `yaml:"ball"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	CPU         CPUConfig         `yaml:"cpu"`
	Controls    ControlsConfig    `yaml:"controls"`
}

// ViewportConfig is the logical pixel grid the game simulates on.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CalibrationConfig holds the clock-to-pixel conversion constants.
type CalibrationConfig struct {
	PxPerHUnit float64 `yaml:"px_per_h_unit"`
	PxPerVUnit float64 `yaml:"px_per_v_unit"`
	HBlank     int     `yaml:"hblank"`
	VBlank     int     `yaml:"vblank"`
	HShift     int     `yaml:"hshift"`
}

// PaddleConfig defines paddle movement.
type PaddleConfig struct {
	Rate float64 `yaml:"rate"` // Screen heights per second
}

// BallConfig defines ball timing.
type BallConfig struct {
	ServeDelay float64 `yaml:"serve_delay"` // Seconds
}

// GameplayConfig defines scoring and serve rules.
type GameplayConfig struct {
	WinScore       int            `yaml:"win_score"`
	ServeDirection ServeDirection `yaml:"serve_direction"`
	FirstServe     ServeDirection `yaml:"first_serve"`
}

// CPUConfig tunes the computer-controlled right paddle.
type CPUConfig struct {
	Skill    float64 `yaml:"skill"`     // 0-1
	DeadZone float64 `yaml:"dead_zone"` // Pixels
}

// ControlsConfig tunes how terminal key presses become held intents.
// Terminals report presses only, so each press keeps the paddle moving briefly.
type ControlsConfig struct {
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// ServeDirection selects which way the ball travels on a serve.
type ServeDirection string

const (
	ServeTowardLoser  ServeDirection = "loser"  // Toward the side that just conceded
	ServeTowardWinner ServeDirection = "winner" // Toward the side that just scored
	ServeLeft         ServeDirection = "left"
	ServeRight        ServeDirection = "right"
)

// Valid reports whether d is a known direction policy.
func (d ServeDirection) Valid() bool {
	switch d {
	case ServeTowardLoser, ServeTowardWinner, ServeLeft, ServeRight:
		return true
	}
	return false
}

// VideoCalibration returns the coordinate mapping described by the viewport
// and calibration sections.
func (c TennisConfig) VideoCalibration() video.Calibration {
	return video.Calibration{
		Width:      c.Viewport.Width,
		Height:     c.Viewport.Height,
		PxPerHUnit: float32(c.Calibration.PxPerHUnit),
		PxPerVUnit: float32(c.Calibration.PxPerVUnit),
		HBlank:     c.Calibration.HBlank,
		VBlank:     c.Calibration.VBlank,
		HShift:     c.Calibration.HShift,
	}
}

// Validate reports every invalid field in the configuration.
func (c TennisConfig) Validate() error {
	var errs []error

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport: size must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Calibration.PxPerHUnit <= 0 || c.Calibration.PxPerVUnit <= 0 {
		errs = append(errs, fmt.Errorf("calibration: px per unit must be positive, got h=%v v=%v",
			c.Calibration.PxPerHUnit, c.Calibration.PxPerVUnit))
	}
	if len(errs) == 0 {
		if err := c.VideoCalibration().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("viewport: %w", err))
		}
	}
	if c.Paddle.Rate <= 0 {
		errs = append(errs, fmt.Errorf("paddle: rate must be positive, got %v", c.Paddle.Rate))
	}
	if c.Ball.ServeDelay < 0 {
		errs = append(errs, fmt.Errorf("ball: serve_delay must not be negative, got %v", c.Ball.ServeDelay))
	}
	if c.Gameplay.WinScore <= 0 {
		errs = append(errs, fmt.Errorf("gameplay: win_score must be positive, got %d", c.Gameplay.WinScore))
	}
	if !c.Gameplay.ServeDirection.Valid() {
		errs = append(errs, fmt.Errorf("gameplay: unknown serve_direction %q", c.Gameplay.ServeDirection))
	}
	if c.Gameplay.FirstServe != ServeLeft && c.Gameplay.FirstServe != ServeRight {
		errs = append(errs, fmt.Errorf("gameplay: first_serve must be left or right, got %q", c.Gameplay.FirstServe))
	}
	if c.CPU.Skill < 0 || c.CPU.Skill > 1 {
		errs = append(errs, fmt.Errorf("cpu: skill must be within [0, 1], got %v", c.CPU.Skill))
	}
	if c.Controls.KeyHoldMS < 0 {
		errs = append(errs, fmt.Errorf("controls: key_hold_ms must not be negative, got %d", c.Controls.KeyHoldMS))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyTennisPreset modifies the config based on a difficulty preset.
// Presets only tune the CPU opponent and paddle speed; the ball tables are fixed.
func ApplyTennisPreset(cfg *TennisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.CPU.Skill = 0.45
		cfg.CPU.DeadZone = 20
		cfg.Paddle.Rate = 0.9
	case DifficultyHard:
		cfg.CPU.Skill = 0.95
		cfg.CPU.DeadZone = 4
	}
}
