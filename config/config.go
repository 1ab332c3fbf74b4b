package config

import (
	"image/color"
)

// WorldConfig describes the playfield. All positions are in world pixels.
type WorldConfig struct {
	Width  float64
	Height float64
	// CellSize is the resolv broadphase cell size.
	CellSize int
	// Scale is the window zoom applied by the frontend.
	Scale int
}

// GravityConfig contains the gravity model defaults
type GravityConfig struct {
	Strength float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width    float64
	Height   float64
	Friction float64
	MaxSpeed float64

	// Ticks after a hazard reset during which hazards and enemies are ignored.
	RespawnInvulnFrames int
}

// EnemyConfig contains enemy movement configuration
type EnemyConfig struct {
	// Defaults for spawns that omit a size, distance, or period.
	Width          float64
	Height         float64
	PatrolDistance float64
	PatrolPeriod   float64

	// Gravity-following enemies.
	Friction float64
	MaxSpeed float64
}

// BoostConfig contains the player dash values
type BoostConfig struct {
	Impulse       float64
	CooldownTicks int
}

// TickConfig contains simulation timing
type TickConfig struct {
	Rate int // ticks per second

	LevelCompleteFrames int
	HazardFlashFrames   int
}

// Seconds returns the simulated length of one tick.
func (t TickConfig) Seconds() float64 {
	return 1 / float64(t.Rate)
}

// HUDConfig contains HUD layout and text
type HUDConfig struct {
	FontSize   float64
	Margin     float64
	LineHeight float64
	HelpText   string
}

// InputConfig contains device thresholds for the input glue.
type InputConfig struct {
	SwipeThreshold float64 // pixels
	AnalogDeadzone float64 // 0.0 to 1.0
	// The right stick is read as a tilt sensor: full deflection is MaxTilt
	// degrees and TiltDeadzone degrees are ignored.
	MaxTilt      float64
	TiltDeadzone float64
}

// PaletteConfig contains render colors
type PaletteConfig struct {
	Background   color.RGBA
	Wall         color.RGBA
	Hazard       color.RGBA
	Item         color.RGBA
	GoalClosed   color.RGBA
	GoalOpen     color.RGBA
	Enemy        color.RGBA
	Player       color.RGBA
	PlayerInvuln color.RGBA
	HazardFlash  color.RGBA
	Text         color.RGBA
	Overlay      color.RGBA
}

var World WorldConfig
var Gravity GravityConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Boost BoostConfig
var Tick TickConfig
var HUD HUDConfig
var Input InputConfig
var Palette PaletteConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	DarkGreen    = color.RGBA{R: 20, G: 90, B: 40, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Slate        = color.RGBA{R: 18, G: 20, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	World = WorldConfig{
		Width:    240,
		Height:   282,
		CellSize: 6,
		Scale:    2,
	}

	Gravity = GravityConfig{
		Strength: 0.5,
	}

	Player = PlayerConfig{
		Width:               14,
		Height:              18,
		Friction:            0.9,
		MaxSpeed:            6,
		RespawnInvulnFrames: 30,
	}

	Enemy = EnemyConfig{
		Width:          12,
		Height:         12,
		PatrolDistance: 40,
		PatrolPeriod:   2,
		Friction:       0.9,
		MaxSpeed:       4,
	}

	Boost = BoostConfig{
		Impulse:       1.5,
		CooldownTicks: 30,
	}

	Tick = TickConfig{
		Rate:                60,
		LevelCompleteFrames: 48, // 800ms
		HazardFlashFrames:   7,  // 120ms
	}

	HUD = HUDConfig{
		FontSize:   8,
		Margin:     4,
		LineHeight: 10,
		HelpText:   "Space Boost  R Restart  P Pause  M Mute",
	}

	Input = InputConfig{
		SwipeThreshold: 12,
		AnalogDeadzone: 0.25,
		MaxTilt:        90,
		TiltDeadzone:   10,
	}

	Palette = PaletteConfig{
		Background:   Slate,
		Wall:         DarkBlue,
		Hazard:       Red,
		Item:         Yellow,
		GoalClosed:   DarkGreen,
		GoalOpen:     BrightGreen,
		Enemy:        Purple,
		Player:       White,
		PlayerInvuln: LightBlue,
		HazardFlash:  LightRed,
		Text:         White,
		Overlay:      BlackOverlay,
	}
}
