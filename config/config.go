package config

import (
	"image/color"
	"math"
)

// ProjectileKind names a projectile type. Levels list kinds in launch order.
type ProjectileKind string

const (
	ProjectileRed  ProjectileKind = "red"
	ProjectileBomb ProjectileKind = "bomb"
)

// BlockSize names one of the fixed block heights.
type BlockSize string

const (
	BlockSmall  BlockSize = "small"
	BlockMedium BlockSize = "medium"
	BlockLarge  BlockSize = "large"
)

// Block orientations in radians.
const (
	AngleVertical      = 0.0
	AngleHorizontal    = math.Pi / 2
	AngleRightDiagonal = math.Pi / 4
	AngleLeftDiagonal  = 3 * math.Pi / 4
)

// Config holds the logical screen size. The playfield uses the same coordinates.
type Config struct {
	Width  int
	Height int
}

// WindowConfig contains window setup values
type WindowConfig struct {
	Title string
	Scale float64
}

// PhysicsConfig contains rigid-body world settings. Units are pixels and seconds, y grows down.
type PhysicsConfig struct {
	Gravity            float64
	Damping            float64 // Fraction of velocity kept after one second
	Iterations         uint
	SleepTimeThreshold float64
	IdleSpeedThreshold float64
	CollisionSlop      float64
	TicksPerSecond     int
}

// EntityConfig contains values shared by every gameplay entity
type EntityConfig struct {
	// DamageThresholdScalar turns mass into the impact (speed * mass) an entity survives.
	// 900 is 15 px/tick at 60 ticks per second.
	DamageThresholdScalar float64
}

// ProjectileTypeConfig contains configuration for one projectile kind
type ProjectileTypeConfig struct {
	Radius     float64
	Density    float64
	Elasticity float64
	Friction   float64
	Color      color.RGBA
}

// ProjectileConfig contains rules shared by every projectile kind
type ProjectileConfig struct {
	Default ProjectileKind
	Types   map[ProjectileKind]ProjectileTypeConfig

	// Projectiles share this group so they never collide with each other.
	Group uint

	// A launched projectile at or below both speeds is considered at rest.
	RestLinearSpeed  float64
	RestAngularSpeed float64
}

// BlockConfig contains fortress block configuration
type BlockConfig struct {
	Width      float64
	Heights    map[BlockSize]float64
	Density    float64
	Friction   float64
	Elasticity float64
	Color      color.RGBA
	Outline    color.RGBA
}

// TargetConfig contains configuration for the targets a level must clear
type TargetConfig struct {
	Radius     float64
	Density    float64
	Elasticity float64
	Friction   float64
	Color      color.RGBA
}

// GroundConfig contains the static floor configuration
type GroundConfig struct {
	Height     float64
	Friction   float64
	Elasticity float64
	Color      color.RGBA
}

// SlingshotConfig contains launcher configuration
type SlingshotConfig struct {
	AnchorX float64
	AnchorY float64

	// Sling spring, rest length 0.
	Stiffness float64
	Damping   float64

	// Horizontal distance past the anchor a released projectile must travel before launch.
	LaunchEpsilon float64

	PostColor color.RGBA
	PostWidth float64
	BandColor color.RGBA
	BandWidth float32
}

// TrajectoryConfig contains aiming preview configuration
type TrajectoryConfig struct {
	Points      int
	PointRadius float32
	// VelocityScalar approximates the spring release velocity as a fraction of the pull.
	// Tuned by eye, not derived.
	VelocityScalar float64
	Color          color.RGBA
}

// DragConfig contains pointer joint configuration
type DragConfig struct {
	MaxForce  float64
	ErrorBias float64
}

// PlayfieldConfig contains the off-screen culling setup
type PlayfieldConfig struct {
	// Entities are culled once they are this far past a horizontal edge.
	OffscreenMargin float64
	// Extra room around the playfield covered by the bounds space.
	BoundsPadding int
	CellSize      int
}

// QueueConfig contains waiting projectile display configuration
type QueueConfig struct {
	SlotOffsetX float64 // Distance from the anchor to the first slot
	SlotSpacing float64
	HopHeight   float64
	HopDuration float32 // Seconds
}

// HUDConfig contains on-screen counters configuration
type HUDConfig struct {
	X          int
	Y          int
	LineHeight int
	TextColor  color.RGBA
}

// OverlayConfig contains the Victory and Defeat screen configuration
type OverlayConfig struct {
	Title           string
	Hint            string
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	HintColor       color.RGBA
	TitleStartY     float32
	TitleY          float32
	HintY           int
	DropDuration    float32 // Seconds
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartLevel int    // Level entered first
	Enabled    bool   // Draw body outlines and counters
	Profile    string // "cpu" or "mem" enables profiling
	BodyColor  color.RGBA
	SleepColor color.RGBA
}

// Global configuration instances
var C *Config
var Window WindowConfig
var Physics PhysicsConfig
var Entity EntityConfig
var Projectile ProjectileConfig
var Block BlockConfig
var Target TargetConfig
var Ground GroundConfig
var Slingshot SlingshotConfig
var Trajectory TrajectoryConfig
var Drag DragConfig
var Playfield PlayfieldConfig
var Queue QueueConfig
var HUD HUDConfig
var Victory OverlayConfig
var Defeat OverlayConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Green        = color.RGBA{R: 90, G: 200, B: 60, A: 255}
	Brown        = color.RGBA{R: 120, G: 80, B: 40, A: 255}
	Wood         = color.RGBA{R: 190, G: 140, B: 80, A: 255}
	Sky          = color.RGBA{R: 140, G: 200, B: 240, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Translucent  = color.RGBA{R: 255, G: 255, B: 255, A: 160}
)

func init() {
	C = &Config{
		Width:  2000,
		Height: 720,
	}

	Window = WindowConfig{
		Title: "Slingfort",
		Scale: 0.6,
	}

	Physics = PhysicsConfig{
		Gravity:            1000,
		Damping:            0.7,
		Iterations:         20,
		SleepTimeThreshold: 0.5,
		IdleSpeedThreshold: 0, // 0 lets the engine derive it from gravity
		CollisionSlop:      0.5,
		TicksPerSecond:     60,
	}

	Entity = EntityConfig{
		DamageThresholdScalar: 900,
	}

	Projectile = ProjectileConfig{
		Default: ProjectileRed,
		Types: map[ProjectileKind]ProjectileTypeConfig{
			ProjectileRed: {
				Radius:     20,
				Density:    0.01,
				Elasticity: 0.8,
				Friction:   0.8,
				Color:      Red,
			},
			ProjectileBomb: {
				Radius:     26,
				Density:    0.015,
				Elasticity: 0.3,
				Friction:   0.9,
				Color:      DarkGray,
			},
		},
		Group:            1,
		RestLinearSpeed:  6,
		RestAngularSpeed: 0.3,
	}

	Block = BlockConfig{
		Width: 35,
		Heights: map[BlockSize]float64{
			BlockSmall:  70,
			BlockMedium: 110,
			BlockLarge:  220,
		},
		Density:    0.001,
		Friction:   1,
		Elasticity: 0.1,
		Color:      Wood,
		Outline:    Brown,
	}

	Target = TargetConfig{
		Radius:     20,
		Density:    0.0015,
		Elasticity: 0.5,
		Friction:   0.8,
		Color:      Green,
	}

	Ground = GroundConfig{
		Height:     70,
		Friction:   1,
		Elasticity: 0.5,
		Color:      Brown,
	}

	Slingshot = SlingshotConfig{
		AnchorX:       300,
		AnchorY:       500,
		Stiffness:     1800,
		Damping:       10,
		LaunchEpsilon: 3,
		PostColor:     Brown,
		PostWidth:     14,
		BandColor:     DarkGray,
		BandWidth:     5,
	}

	Trajectory = TrajectoryConfig{
		Points:         30,
		PointRadius:    6,
		VelocityScalar: 0.8,
		Color:          Translucent,
	}

	Drag = DragConfig{
		MaxForce:  5e6,
		ErrorBias: math.Pow(1-0.15, 60),
	}

	Playfield = PlayfieldConfig{
		OffscreenMargin: 40,
		BoundsPadding:   400,
		CellSize:        40,
	}

	Queue = QueueConfig{
		SlotOffsetX: 80,
		SlotSpacing: 55,
		HopHeight:   30,
		HopDuration: 0.35,
	}

	HUD = HUDConfig{
		X:          20,
		Y:          36,
		LineHeight: 28,
		TextColor:  White,
	}

	Victory = OverlayConfig{
		Title:           "LEVEL %d COMPLETE",
		Hint:            "Press Enter to continue",
		BackgroundColor: BlackOverlay,
		TitleColor:      Yellow,
		HintColor:       White,
		TitleStartY:     -60,
		TitleY:          300,
		HintY:           400,
		DropDuration:    0.6,
	}

	Defeat = OverlayConfig{
		Title:           "GAME OVER",
		Hint:            "Press Enter to restart",
		BackgroundColor: BlackOverlay,
		TitleColor:      Red,
		HintColor:       White,
		TitleStartY:     -60,
		TitleY:          300,
		HintY:           400,
		DropDuration:    0.6,
	}

	Debug = DebugConfig{
		StartLevel: 1,
		BodyColor:  Magenta,
		SleepColor: LightBlue,
	}
}
