package arcade

import "time"

// TickRate is the fixed simulation rate. The world advances in steps of
// 1/60s regardless of rendering.
const TickRate = 60

// Sprite geometry. The ship hitbox matches the ship image, bullets and
// meteoroids use hitboxes smaller than their sprites.
const (
	ShipWidth       = 118
	ShipHeight      = 75
	BulletWidth     = 15
	BulletHeight    = 12
	MeteoroidWidth  = 38
	MeteoroidHeight = 33

	// Meteoroids spawn at a random height this far away from both window edges
	spawnMargin = 33

	// Guard margin for the ship movement bound checks
	moveBoundMargin = 50

	// Bullets and meteoroids are reaped this far past the window edges,
	// so despawning happens out of sight. The reap zones act like walls
	// of this width, which shifts the meteoroid threshold inward.
	reapMargin    = 96
	reapWallWidth = 11

	// Exhaust animation frames per set (thrusting and idle)
	ExhaustFrames = 4
)

// Config holds the tunables of a run. Intervals are tick counts.
type Config struct {
	Width  float64
	Height float64

	PlayerSpeed  float64
	BulletSpeed  float64
	ShotCooldown int

	MeteoroidSpeed     float64
	SpawnInterval      int
	MinSpawnInterval   int
	DifficultyInterval int
	SpeedIncrement     float64
	SpawnIntervalStep  int

	SurvivalPoints int64
	KillPoints     int64

	// ExplosionFrames is the length of the meteoroid animation, frame 0
	// being the intact sprite. Comes from the loaded asset set.
	ExplosionFrames int
}

// Ticks converts a wall-clock duration to simulation ticks
func Ticks(d time.Duration) int {
	return int(d * TickRate / time.Second)
}

// DefaultConfig returns the standard tunables
func DefaultConfig() Config {
	return Config{
		Width:              1280,
		Height:             720,
		PlayerSpeed:        3,
		BulletSpeed:        5,
		ShotCooldown:       Ticks(500 * time.Millisecond),
		MeteoroidSpeed:     4,
		SpawnInterval:      Ticks(1500 * time.Millisecond),
		MinSpawnInterval:   Ticks(200 * time.Millisecond),
		DifficultyInterval: Ticks(15 * time.Second),
		SpeedIncrement:     0.25,
		SpawnIntervalStep:  Ticks(100 * time.Millisecond),
		SurvivalPoints:     1,
		KillPoints:         100,
		ExplosionFrames:    8,
	}
}
