package arcade

import "math/rand"

// EndCause describes how a run ended
type EndCause string

const (
	// CauseMeteorStrike means the ship collided with a meteoroid
	CauseMeteorStrike EndCause = "meteor_strike"
	// CausePlayerQuit means the player returned to the menu mid-run
	CausePlayerQuit EndCause = "player_quit"
)

// World is the complete simulation state of one run. It is pure: it knows
// nothing about rendering, input devices or persistence, and advances only
// through Update and Abort.
type World struct {
	cfg Config
	rng *rand.Rand

	ship       *Ship
	bullets    []*Bullet
	meteoroids []*Meteoroid
	exploding  []*Meteoroid

	score int64
	ticks int

	speed          float64
	spawnInterval  int
	spawnCountdown int
	difficultyLeft int

	lastShotTick int

	over  bool
	cause EndCause
}

// NewWorld creates a run with the given tunables
func NewWorld(cfg Config, rng *rand.Rand) *World {
	return &World{
		cfg:            cfg,
		rng:            rng,
		ship:           NewShip(cfg.Width, cfg.Height),
		speed:          cfg.MeteoroidSpeed,
		spawnInterval:  cfg.SpawnInterval,
		spawnCountdown: cfg.SpawnInterval,
		difficultyLeft: cfg.DifficultyInterval,
	}
}

// Update advances the world by one tick. It is a no-op once the run is over.
func (w *World) Update(in Input) {
	if w.over {
		return
	}

	w.ticks++
	w.score += w.cfg.SurvivalPoints

	w.advanceSchedules()
	w.ship.Move(in, w.cfg.PlayerSpeed, w.cfg.Width, w.cfg.Height)
	w.ship.AdvanceAnimation()

	if in.Shoot && w.ticks-w.lastShotTick > w.cfg.ShotCooldown {
		w.lastShotTick = w.ticks
		w.bullets = append(w.bullets, w.ship.Shoot())
	}

	w.moveProjectiles()
	w.resolveCollisions()
	if w.over {
		return
	}
	w.reapOffscreen()
}

// advanceSchedules drives the spawn and difficulty timers
func (w *World) advanceSchedules() {
	w.difficultyLeft--
	if w.difficultyLeft <= 0 {
		w.difficultyLeft = w.cfg.DifficultyInterval
		w.speed += w.cfg.SpeedIncrement
		if w.spawnInterval > w.cfg.MinSpawnInterval {
			w.spawnInterval -= w.cfg.SpawnIntervalStep
		}
		// The spawn timer restarts with the tightened interval
		w.spawnCountdown = w.spawnInterval
	}

	w.spawnCountdown--
	if w.spawnCountdown <= 0 {
		w.spawnCountdown = w.spawnInterval
		w.meteoroids = append(w.meteoroids, SpawnMeteoroid(w.rng, w.cfg.Width, w.cfg.Height))
	}
}

// moveProjectiles moves bullets and meteoroids and advances explosions
func (w *World) moveProjectiles() {
	for _, b := range w.bullets {
		b.Move(w.cfg.BulletSpeed)
	}
	for _, m := range w.meteoroids {
		m.Move(w.speed)
	}

	kept := w.exploding[:0]
	for _, m := range w.exploding {
		if m.AdvanceExplosion(w.cfg.ExplosionFrames) {
			continue
		}
		m.Move(w.speed)
		kept = append(kept, m)
	}
	w.exploding = kept
}

// resolveCollisions checks ship strikes and bullet hits
func (w *World) resolveCollisions() {
	for _, m := range w.meteoroids {
		if w.ship.Rect.Intersects(m.Rect) {
			w.end(CauseMeteorStrike)
			return
		}
	}

	liveMeteoroids := w.meteoroids[:0]
	for _, m := range w.meteoroids {
		hit := false
		liveBullets := w.bullets[:0]
		for _, b := range w.bullets {
			if !hit && m.Rect.Intersects(b.Rect) {
				hit = true
				continue
			}
			liveBullets = append(liveBullets, b)
		}
		w.bullets = liveBullets

		if hit {
			m.Hit()
			w.exploding = append(w.exploding, m)
			w.score += w.cfg.KillPoints
		} else {
			liveMeteoroids = append(liveMeteoroids, m)
		}
	}
	w.meteoroids = liveMeteoroids
}

// reapOffscreen removes bullets and meteoroids that left the play field
func (w *World) reapOffscreen() {
	bullets := w.bullets[:0]
	for _, b := range w.bullets {
		if !b.Offscreen(w.cfg.Width) {
			bullets = append(bullets, b)
		}
	}
	w.bullets = bullets

	meteoroids := w.meteoroids[:0]
	for _, m := range w.meteoroids {
		if !m.Offscreen() {
			meteoroids = append(meteoroids, m)
		}
	}
	w.meteoroids = meteoroids
}

// Abort ends the run on the player's request. The score still counts.
func (w *World) Abort() {
	if w.over {
		return
	}
	w.end(CausePlayerQuit)
}

func (w *World) end(cause EndCause) {
	w.over = true
	w.cause = cause
}

// Over reports whether the run has ended
func (w *World) Over() bool {
	return w.over
}

// Cause returns how the run ended. Only meaningful once Over is true.
func (w *World) Cause() EndCause {
	return w.cause
}

// Score returns the current score
func (w *World) Score() int64 {
	return w.score
}

// Ticks returns the number of simulated ticks
func (w *World) Ticks() int {
	return w.ticks
}

// Ship returns the player ship
func (w *World) Ship() *Ship {
	return w.ship
}

// Bullets returns the live bullets
func (w *World) Bullets() []*Bullet {
	return w.bullets
}

// Meteoroids returns the intact meteoroids
func (w *World) Meteoroids() []*Meteoroid {
	return w.meteoroids
}

// Exploding returns the meteoroids currently playing their explosion
func (w *World) Exploding() []*Meteoroid {
	return w.exploding
}

// Speed returns the current meteoroid speed
func (w *World) Speed() float64 {
	return w.speed
}

// SpawnInterval returns the current spawn interval in ticks
func (w *World) SpawnInterval() int {
	return w.spawnInterval
}
