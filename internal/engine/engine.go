// Package engine orchestrates the runner simulation: the fixed-timestep
// loop, game state, entity spawning and recycling, collision resolution,
// difficulty pacing, and the event surface consumed by the platform layer.
// All engine operations are synchronous; the loop never awaits anything.
package engine

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pixelhop/runner-arcade/internal/audio"
	"github.com/pixelhop/runner-arcade/internal/caps"
	"github.com/pixelhop/runner-arcade/internal/difficulty"
	"github.com/pixelhop/runner-arcade/internal/entity"
	"github.com/pixelhop/runner-arcade/internal/input"
	"github.com/pixelhop/runner-arcade/internal/particles"
	"github.com/pixelhop/runner-arcade/internal/physics"
	"github.com/pixelhop/runner-arcade/internal/render"
)

// scoreTickMs is how often survival time converts into one score point.
const scoreTickMs = 100.0

// speedBumpPoints and the speed increment implement the stepwise speed
// escalation: every 50 points the game speed rises by a fixed increment up
// to a hard cap. The smooth difficulty curve scales spawn rate only, so the
// two pacing paths never fight over the same knob.
const speedBumpPoints = 50

// playerX is the fixed column the runner occupies; the world scrolls past.
const playerX = 5.0

// HighScoreStore persists the single best-score value. Implementations may
// fail freely; the engine degrades every store error to a no-op.
type HighScoreStore interface {
	HighScore() (int, error)
	SaveScore(score int) error
	ResetHighScore() error
}

// Config is the engine construction configuration.
type Config struct {
	Width  int
	Height int
	// GroundOffset is how many rows above the bottom edge the ground line sits.
	GroundOffset int

	Physics   physics.Config
	JumpPower float64 // Upward jump impulse (negative = up)

	BaseSpeed      float64
	SpeedIncrement float64 // Added per speedBumpPoints of score
	MaxSpeed       float64

	// SpawnChance and CollectChance are base per-step spawn probabilities,
	// scaled by the difficulty spawn multiplier.
	SpawnChance   float64
	CollectChance float64

	Difficulty difficulty.Params

	ObstaclePool    int
	CollectiblePool int
	ParticleCap     int
	ParticleGravity float64

	Seed int64

	// Headless disables the render path entirely; Render becomes a no-op.
	Headless bool
	Render   render.Flags

	AudioEnabled bool
	Volume       float64

	// OnScore is the optional score-changed callback, invoked synchronously
	// on every score mutation alongside the score event.
	OnScore func(score int)

	// Caps supplies host capability answers; nil uses the real host.
	Caps caps.Query
	// Clock supplies the wall clock; nil uses time.Now. Injected by tests.
	Clock func() time.Time
}

// DefaultConfig returns the stock runner tuning for a width×height viewport.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		GroundOffset:    3,
		Physics:         physics.DefaultConfig(),
		JumpPower:       -2.6,
		BaseSpeed:       1.0,
		SpeedIncrement:  0.15,
		MaxSpeed:        2.5,
		SpawnChance:     0.02,
		CollectChance:   0.008,
		Difficulty:      difficulty.DefaultParams(),
		ObstaclePool:    12,
		CollectiblePool: 8,
		ParticleCap:     120,
		ParticleGravity: 14,
		Seed:            time.Now().UnixNano(),
		AudioEnabled:    true,
		Volume:          0.8,
	}
}

// Engine owns the simulation. It is single-threaded by design: the platform
// layer drives Tick from its frame callback, and public mutators are called
// synchronously from the same goroutine.
type Engine struct {
	cfg    Config
	logger *log.Logger
	clock  func() time.Time

	loop   *Loop
	events *dispatcher
	rng    *rand.Rand

	input     *input.Controller
	synth     *audio.Synth
	renderer  *render.Renderer
	store     HighScoreStore
	curve     *difficulty.Curve
	player    *entity.Player
	obstacles *entity.Pool
	collect   *entity.Pool
	particles *particles.System

	initialized bool
	running     bool
	paused      bool
	gameOver    bool
	score       int
	speed       float64
	frame       uint64
	elapsed     float64 // Seconds of unpaused simulation time
	distance    float64
	scoreAcc    float64 // Milliseconds toward the next survival point

	highScore int
	prevJump  bool
	groundY   float64

	lastTick time.Time
	fps      float64
}

// New creates an engine from cfg. logger and store may be nil: a nil store
// makes high-score persistence a silent no-op.
func New(cfg Config, logger *log.Logger, store HighScoreStore) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Caps == nil {
		cfg.Caps = caps.Host{}
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		cfg:    cfg,
		logger: logger,
		clock:  clock,
		loop:   NewLoop(),
		events: newDispatcher(logger),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		store:  store,
		speed:  cfg.BaseSpeed,
	}
}

// Initialize allocates the player and pools and wires the input and audio
// subsystems. Safe to call more than once; subsequent calls are no-ops.
func (e *Engine) Initialize() {
	if e.initialized {
		return
	}
	cfg := e.cfg

	e.groundY = float64(cfg.Height - cfg.GroundOffset)
	e.player = entity.NewPlayer(playerX, e.groundY, 3, 3, cfg.JumpPower)

	e.obstacles = entity.NewPool(func() *entity.Pooled {
		return &entity.Pooled{Entity: entity.NewEntity(entity.KindObstacle)}
	}, cfg.ObstaclePool/2, cfg.ObstaclePool)
	e.collect = entity.NewPool(func() *entity.Pooled {
		return &entity.Pooled{Entity: entity.NewEntity(entity.KindCollectible)}
	}, cfg.CollectiblePool/2, cfg.CollectiblePool)

	e.particles = particles.NewSystem(cfg.ParticleCap, cfg.ParticleGravity, cfg.Seed, cfg.Caps)
	e.curve = difficulty.NewCurve(cfg.Difficulty)

	e.input = input.NewController(e.clock, e.logger)
	e.input.On(input.ActionPause, func(input.Action) { e.Pause() })
	e.input.On(input.ActionStart, func(input.Action) { e.Start() })

	e.synth = audio.NewSynth(e.logger)
	e.synth.SetVolume(cfg.Volume)
	e.synth.SetMuted(!cfg.AudioEnabled)

	if !cfg.Headless {
		e.renderer = render.NewRenderer(cfg.Width, cfg.Height, cfg.Render)
	}

	e.highScore = e.loadHighScore()
	e.initialized = true
}

// Start transitions to running. A no-op while already running; starting
// after a game over resets first so play always begins from a clean
// baseline. The first Start is the user-gesture moment that resumes audio.
func (e *Engine) Start() {
	e.Initialize()
	if e.running {
		return
	}
	if e.gameOver {
		e.Reset()
	}

	if e.cfg.AudioEnabled {
		e.synth.Resume()
	}
	e.running = true
	e.paused = false
	e.loop.Start(e.clock())
	e.lastTick = e.clock()
	e.events.emit(Event{Type: EventGameStart, Score: e.score})
}

// Stop halts the simulation. The loop disarms, so no further steps are
// consumed after Stop returns.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.loop.Stop()
}

// Pause toggles between running and paused. Emits a pause event on every
// toggle; ignored while not running.
func (e *Engine) Pause() {
	if !e.running {
		return
	}
	e.paused = !e.paused
	if e.input != nil {
		e.input.SetPaused(e.paused)
	}
	e.events.emit(Event{Type: EventPause, Score: e.score})
}

// Reset returns the engine to the idle baseline: zero score, base speed,
// empty pools, the player back on the ground. Listeners survive.
func (e *Engine) Reset() {
	e.Initialize()

	e.gameOver = false
	e.paused = false
	e.frame = 0
	e.elapsed = 0
	e.distance = 0
	e.scoreAcc = 0
	e.prevJump = false

	e.player.ResetPosition()
	e.obstacles.ReleaseAll()
	e.collect.ReleaseAll()
	e.particles.Clear()
	e.curve.Reset()
	e.input.Reset()

	e.SetScore(0)
	e.events.emit(Event{Type: EventReset})
}

// Restart is stop (if running), reset, start: a clean score/speed/entity
// baseline regardless of prior state.
func (e *Engine) Restart() {
	e.Stop()
	e.Reset()
	e.Start()
}

// Destroy tears the engine down: stops the loop and closes the audio synth.
// The engine must not be used afterward.
func (e *Engine) Destroy() {
	e.Stop()
	if e.synth != nil {
		e.synth.Close()
	}
	e.initialized = false
}

// Tick advances the simulation to now, consuming due fixed steps, and
// returns the render interpolation alpha. The platform layer calls this once
// per display frame.
func (e *Engine) Tick(now time.Time) (alpha float64) {
	if !e.lastTick.IsZero() {
		frameMs := now.Sub(e.lastTick).Seconds() * 1000
		if frameMs > 0 {
			if e.particles != nil {
				e.particles.Observe(frameMs)
			}
			// Light smoothing keeps the HUD readout steady
			e.fps += 0.1 * (1000/frameMs - e.fps)
		}
	}
	e.lastTick = now

	steps, alpha := e.loop.Tick(now)
	for i := 0; i < steps; i++ {
		e.Update(StepMs)
	}
	return alpha
}

// Update advances one fixed simulation step of dtMs milliseconds: input,
// player physics, spawning, pooled entity motion, collisions, recycling,
// difficulty.
func (e *Engine) Update(dtMs float64) {
	if !e.initialized || !e.running || e.paused {
		return
	}

	e.frame++
	e.elapsed += dtMs / 1000
	step := dtMs / StepMs

	e.stepInput()
	e.stepPlayer(dtMs, step)
	e.stepSpawns()

	e.obstacles.UpdateAll(dtMs, e.speed)
	e.collect.UpdateAll(dtMs, e.speed)
	e.particles.Update(dtMs)

	e.distance += e.speed * step
	e.scoreAcc += dtMs
	for e.scoreAcc >= scoreTickMs {
		e.scoreAcc -= scoreTickMs
		e.AddScore(1)
	}

	e.resolveCollisions()

	w, h := float64(e.cfg.Width), float64(e.cfg.Height)
	e.obstacles.CleanupOffScreen(w, h)
	e.collect.CleanupOffScreen(w, h)

	e.curve.Compute(e.elapsed, float64(e.score))
}

// stepInput reads the command snapshot and edge-triggers the jump.
func (e *Engine) stepInput() {
	st := e.input.Snapshot()
	if st.Jump && !e.prevJump {
		if e.player.Jump(e.cfg.Physics) {
			e.synth.PlayJump()
			e.particles.EmitJump(e.player.X+e.player.W/2, e.groundY)
		}
	}
	e.prevJump = st.Jump
}

// stepPlayer integrates gravity while airborne and lands on the ground line.
func (e *Engine) stepPlayer(dtMs, step float64) {
	p := e.player
	if p.OnGround(e.cfg.Physics) && p.VY >= 0 {
		p.Land()
		return
	}
	p.VY = e.cfg.Physics.ApplyGravity(p.VY, dtMs)
	p.Y += p.VY * step
	if p.Y+p.H >= e.groundY {
		p.Land()
	}
}

// stepSpawns rolls the per-step spawn chances, scaled by the difficulty
// spawn multiplier. Pool exhaustion silently skips the spawn.
func (e *Engine) stepSpawns() {
	mult := e.curve.SpawnMultiplier()

	if e.rng.Float64() < e.cfg.SpawnChance*mult && e.obstacleGapClear() {
		e.spawnObstacle()
	}
	if e.rng.Float64() < e.cfg.CollectChance*mult {
		e.spawnCollectible()
	}
}

// obstacleGapClear keeps obstacles jumpable: no new hazard spawns while the
// newest one is still near the right edge.
func (e *Engine) obstacleGapClear() bool {
	minGap := 14.0
	clear := true
	e.obstacles.ForEachActive(func(o *entity.Pooled) {
		if o.X > float64(e.cfg.Width)-minGap {
			clear = false
		}
	})
	return clear
}

func (e *Engine) spawnObstacle() {
	o := e.obstacles.Acquire()
	if o == nil {
		return
	}
	o.Subtype = entity.ObstacleCactus
	o.W, o.H = 2, 2+float64(e.rng.Intn(2))
	if e.rng.Float64() < 0.3 {
		o.Subtype = entity.ObstacleRock
		o.W, o.H = 3, 2
	}
	o.X = float64(e.cfg.Width)
	o.Y = e.groundY - o.H
	o.VX = -1
}

func (e *Engine) spawnCollectible() {
	c := e.collect.Acquire()
	if c == nil {
		return
	}
	c.Subtype = entity.CollectibleCoin
	if e.rng.Float64() < 0.2 {
		c.Subtype = entity.CollectibleGem
	}
	c.W, c.H = 1, 1
	c.X = float64(e.cfg.Width)
	// Jump-reachable band above the ground
	c.Y = e.groundY - 3 - float64(e.rng.Intn(5))
	c.VX = -1
}

// resolveCollisions tests the player against both pools. An obstacle hit
// ends the run; a collectible awards points and recycles its slot.
func (e *Engine) resolveCollisions() {
	pb := e.player.Bounds()

	hit := false
	e.obstacles.ForEachActive(func(o *entity.Pooled) {
		if physics.Overlaps(pb, o.Bounds()) {
			hit = true
		}
	})
	if hit {
		e.endRun()
		return
	}

	var collected []*entity.Pooled
	e.collect.ForEachActive(func(c *entity.Pooled) {
		if physics.Overlaps(pb, c.Bounds()) {
			collected = append(collected, c)
		}
	})
	for _, c := range collected {
		e.collectItem(c)
	}
}

func (e *Engine) collectItem(c *entity.Pooled) {
	points := entity.CollectiblePoints(c.Subtype)
	cx, cy := c.Bounds().Center()
	e.collect.Release(c)

	e.AddScore(points)
	e.events.emit(Event{Type: EventCollect, Points: points, X: cx, Y: cy})
	e.synth.PlayCollect()
	e.particles.EmitCollect(cx, cy)
}

// endRun forces the stopped state and fires the game-over side effects
// exactly once: event, audio, particles, collision flash, high-score save.
func (e *Engine) endRun() {
	if e.gameOver {
		return
	}
	e.gameOver = true
	e.running = false
	e.paused = false
	e.loop.Stop()

	cx, cy := e.player.Bounds().Center()
	e.events.emit(Event{Type: EventGameOver, Score: e.score})
	e.synth.PlayGameOver()
	e.particles.EmitGameOver(cx, cy)
	if e.renderer != nil {
		e.renderer.Flash(3)
	}
	e.saveHighScore()
}

// Render draws one frame from current state without mutating the
// simulation. Calling it before Initialize is a programming error and
// panics; headless engines return nil.
func (e *Engine) Render(alpha float64) *render.Screen {
	if !e.initialized {
		panic("engine: render called before initialize")
	}
	if e.renderer == nil {
		return nil
	}
	return e.renderer.Draw(render.Frame{
		Player:       e.player,
		Obstacles:    e.obstacles,
		Collectibles: e.collect,
		Particles:    e.particles,
		Score:        e.score,
		HighScore:    e.highScore,
		Speed:        e.speed,
		FPS:          e.fps,
		Alpha:        alpha,
		GroundY:      e.groundY,
		Distance:     e.distance,
		Running:      e.running,
		Paused:       e.paused,
		GameOver:     e.gameOver,
	})
}

// Resize adjusts the viewport and moves the ground reference.
func (e *Engine) Resize(width, height int) {
	e.cfg.Width = width
	e.cfg.Height = height
	if !e.initialized {
		return
	}
	e.groundY = float64(height - e.cfg.GroundOffset)
	e.player.SetGroundY(e.groundY)
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
}

// AddScore adds points to the score through the single notification path.
func (e *Engine) AddScore(points int) {
	e.SetScore(e.score + points)
}

// SetScore sets the score, clamping negatives to zero, recomputes the
// stepwise speed escalation, and notifies. Every mutating call fires exactly
// one notification, even when the value is unchanged.
func (e *Engine) SetScore(value int) {
	if value < 0 {
		value = 0
	}
	e.score = value

	speed := e.cfg.BaseSpeed + e.cfg.SpeedIncrement*float64(value/speedBumpPoints)
	if speed > e.cfg.MaxSpeed {
		speed = e.cfg.MaxSpeed
	}
	e.speed = speed

	e.notifyScore()
}

// notifyScore is the single path every score mutation routes through: the
// registered callback and the score event fire together, so surrounding UI
// state can never diverge from the engine's.
func (e *Engine) notifyScore() {
	if e.cfg.OnScore != nil {
		e.invokeScoreCallback()
	}
	e.events.emit(Event{Type: EventScore, Score: e.score})
}

func (e *Engine) invokeScoreCallback() {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("score callback panicked", "panic", r)
		}
	}()
	e.cfg.OnScore(e.score)
}

// SetScoreChangeCallback replaces the score-changed callback. It fires on
// every subsequent score mutation. A nil callback disables it.
func (e *Engine) SetScoreChangeCallback(fn func(score int)) {
	e.cfg.OnScore = fn
}

// SetGameSpeed sets the speed scalar directly, clamped to [0, MaxSpeed].
// The next score mutation recomputes it from the score again.
func (e *Engine) SetGameSpeed(v float64) {
	if v < 0 {
		v = 0
	}
	if v > e.cfg.MaxSpeed {
		v = e.cfg.MaxSpeed
	}
	e.speed = v
}

// HighScore returns the persisted best score; store failures degrade to the
// last known value.
func (e *Engine) HighScore() int {
	if e.store == nil {
		return e.highScore
	}
	v, err := e.store.HighScore()
	if err != nil {
		e.logger.Warn("high score read failed", "error", err)
		return e.highScore
	}
	e.highScore = v
	return v
}

// ResetHighScore clears the persisted best score. Store failures are
// logged, never raised.
func (e *Engine) ResetHighScore() {
	e.highScore = 0
	if e.store == nil {
		return
	}
	if err := e.store.ResetHighScore(); err != nil {
		e.logger.Warn("high score reset failed", "error", err)
	}
}

func (e *Engine) loadHighScore() int {
	if e.store == nil {
		return 0
	}
	v, err := e.store.HighScore()
	if err != nil {
		e.logger.Warn("high score unavailable, starting from zero", "error", err)
		return 0
	}
	return v
}

func (e *Engine) saveHighScore() {
	if e.score > e.highScore {
		e.highScore = e.score
	}
	if e.store == nil {
		return
	}
	if err := e.store.SaveScore(e.score); err != nil {
		e.logger.Warn("high score save failed", "error", err)
	}
}

// AddEventListener subscribes a handler to an event type and returns a
// subscription id for removal.
func (e *Engine) AddEventListener(t EventType, fn Handler) int {
	return e.events.subscribe(t, fn)
}

// RemoveEventListener removes a subscription by id.
func (e *Engine) RemoveEventListener(t EventType, id int) {
	e.events.unsubscribe(t, id)
}

// Input exposes the input controller for the platform layer to feed.
func (e *Engine) Input() *input.Controller {
	return e.input
}

// Audio exposes the synth for volume and mute controls.
func (e *Engine) Audio() *audio.Synth {
	return e.synth
}

// Difficulty exposes the pacing curve, e.g. for the override test hook.
func (e *Engine) Difficulty() *difficulty.Curve {
	return e.curve
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Speed returns the current game speed scalar.
func (e *Engine) Speed() float64 { return e.speed }

// Running reports whether the simulation is running.
func (e *Engine) Running() bool { return e.running }

// Paused reports whether the simulation is paused.
func (e *Engine) Paused() bool { return e.paused }

// GameOver reports whether the last run ended in a collision.
func (e *Engine) GameOver() bool { return e.gameOver }

// Frame returns the monotonic simulation step counter.
func (e *Engine) Frame() uint64 { return e.frame }

// State is a point-in-time snapshot of the run, safe to hold across steps.
type State struct {
	Running  bool
	Paused   bool
	GameOver bool
	Score    int
	Speed    float64
	Frame    uint64
}

// State returns a snapshot of the current run state.
func (e *Engine) State() State {
	return State{
		Running:  e.running,
		Paused:   e.paused,
		GameOver: e.gameOver,
		Score:    e.score,
		Speed:    e.speed,
		Frame:    e.frame,
	}
}

// Distance returns the total scrolled distance of the current run.
func (e *Engine) Distance() float64 { return e.distance }

// Elapsed returns the unpaused play time of the current run in seconds.
func (e *Engine) Elapsed() float64 { return e.elapsed }

// Player exposes the player entity read-only for tests and tooling.
func (e *Engine) Player() *entity.Player { return e.player }
