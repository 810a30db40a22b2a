// Package game composes the snake rules, a scheduler and a best-score store
// into a start/pause/restart state machine that hosts drive with actions and
// observe through events.
package game

import (
	"io"
	"math/rand"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/scheduler"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configures a Controller. Zero fields take defaults.
type Options struct {
	// Config with a spawn set is expected to have passed config.Validate.
	Config    core.RuntimeConfig
	Scheduler scheduler.Scheduler // Defaults to a wall-clock Ticker
	Best      BestScoreStore      // Defaults to an in-memory store
	Logger    *log.Logger         // Defaults to discarding output
	Rand      *rand.Rand          // Defaults to a source seeded with Config.Seed
}

type subscription struct {
	id int
	fn Listener
}

// Controller owns one game session. All methods are safe for concurrent use;
// ticks and input are serialized by a single mutex.
type Controller struct {
	mu        sync.Mutex
	cfg       core.RuntimeConfig
	grid      core.Grid
	placer    *snake.FoodPlacer
	sched     scheduler.Scheduler
	bestStore BestScoreStore
	logger    *log.Logger

	actor  *snake.Actor
	food   core.Point
	status Status
	best   int
	tick   uint64
	gen    uint64 // bumped on every scheduler start and on Close

	listeners []subscription
	nextSubID int
}

// NewController creates a session in StatusNotStarted with a freshly reset
// board, so a host can draw it before the first Start.
func NewController(opts Options) *Controller {
	cfg := withDefaults(opts.Config)

	sched := opts.Scheduler
	if sched == nil {
		sched = scheduler.NewTicker()
	}
	best := opts.Best
	if best == nil {
		best = NewMemoryBest(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	grid := core.NewGrid(cfg.GridSize)
	c := &Controller{
		cfg:       cfg,
		grid:      grid,
		placer:    snake.NewFoodPlacer(grid, rng),
		sched:     sched,
		bestStore: best,
		logger:    logger,
		status:    StatusNotStarted,
	}

	score, err := best.Get()
	if err != nil {
		logger.Warn("could not read best score", "error", err)
		score = 0
	}
	c.best = score

	c.resetLocked()
	return c
}

// withDefaults fills unset config fields from core.DefaultConfig. An unset
// spawn uses the default spawn when it fits the grid and is otherwise
// centered on the grid.
func withDefaults(cfg core.RuntimeConfig) core.RuntimeConfig {
	def := core.DefaultConfig()
	if cfg.GridSize <= 0 {
		cfg.GridSize = def.GridSize
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.ScorePerFood <= 0 {
		cfg.ScorePerFood = def.ScorePerFood
	}
	if cfg.SpawnLength <= 0 {
		cfg.SpawnLength = def.SpawnLength
		cfg.Spawn = def.Spawn
		grid := core.NewGrid(cfg.GridSize)
		tail := core.Point{X: cfg.Spawn.X - (cfg.SpawnLength - 1), Y: cfg.Spawn.Y}
		if !grid.Contains(cfg.Spawn) || !grid.Contains(tail) {
			mid := cfg.GridSize / 2
			cfg.Spawn = core.Point{X: max(mid, cfg.SpawnLength-1), Y: mid}
		}
	}
	return cfg
}

// Subscribe registers fn for future events and returns a function that
// removes it.
func (c *Controller) Subscribe(fn Listener) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.listeners = append(c.listeners, subscription{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.listeners = slices.DeleteFunc(c.listeners, func(s subscription) bool {
			return s.id == id
		})
	}
}

// do runs fn under the lock and delivers the events it returns after the
// lock is released.
func (c *Controller) do(fn func() []Event) {
	c.mu.Lock()
	events := fn()
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, ev := range events {
		for _, l := range listeners {
			l.fn(ev)
		}
	}
}

// Start begins a new game from NotStarted or Over. It does nothing while a
// game is running or paused.
func (c *Controller) Start() {
	c.do(func() []Event {
		if c.status == StatusRunning || c.status == StatusPaused {
			return nil
		}
		return c.beginLocked()
	})
}

// Restart begins a new game from any state, always resetting the board.
func (c *Controller) Restart() {
	c.do(c.beginLocked)
}

// TogglePause switches between Running and Paused. It does nothing in other
// states.
func (c *Controller) TogglePause() {
	c.do(c.togglePauseLocked)
}

func (c *Controller) togglePauseLocked() []Event {
	switch c.status {
	case StatusRunning:
		c.sched.Stop()
		return []Event{c.setStatusLocked(StatusPaused)}
	case StatusPaused:
		ev := c.setStatusLocked(StatusRunning)
		c.startTimerLocked()
		return []Event{ev}
	default:
		return nil
	}
}

// RequestDirection buffers a turn for the next tick. It is ignored unless the
// game is running, and reports whether the request was accepted.
func (c *Controller) RequestDirection(d snake.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusRunning {
		return false
	}
	return c.actor.RequestDirection(d)
}

// Apply routes an input action to the matching control. Actions the game
// does not handle are ignored.
func (c *Controller) Apply(action core.Action) {
	switch action {
	case core.ActionUp:
		c.RequestDirection(snake.DirUp)
	case core.ActionDown:
		c.RequestDirection(snake.DirDown)
	case core.ActionLeft:
		c.RequestDirection(snake.DirLeft)
	case core.ActionRight:
		c.RequestDirection(snake.DirRight)
	case core.ActionPause:
		c.TogglePause()
	case core.ActionStart:
		c.Start()
	case core.ActionRestart:
		c.Restart()
	}
}

// Status returns the current state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Snapshot returns a copy of the current board.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Config returns the settings the session runs with.
func (c *Controller) Config() core.RuntimeConfig {
	return c.cfg
}

// Close stops the scheduler and drops all listeners. The controller must not
// be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sched.Stop()
	c.gen++
	c.listeners = nil
}

// startTimerLocked starts the scheduler with a callback bound to a new
// generation. A tick already in flight from an earlier timer may still reach
// tickLocked after Stop; its generation no longer matches and it is dropped.
func (c *Controller) startTimerLocked() {
	c.gen++
	gen := c.gen
	c.sched.Start(c.cfg.TickInterval, func() {
		c.do(func() []Event { return c.tickLocked(gen) })
	})
}

func (c *Controller) tickLocked(gen uint64) []Event {
	if gen != c.gen || c.status != StatusRunning {
		return nil
	}
	c.tick++

	res := c.actor.Tick(c.grid, c.placer, c.food)
	if res.Collided() {
		c.sched.Stop()
		ev := c.setStatusLocked(StatusOver)
		c.logger.Info("game over",
			"score", c.actor.Score(),
			"collision", res.Collision,
			"length", c.actor.Len(),
			"tick", c.tick,
		)
		return []Event{ev, GameOverEvent{
			Score:     c.actor.Score(),
			Length:    c.actor.Len(),
			Collision: res.Collision,
		}}
	}

	var events []Event
	if res.Ate {
		c.food = res.Food
		score := c.actor.Score()
		c.logger.Debug("food eaten", "score", score, "length", c.actor.Len(), "next", res.Food)

		if score > c.best {
			prev := c.best
			c.best = score
			if err := c.bestStore.Set(score); err != nil {
				c.logger.Warn("could not save best score", "score", score, "error", err)
			}
			events = append(events, NewBestEvent{Previous: prev, Score: score})
		}
	}

	return append(events, SnapshotEvent{Snapshot: c.snapshotLocked()})
}

// beginLocked resets the board and moves to Running.
func (c *Controller) beginLocked() []Event {
	c.sched.Stop()
	c.resetLocked()
	ev := c.setStatusLocked(StatusRunning)
	c.startTimerLocked()
	return []Event{ev, SnapshotEvent{Snapshot: c.snapshotLocked()}}
}

// resetLocked recreates the snake, score and food.
func (c *Controller) resetLocked() {
	c.actor = snake.NewActor(c.cfg.Spawn, c.cfg.SpawnLength, snake.DirRight, c.cfg.ScorePerFood)
	c.food = c.placer.Place(c.actor.Occupied())
	c.tick = 0
}

func (c *Controller) setStatusLocked(to Status) Event {
	from := c.status
	c.status = to
	c.logger.Debug("status changed", "from", from, "to", to)
	return StatusEvent{From: from, To: to}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Tick:      c.tick,
		Status:    c.status,
		Body:      c.actor.Body(),
		Food:      c.food,
		Score:     c.actor.Score(),
		BestScore: c.best,
		Direction: c.actor.Direction(),
		GridSize:  c.cfg.GridSize,
	}
}

