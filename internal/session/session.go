// Package session owns the lifecycle of one play session: status, tick
// counter, best score and the queue of inputs waiting for the next tick.
//
// The game under a session holds only the rules. The session is the adapter
// that talks to the persistence port and the logger, so rules stay free of I/O.
package session

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/registry"
)

// RestartGrace is how long Jump and Confirm are ignored after a round ends,
// so a held flap cannot skip the result screen. Restart is never delayed.
const RestartGrace = 800 * time.Millisecond

// Status is the lifecycle state of a session.
type Status int

const (
	NotStarted Status = iota
	Running
	Paused
	Over
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// ScoreStore is the persistence port for best scores.
// A missing key reads as 0 with a nil error.
type ScoreStore interface {
	BestScore(ctx context.Context, game string) (int, error)
	SetBestScore(ctx context.Context, game string, score int) error
}

// ScoreRecorder is implemented by stores that also keep a score history.
type ScoreRecorder interface {
	SaveScore(ctx context.Context, game string, score int) error
}

// Snapshot is a copy of the session state for renderers and callers on
// other goroutines.
type Snapshot struct {
	GameID  string
	Title   string
	Status  Status
	Tick    uint64
	Round   int
	Score   int
	Best    int
	NewBest bool
	Outcome string
	Err     error // rule error of the latest step, nil when it went through
}

// Session drives one game instance. All methods are safe for concurrent use;
// Tick is the only one that advances the simulation.
type Session struct {
	mu sync.Mutex

	game   registry.Game
	store  ScoreStore
	logger *log.Logger
	cfg    core.RuntimeConfig

	status  Status
	tick    uint64
	round   int
	best    int
	newBest bool
	written bool // best score already handled for the current round
	pending core.InputFrame
	lastErr error
	grace   int // ticks left before Jump/Confirm may start the next round
}

// New creates a session in NotStarted and loads the best score once.
// store and logger may be nil.
func New(ctx context.Context, game registry.Game, store ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		game:   game,
		store:  store,
		logger: logger.With("game", game.ID()),
		cfg:    cfg,
		status: NotStarted,
	}

	if store != nil {
		best, err := store.BestScore(ctx, game.ID())
		if err != nil {
			s.logger.Warn("best score unavailable", "err", err)
		} else {
			s.best = best
		}
	}

	game.Reset(s.roundConfig())
	return s
}

// Game returns the game driven by this session.
func (s *Session) Game() registry.Game {
	return s.game
}

// Start begins a new round from NotStarted or Over. It is a no-op otherwise.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

// Pause suspends a running round if the game supports it.
// Pausing an already paused session leaves it paused.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == Running && s.canPause() {
		s.status = Paused
	}
}

// Resume continues a paused round. It is a no-op in any other status.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == Paused {
		s.status = Running
	}
}

// TogglePause flips between Running and Paused.
func (s *Session) TogglePause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.togglePauseLocked()
}

// Stop ends a running or paused round immediately, with the usual best score
// write-back.
func (s *Session) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == Running || s.status == Paused {
		s.finishLocked(ctx)
	}
}

// Queue records an input for the next tick.
func (s *Session) Queue(in core.Input) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Push(in)
}

// Tick drains the input queue, applies lifecycle inputs and, if the round is
// running, advances the game by one step. It reports whether a step ran.
func (s *Session) Tick(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rules := s.drainLocked(ctx)
	if s.status == Over && s.grace > 0 {
		s.grace--
	}
	if s.status != Running {
		return false
	}

	res := s.game.Step(rules)
	s.tick++

	s.lastErr = res.Err
	if res.Err != nil {
		if res.State.GameOver {
			s.logger.Error("round ended by rule error", "tick", s.tick, "err", res.Err)
		} else {
			s.logger.Debug("input rejected", "tick", s.tick, "err", res.Err)
		}
	}

	if res.State.GameOver {
		s.finishLocked(ctx)
	}
	return true
}

// Interval returns how long the host should wait before the next tick.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intervalLocked()
}

// CanPause reports whether the game supports suspension.
func (s *Session) CanPause() bool {
	return s.canPause()
}

func (s *Session) intervalLocked() time.Duration {
	if p, ok := s.game.(registry.Pacer); ok {
		if d := p.TickInterval(); d > 0 {
			return d
		}
	}
	return s.cfg.TickInterval()
}

// Status returns the lifecycle status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.game.State()
	return Snapshot{
		GameID:  s.game.ID(),
		Title:   s.game.Title(),
		Status:  s.status,
		Tick:    s.tick,
		Round:   s.round,
		Score:   st.Score,
		Best:    s.best,
		NewBest: s.newBest,
		Outcome: st.Outcome,
		Err:     s.lastErr,
	}
}

// Render draws the game into dst while holding the session lock, so a tick
// can never run halfway through a frame.
func (s *Session) Render(dst *core.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Render(dst)
}

// Resize changes the screen dimensions used for the next round.
func (s *Session) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.ScreenW = w
	s.cfg.ScreenH = h
}

// drainLocked consumes the queued inputs. Lifecycle actions are handled here;
// everything else is returned for the rules. Inputs queued before a round
// starts in this tick are discarded with the old round.
func (s *Session) drainLocked(ctx context.Context) core.InputFrame {
	queued := s.pending.Clone()
	s.pending.Clear()

	rules := core.NewInputFrame()
	for _, in := range queued.Events() {
		switch in.Action {
		case core.ActionRestart:
			if s.status == Running || s.status == Paused {
				s.finishLocked(ctx)
			}
			s.startLocked()
			rules.Clear()
		case core.ActionPause:
			s.togglePauseLocked()
		case core.ActionJump, core.ActionConfirm:
			if s.status == Over && s.grace > 0 {
				continue
			}
			if s.status == NotStarted || s.status == Over {
				s.startLocked()
				rules.Clear()
				continue
			}
			rules.Push(in)
		default:
			rules.Push(in)
		}
	}
	return rules
}

func (s *Session) startLocked() {
	if s.status != NotStarted && s.status != Over {
		return
	}
	s.round++
	s.game.Reset(s.roundConfig())
	s.status = Running
	s.tick = 0
	s.newBest = false
	s.written = false
	s.lastErr = nil
	s.grace = 0
	s.logger.Debug("round started", "round", s.round)
}

// finishLocked moves the round to Over and writes back the best score once.
func (s *Session) finishLocked(ctx context.Context) {
	s.status = Over
	if s.written {
		return
	}
	s.written = true
	s.grace = graceTicks(s.intervalLocked())

	score := s.game.State().Score
	s.logger.Info("round over", "round", s.round, "tick", s.tick, "score", score, "best", s.best)

	if score > s.best {
		s.best = score
		s.newBest = true
		if s.store != nil {
			if err := s.store.SetBestScore(ctx, s.game.ID(), score); err != nil {
				s.logger.Error("save best score", "err", err)
			}
		}
	}

	if rec, ok := s.store.(ScoreRecorder); ok && score > 0 {
		if err := rec.SaveScore(ctx, s.game.ID(), score); err != nil {
			s.logger.Error("save score history", "err", err)
		}
	}
}

func (s *Session) togglePauseLocked() {
	switch s.status {
	case Running:
		if s.canPause() {
			s.status = Paused
		}
	case Paused:
		s.status = Running
	}
}

func (s *Session) canPause() bool {
	sp, ok := s.game.(registry.Suspender)
	return ok && sp.CanPause()
}

// roundConfig derives the runtime config for the current round. A fixed seed
// gives a reproducible sequence of rounds rather than the same round twice.
func (s *Session) roundConfig() core.RuntimeConfig {
	cfg := s.cfg
	if cfg.Seed != 0 && s.round > 1 {
		cfg.Seed += int64(s.round - 1)
	}
	return cfg
}

// graceTicks converts RestartGrace into whole ticks at the given interval.
func graceTicks(interval time.Duration) int {
	if interval <= 0 {
		return 0
	}
	return int((RestartGrace + interval - 1) / interval)
}
