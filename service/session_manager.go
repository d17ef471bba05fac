package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// Service errors.
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrWrongSessionKind = errors.New("operation not supported by this kind of session")
	ErrHistoryDisabled  = errors.New("run history is not configured")
	ErrRankingDisabled  = errors.New("leaderboard is not configured")
)

const (
	// ClaimSessionID is the token claim naming the session a token unlocks.
	ClaimSessionID = "session_id"

	storeTimeout    = 2 * time.Second
	defaultTTL      = 2 * time.Hour
	defaultIdle     = 30 * time.Minute
	defaultCellSize = 40
)

type session struct {
	loop      *game.Loop
	mode      game.Mode
	layout    game.Layout
	scoreOnce sync.Once
}

// SessionManager runs many sessions side by side. Every session is driven by
// its own game.Loop, so events for one session are applied one at a time
// while different sessions progress in parallel.
type SessionManager struct {
	sessions    map[uuid.UUID]*session
	editor      game.SessionConfig
	race        game.RaceConfig
	lattice     maze.Lattice
	seed        int64
	cellSize    int
	tokenTTL    time.Duration
	idleTimeout time.Duration
	runRepo     i.RunRepo
	leaderboard i.Leaderboard
	tokenizer   i.Tokenizer
	logger      i.Logger
	sync.RWMutex
}

// Config holds the dependencies and defaults of a SessionManager.
type Config struct {
	Rows        int           // Rows of editor grids.
	Cols        int           // Columns of editor grids.
	RaceRows    int           // Rows of race grids.
	RaceCols    int           // Columns of race grids.
	Fill        maze.Tag      // Blank state of editor grids.
	Lattice     maze.Lattice  // Generation scheme of every new maze.
	Seed        int64         // Seed of the first session; 0 seeds from the clock.
	CellSize    int           // Pixel size of one cell for click mapping.
	TokenTTL    time.Duration // Lifetime of session access tokens.
	IdleTimeout time.Duration // Sessions untouched for this long are swept.
	RunRepo     i.RunRepo     // Optional solve history.
	Leaderboard i.Leaderboard // Optional race ranking.
	Tokenizer   i.Tokenizer   // Issues session access tokens.
	Logger      i.Logger
}

// NewSessionManager validates c and returns an empty manager.
func NewSessionManager(c *Config) (*SessionManager, error) {
	if c.Tokenizer == nil {
		return nil, errors.New("session manager needs a tokenizer")
	}
	if c.Logger == nil {
		return nil, errors.New("session manager needs a logger")
	}
	if _, err := maze.NewGenerator(c.Lattice, nil); err != nil {
		return nil, err
	}
	if _, err := maze.New(c.Rows, c.Cols, c.Fill); err != nil {
		return nil, fmt.Errorf("editor grid: %w", err)
	}
	if _, err := maze.New(c.RaceRows, c.RaceCols, maze.Wall); err != nil {
		return nil, fmt.Errorf("race grid: %w", err)
	}

	m := &SessionManager{
		sessions:    make(map[uuid.UUID]*session),
		editor:      game.SessionConfig{Rows: c.Rows, Cols: c.Cols, Fill: c.Fill},
		race:        game.RaceConfig{Rows: c.RaceRows, Cols: c.RaceCols},
		lattice:     c.Lattice,
		seed:        c.Seed,
		cellSize:    c.CellSize,
		tokenTTL:    c.TokenTTL,
		idleTimeout: c.IdleTimeout,
		runRepo:     c.RunRepo,
		leaderboard: c.Leaderboard,
		tokenizer:   c.Tokenizer,
		logger:      c.Logger,
	}
	if m.cellSize <= 0 {
		m.cellSize = defaultCellSize
	}
	if m.tokenTTL <= 0 {
		m.tokenTTL = defaultTTL
	}
	if m.idleTimeout <= 0 {
		m.idleTimeout = defaultIdle
	}
	return m, nil
}

// NewEditor starts an editor session.
func (m *SessionManager) NewEditor() (*dmn.Session, error) {
	id := m.newID()
	cfg := m.editor
	cfg.Generator = m.generator()
	cfg.OnSolve = func(r game.RunReport) { m.recordRun(id, r) }

	s, err := game.NewSession(cfg)
	if err != nil {
		m.logger.Error(fmt.Sprintf("creating editor session: %s", err))
		return nil, err
	}
	return m.start(id, s, game.ModeEditor, cfg.Rows, cfg.Cols)
}

// NewRace starts a race session.
func (m *SessionManager) NewRace() (*dmn.Session, error) {
	id := m.newID()
	cfg := m.race
	cfg.Generator = m.generator()

	r, err := game.NewRace(cfg)
	if err != nil {
		m.logger.Error(fmt.Sprintf("creating race session: %s", err))
		return nil, err
	}
	return m.start(id, r, game.ModeRace, cfg.Rows, cfg.Cols)
}

// Dispatch applies ev to the session and returns the state after it.
func (m *SessionManager) Dispatch(ctx context.Context, id uuid.UUID, ev game.Event) (game.Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return game.Snapshot{}, err
	}

	snap, err := s.loop.Dispatch(ctx, ev)
	if snap.Mode == game.ModeRace && snap.Finished && err == nil {
		s.scoreOnce.Do(func() { m.submitScore(id, snap) })
	}
	return snap, err
}

// Snapshot returns the current state of the session.
func (m *SessionManager) Snapshot(ctx context.Context, id uuid.UUID) (game.Snapshot, error) {
	s, err := m.session(id)
	if err != nil {
		return game.Snapshot{}, err
	}
	return s.loop.Snapshot(ctx)
}

// Layout returns the pixel-to-cell mapping of the session's board.
func (m *SessionManager) Layout(id uuid.UUID) (game.Layout, error) {
	s, err := m.session(id)
	if err != nil {
		return game.Layout{}, err
	}
	return s.layout, nil
}

// Runs returns up to limit solve runs of an editor session, newest first.
func (m *SessionManager) Runs(ctx context.Context, id uuid.UUID, limit int64) ([]dmn.Run, error) {
	s, err := m.session(id)
	if err != nil {
		return nil, err
	}
	if s.mode != game.ModeEditor {
		return nil, ErrWrongSessionKind
	}
	if m.runRepo == nil {
		return nil, ErrHistoryDisabled
	}
	return m.runRepo.BySession(ctx, id, limit)
}

// Leaderboard returns up to limit best race scores.
func (m *SessionManager) Leaderboard(ctx context.Context, limit int64) ([]dmn.Score, error) {
	if m.leaderboard == nil {
		return nil, ErrRankingDisabled
	}
	return m.leaderboard.Top(ctx, limit)
}

// Close stops the session's loop and forgets it.
func (m *SessionManager) Close(id uuid.UUID) error {
	m.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.loop.Stop()
	m.logger.Info(fmt.Sprintf("closed session: %s", id))
	return nil
}

// Sweep closes every session idle since before now minus the idle timeout
// and returns how many were closed.
func (m *SessionManager) Sweep(now time.Time) int {
	cutoff := now.Add(-m.idleTimeout)

	m.Lock()
	var stale []*session
	for id, s := range m.sessions {
		if s.loop.LastActive().Before(cutoff) {
			stale = append(stale, s)
			delete(m.sessions, id)
		}
	}
	m.Unlock()

	for _, s := range stale {
		s.loop.Stop()
	}
	if len(stale) > 0 {
		m.logger.Info(fmt.Sprintf("swept %d idle sessions", len(stale)))
	}
	return len(stale)
}

// Start sweeps idle sessions every interval until ctx is done, then stops
// every session.
func (m *SessionManager) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.StopAll()
			return
		case now := <-ticker.C:
			m.Sweep(now)
		}
	}
}

// StopAll stops and forgets every session.
func (m *SessionManager) StopAll() {
	m.Lock()
	defer m.Unlock()

	for id, s := range m.sessions {
		s.loop.Stop()
		delete(m.sessions, id)
	}
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions)
}

func (m *SessionManager) start(id uuid.UUID, h game.Handler, mode game.Mode, rows, cols int) (*dmn.Session, error) {
	token, err := m.tokenizer.Generate(map[string]interface{}{ClaimSessionID: id.String()}, m.tokenTTL)
	if err != nil {
		m.logger.Error(fmt.Sprintf("issuing token for session %s: %s", id, err))
		return nil, err
	}

	loop := game.NewLoop(h)
	m.Lock()
	m.sessions[id] = &session{
		loop:   loop,
		mode:   mode,
		layout: game.SquareLayout(m.cellSize, rows, cols),
	}
	m.Unlock()
	go loop.Start()

	m.logger.Info(fmt.Sprintf("started %s session: %s", mode, id))
	return &dmn.Session{ID: id, Token: token, Kind: mode.String(), Rows: rows, Cols: cols}, nil
}

// newID returns an ID not used by any live session.
func (m *SessionManager) newID() uuid.UUID {
	m.RLock()
	defer m.RUnlock()

	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			return id
		}
		id = uuid.New()
	}
}

// generator returns a fresh generator. With a fixed seed the n-th session
// always gets the same mazes.
func (m *SessionManager) generator() *maze.Generator {
	var rng *rand.Rand
	m.Lock()
	if m.seed != 0 {
		rng = rand.New(rand.NewSource(m.seed))
		m.seed++
	}
	m.Unlock()

	gen, _ := maze.NewGenerator(m.lattice, rng)
	return gen
}

func (m *SessionManager) session(id uuid.UUID) (*session, error) {
	m.RLock()
	defer m.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// recordRun runs on the session's loop goroutine.
func (m *SessionManager) recordRun(id uuid.UUID, r game.RunReport) {
	if m.runRepo == nil {
		return
	}

	run := &dmn.Run{
		ID:        uuid.New(),
		SessionID: id,
		Algorithm: r.Algorithm.String(),
		Found:     r.Result.Found,
		Length:    r.Result.Length(),
		Expanded:  r.Result.Expanded,
		Rows:      r.Rows,
		Cols:      r.Cols,
		Duration:  r.Duration,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := m.runRepo.Save(ctx, run); err != nil {
		m.logger.Error(fmt.Sprintf("saving run of session %s: %s", id, err))
	}
}

func (m *SessionManager) submitScore(id uuid.UUID, snap game.Snapshot) {
	m.logger.Info(fmt.Sprintf("race %s finished in %d moves", id, snap.Moves))
	if m.leaderboard == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	score := dmn.Score{
		SessionID:  id,
		Moves:      snap.Moves,
		Rows:       snap.Rows,
		Cols:       snap.Cols,
		FinishedAt: time.Now().UTC(),
	}
	if err := m.leaderboard.Submit(ctx, score); err != nil {
		m.logger.Error(fmt.Sprintf("submitting score of race %s: %s", id, err))
	}
}
