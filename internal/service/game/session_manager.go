package game

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/pkg/uid"
)

// GameSession is one live game owned by a single presentation client.
type GameSession struct {
	GameID    string
	CreatedAt time.Time
	*Controller

	hookMu  sync.Mutex
	onEvict func()
}

// OnEvict registers fn to run when the cleanup sweep drops the session, so
// the owning connection can be torn down with it.
func (s *GameSession) OnEvict(fn func()) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.onEvict = fn
}

func (s *GameSession) evicted() {
	s.hookMu.Lock()
	fn := s.onEvict
	s.hookMu.Unlock()
	if fn != nil {
		fn()
	}
}

// GameSummary is the listing view of a live session.
type GameSummary struct {
	GameID    string
	Mode      Mode
	Result    string
	MoveCount int
	StartedAt time.Time
}

// SessionManager manages active game sessions
type SessionManager struct {
	Session map[string]*GameSession // gameID → GameSession
	mu      sync.RWMutex

	mode      Mode
	firstTurn FirstTurn
	selector  bot.MoveSelector

	seedMu sync.Mutex
	seeds  *rand.Rand
}

// NewSessionManager shares one selector across sessions. A zero seed seeds
// from the clock.
func NewSessionManager(mode Mode, firstTurn FirstTurn, seed int64) *SessionManager {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := rand.New(rand.NewSource(seed))
	return &SessionManager{
		Session:   make(map[string]*GameSession),
		mode:      mode,
		firstTurn: firstTurn,
		selector:  bot.NewSeededSelector(seeds.Int63()),
		seeds:     seeds,
	}
}

func (sm *SessionManager) nextSeed() int64 {
	sm.seedMu.Lock()
	defer sm.seedMu.Unlock()
	return sm.seeds.Int63()
}

// CreateSession registers a new game. An empty mode uses the manager default.
func (sm *SessionManager) CreateSession(mode Mode) *GameSession {
	if mode == "" {
		mode = sm.mode
	}

	session := &GameSession{
		GameID:    uid.GenerateGameID(),
		CreatedAt: time.Now(),
		Controller: NewController(Options{
			Mode:      mode,
			FirstTurn: sm.firstTurn,
			Selector:  sm.selector,
			Rand:      rand.New(rand.NewSource(sm.nextSeed())),
		}),
	}

	sm.mu.Lock()
	sm.Session[session.GameID] = session
	sm.mu.Unlock()

	log.Info().Str("component", "session").Str("game_id", session.GameID).
		Str("mode", string(session.Mode())).Msg("Created session")
	return session
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (*GameSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	return session, exists
}

func (sm *SessionManager) RemoveSession(gameID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.Session[gameID]; !exists {
		return domain.ErrSessionNotFound
	}

	log.Info().Str("component", "session").Str("game_id", gameID).Msg("Removing session")
	delete(sm.Session, gameID)

	return nil
}

// ActiveGames lists live sessions, oldest first.
func (sm *SessionManager) ActiveGames() []GameSummary {
	sm.mu.RLock()
	sessions := make([]*GameSession, 0, len(sm.Session))
	for _, s := range sm.Session {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	games := make([]GameSummary, 0, len(sessions))
	for _, s := range sessions {
		state := s.State()
		games = append(games, GameSummary{
			GameID:    s.GameID,
			Mode:      state.Mode,
			Result:    string(state.Result),
			MoveCount: state.MoveCount,
			StartedAt: s.CreatedAt,
		})
	}
	return games
}

// CleanupOldSessions drops sessions idle for longer than maxIdle, runs their
// eviction hooks and returns how many were removed.
func (sm *SessionManager) CleanupOldSessions(maxIdle time.Duration) int {
	now := time.Now()
	var stale []*GameSession

	sm.mu.Lock()
	for gameID, session := range sm.Session {
		if now.Sub(session.LastActivity()) > maxIdle {
			delete(sm.Session, gameID)
			stale = append(stale, session)
		}
	}
	sm.mu.Unlock()

	// hooks may call back into the manager
	for _, session := range stale {
		session.evicted()
	}

	if len(stale) > 0 {
		log.Info().Str("component", "session").Int("removed", len(stale)).Msg("Removed stale game sessions")
	}
	return len(stale)
}
