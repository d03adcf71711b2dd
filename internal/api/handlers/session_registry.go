package handlers

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"medical-appointment-service/internal/services"
)

// SessionHeader carries the client's session id in both directions.
const SessionHeader = "X-Session-ID"

const (
	sessionLocalsKey   = "session"
	maxSessionIDLength = 64
	defaultSessionIdle = 24 * time.Hour
)

type sessionEntry struct {
	mu       sync.Mutex
	session  *services.Session
	lastSync time.Time
	lastSeen time.Time
	inUse    int
}

// advance converts whole seconds since the last sync into cooldown ticks,
// one tick per second.
func (e *sessionEntry) advance(now time.Time) {
	ticks := int(now.Sub(e.lastSync) / time.Second)
	if ticks <= 0 {
		return
	}
	e.session.Cooldown.Advance(ticks)
	e.lastSync = e.lastSync.Add(time.Duration(ticks) * time.Second)
}

// SessionRegistry keeps the in-memory Session of each HTTP client. Requests
// of one session are serialised. Sessions idle for longer than the idle
// timeout are dropped; their stored pending signup and login survive.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	idle     time.Duration
	now      func() time.Time
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*sessionEntry),
		idle:     defaultSessionIdle,
		now:      time.Now,
	}
}

func (r *SessionRegistry) acquire(id string) *sessionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	entry, ok := r.sessions[id]
	if !ok {
		r.evictIdleLocked(now)
		entry = &sessionEntry{session: services.NewSession(id), lastSync: now}
		r.sessions[id] = entry
	}
	entry.lastSeen = now
	entry.inUse++
	return entry
}

func (r *SessionRegistry) release(entry *sessionEntry) {
	r.mu.Lock()
	entry.inUse--
	r.mu.Unlock()
}

func (r *SessionRegistry) evictIdleLocked(now time.Time) {
	for id, e := range r.sessions {
		if e.inUse == 0 && now.Sub(e.lastSeen) > r.idle {
			delete(r.sessions, id)
		}
	}
}

// Len reports how many sessions are tracked.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Middleware resolves the session named by SessionHeader, issuing a new id
// when the header is absent, and echoes the id on the response.
func (r *SessionRegistry) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := utils.CopyString(c.Get(SessionHeader))
		if id == "" {
			id = uuid.NewString()
		} else if !validSessionID(id) {
			return badRequest(c, "invalid "+SessionHeader+" header")
		}
		c.Set(SessionHeader, id)

		entry := r.acquire(id)
		defer r.release(entry)
		entry.mu.Lock()
		defer entry.mu.Unlock()
		entry.advance(r.now())

		c.Locals(sessionLocalsKey, entry.session)
		return c.Next()
	}
}

func validSessionID(id string) bool {
	if len(id) > maxSessionIDLength {
		return false
	}
	for _, ch := range id {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
		default:
			return false
		}
	}
	return true
}

func sessionFrom(c *fiber.Ctx) *services.Session {
	if sess, ok := c.Locals(sessionLocalsKey).(*services.Session); ok {
		return sess
	}
	return services.NewSession("")
}
