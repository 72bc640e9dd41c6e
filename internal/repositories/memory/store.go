// Package memory implements the ledger store: the single mutable owner of
// every entity collection. Mutations are applied atomically under one
// mutex, append exactly one audit entry each, and notify subscribers after
// commit. List operations hand out deep copies so no caller can mutate a
// collection out from under an in-flight computation.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	portsrepo "github.com/ledgerlite/ledgerlite/internal/core/ports/repositories"
)

// Mirror receives best-effort copies of persisted state, the way the
// original kept settings and a capped audit trail in browser storage.
// Mirror failures never fail a store mutation.
type Mirror interface {
	SaveSettings(settings domain.Settings) error
	AppendAudit(entry domain.AuditEntry) error
}

// Store holds the canonical collections.
type Store struct {
	mu sync.RWMutex

	accounts        []domain.Account
	transactions    []domain.Transaction
	registerEntries []domain.RegisterEntry
	templates       []domain.Template
	auditLog        []domain.AuditEntry
	settings        domain.Settings

	user   string
	mirror Mirror

	subMu   sync.Mutex
	subs    map[int]func(domain.Event)
	nextSub int
}

// Ensure Store implements the full repository surface.
var _ portsrepo.LedgerRepository = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithUser sets the user name recorded on audit entries.
func WithUser(user string) Option {
	return func(s *Store) { s.user = user }
}

// WithMirror attaches a persistence mirror.
func WithMirror(m Mirror) Option {
	return func(s *Store) { s.mirror = m }
}

// WithSettings sets the initial settings.
func WithSettings(settings domain.Settings) Option {
	return func(s *Store) { s.settings = settings }
}

// NewStore builds an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		user: "Admin",
		settings: domain.Settings{
			Currency:      "USD",
			Theme:         "light",
			CompanyName:   "My Company",
			Notifications: true,
		},
		subs: make(map[int]func(domain.Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a callback invoked synchronously after every
// committed mutation.
func (s *Store) Subscribe(fn func(domain.Event)) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// logAction appends one audit entry. Called with s.mu held so the audit
// write commits atomically with the mutation it records.
func (s *Store) logAction(action, details string) {
	entry := domain.AuditEntry{
		AuditID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
		User:      s.user,
	}
	s.auditLog = append([]domain.AuditEntry{entry}, s.auditLog...)
	if s.mirror != nil {
		// Best effort; the canonical trail already holds the entry.
		_ = s.mirror.AppendAudit(entry)
	}
}

// notify delivers an event to subscribers. Called after s.mu is released so
// subscribers observe the committed state.
func (s *Store) notify(action, entityID string) {
	s.subMu.Lock()
	fns := make([]func(domain.Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	ev := domain.Event{Action: action, EntityID: entityID}
	for _, fn := range fns {
		fn(ev)
	}
}
