// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	domainauth "github.com/medflow/medflow/internal/domain/auth"
	"github.com/medflow/medflow/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityProvider = (*MockIdentityProvider)(nil)
	_ ports.SessionStore     = (*MemorySessionStore)(nil)
	_ ports.ProfileSource    = (*MemoryProfileSource)(nil)
	_ ports.Notifier         = (*RecordingNotifier)(nil)
	_ ports.NoticeSource     = (*RecordingNotifier)(nil)
)

// MockIdentityProvider simulates an identity provider with a fixed user table.
type MockIdentityProvider struct {
	SignInFunc  func(ctx context.Context, email, password string) (domainauth.Identity, error)
	SignOutFunc func(ctx context.Context, subject string) error

	// Users maps lowercase email to password and identity.
	Users map[string]MockUser

	mu       sync.Mutex
	SignIns  int
	SignOuts []string
}

// MockUser is one accepted credential.
type MockUser struct {
	Password string
	Identity domainauth.Identity
}

// NewMockIdentityProvider creates a provider accepting one default user:
// doctor@example.com / secret with subject "subject-1".
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{
		Users: map[string]MockUser{
			"doctor@example.com": {
				Password: "secret",
				Identity: domainauth.Identity{
					Subject:   "subject-1",
					Email:     "doctor@example.com",
					ExpiresAt: time.Now().Add(time.Hour),
				},
			},
		},
	}
}

func (m *MockIdentityProvider) SignIn(ctx context.Context, email, password string) (domainauth.Identity, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	m.mu.Lock()
	m.SignIns++
	m.mu.Unlock()

	u, ok := m.Users[strings.ToLower(email)]
	if !ok || u.Password != password {
		return domainauth.Identity{}, ports.ErrInvalidCredentials
	}
	return u.Identity, nil
}

func (m *MockIdentityProvider) SignOut(ctx context.Context, subject string) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, subject)
	}
	m.mu.Lock()
	m.SignOuts = append(m.SignOuts, subject)
	m.mu.Unlock()
	return nil
}

// MemorySessionStore is an in-memory ports.SessionStore.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session

	SaveErr   error
	GetErr    error
	DeleteErr error
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if s.GetErr != nil {
		return domainauth.Session{}, s.GetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports how many sessions are stored.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// MemoryProfileSource is an in-memory ports.ProfileSource keyed by subject.
type MemoryProfileSource struct {
	mu   sync.Mutex
	rows map[string]MemoryProfile

	Err error
}

// MemoryProfile is one stored profile row.
type MemoryProfile struct {
	FullName string
	Role     string // raw storage form, lowercase
}

// NewMemoryProfileSource creates an empty in-memory profile source.
func NewMemoryProfileSource() *MemoryProfileSource {
	return &MemoryProfileSource{rows: make(map[string]MemoryProfile)}
}

// Put stores or replaces a profile row.
func (p *MemoryProfileSource) Put(subject, fullName, role string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rows[subject] = MemoryProfile{FullName: fullName, Role: role}
}

func (p *MemoryProfileSource) GetProfile(_ context.Context, id string) (string, string, error) {
	if p.Err != nil {
		return "", "", p.Err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	row, ok := p.rows[id]
	if !ok {
		return "", "", ports.ErrProfileNotFound
	}
	return row.FullName, row.Role, nil
}

// RecordingNotifier records notices in memory and serves them back via Drain.
type RecordingNotifier struct {
	mu      sync.Mutex
	notices map[string][]ports.Notice
}

// NewRecordingNotifier creates an empty recording notifier.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{notices: make(map[string][]ports.Notice)}
}

func (n *RecordingNotifier) Notify(_ context.Context, sessionID string, notice ports.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices[sessionID] = append(n.notices[sessionID], notice)
}

func (n *RecordingNotifier) Drain(_ context.Context, sessionID string) ([]ports.Notice, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.notices[sessionID]
	delete(n.notices, sessionID)
	return out, nil
}

// For returns the notices recorded for a session without draining them.
func (n *RecordingNotifier) For(sessionID string) []ports.Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.Notice(nil), n.notices[sessionID]...)
}
