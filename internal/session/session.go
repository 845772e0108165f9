// Package session owns the console's credential lifecycle: redis-backed
// session records holding the upstream bearer token, the console JWT that
// names a record, and the route-guard state machine that re-validates a
// presented credential.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/auth"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/config"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// State is a route-guard state.
type State string

const (
	StateChecking        State = "checking"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// ErrNotFound is returned when no session record exists for an id.
var ErrNotFound = errors.New("session not found")

// Record is one admin's session as stored in redis.
type Record struct {
	ID            string       `json:"id"`
	UpstreamToken string       `json:"upstream_token"`
	Admin         models.Admin `json:"admin"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Resolution is the outcome of running the guard state machine.
type Resolution struct {
	State  State
	Admin  *models.Admin
	Record *Record
}

// IManager defines the session operations handlers and middleware use.
type IManager interface {
	Create(ctx context.Context, upstreamToken string, admin models.Admin) (*Record, string, error)
	Destroy(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, consoleToken string) (*Record, error)
	Resolve(ctx context.Context, consoleToken string) Resolution
}

// Manager implements IManager over redis.
type Manager struct {
	rdb *redis.Client
	cfg *config.Config
	api *upstream.Client
}

// NewManager creates a session manager. The upstream client is attached
// afterwards via SetAPI because the client itself is constructed with this
// manager's TokenSource.
func NewManager(rdb *redis.Client, cfg *config.Config) *Manager {
	return &Manager{rdb: rdb, cfg: cfg}
}

// SetAPI attaches the upstream client used for credential re-validation.
func (m *Manager) SetAPI(api *upstream.Client) {
	m.api = api
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create stores a new session record and returns it with its console JWT.
func (m *Manager) Create(ctx context.Context, upstreamToken string, admin models.Admin) (*Record, string, error) {
	rec := &Record{
		ID:            uuid.NewString(),
		UpstreamToken: upstreamToken,
		Admin:         admin,
		CreatedAt:     time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode session record: %w", err)
	}
	if err := m.rdb.Set(ctx, sessionKey(rec.ID), data, m.cfg.SessionTTL).Err(); err != nil {
		return nil, "", fmt.Errorf("failed to store session record: %w", err)
	}

	token, err := auth.GenerateSessionToken(rec.ID, admin.ID, m.cfg.JwtSecret, m.cfg.SessionTTL)
	if err != nil {
		// Orphan record is harmless; the TTL reaps it.
		return nil, "", err
	}
	return rec, token, nil
}

// get loads a session record by id.
func (m *Manager) get(ctx context.Context, sessionID string) (*Record, error) {
	data, err := m.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session record: %w", err)
	}
	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}
	return rec, nil
}

// Destroy removes a session record. Destroying an absent record is not an error.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	if err := m.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session record: %w", err)
	}
	return nil
}

// Authenticate checks a console token against its redis record without an
// upstream round trip. Used on every guarded request; full re-validation
// happens in Resolve and implicitly whenever an upstream call returns 401.
func (m *Manager) Authenticate(ctx context.Context, consoleToken string) (*Record, error) {
	if consoleToken == "" {
		return nil, ErrNotFound
	}
	claims, err := auth.ValidateSessionToken(consoleToken, m.cfg.JwtSecret)
	if err != nil {
		return nil, err
	}
	return m.get(ctx, claims.SessionID)
}

// Resolve runs the guard state machine for a presented credential:
// checking -> authenticated when the record exists and the upstream still
// accepts its token, checking -> unauthenticated otherwise. A rejected
// credential is destroyed on the way out.
func (m *Manager) Resolve(ctx context.Context, consoleToken string) Resolution {
	rec, err := m.Authenticate(ctx, consoleToken)
	if err != nil {
		return Resolution{State: StateUnauthenticated}
	}

	admin, err := m.api.CurrentAdmin(WithRecord(ctx, rec))
	if err != nil {
		// The 401 path has already destroyed the record via the client
		// callback; destroy covers every other failure too.
		if derr := m.Destroy(ctx, rec.ID); derr != nil {
			log.Printf("Failed to destroy rejected session %s: %v", rec.ID, derr)
		}
		return Resolution{State: StateUnauthenticated}
	}

	rec.Admin = *admin
	return Resolution{State: StateAuthenticated, Admin: admin, Record: rec}
}

// --- Request context plumbing ---

type ctxKey int

const recordKey ctxKey = iota

// WithRecord attaches a session record to a request context.
func WithRecord(ctx context.Context, rec *Record) context.Context {
	return context.WithValue(ctx, recordKey, rec)
}

// RecordFrom extracts the session record attached to a request context.
func RecordFrom(ctx context.Context) (*Record, bool) {
	rec, ok := ctx.Value(recordKey).(*Record)
	return rec, ok
}

// TokenSource yields the upstream bearer token of the session attached to
// the request context. Injected into the upstream client at construction.
func (m *Manager) TokenSource() upstream.TokenSource {
	return upstream.TokenSourceFunc(func(ctx context.Context) (string, bool) {
		rec, ok := RecordFrom(ctx)
		if !ok {
			return "", false
		}
		return rec.UpstreamToken, true
	})
}

// InvalidateFromContext destroys the session attached to the request
// context. Wired as the upstream client's OnUnauthenticated callback, so an
// upstream 401 logs the admin out no matter which screen issued the call.
func (m *Manager) InvalidateFromContext(ctx context.Context) {
	rec, ok := RecordFrom(ctx)
	if !ok {
		return
	}
	if err := m.Destroy(ctx, rec.ID); err != nil {
		log.Printf("Failed to destroy session %s after upstream 401: %v", rec.ID, err)
	}
}
