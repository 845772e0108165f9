package store

import (
	"context"
	"sync"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// DashboardSnapshot is the dashboard store state: one stats document instead
// of a paginated list.
type DashboardSnapshot struct {
	Stats   *models.DashboardStats `json:"stats"`
	Loading bool                   `json:"loading"`
	Error   string                 `json:"error"`
}

// IDashboardStore defines the dashboard store operations.
type IDashboardStore interface {
	Fetch(ctx context.Context) error
	Snapshot() DashboardSnapshot
}

type dashboardStore struct {
	client *upstream.Client

	mu      sync.Mutex
	stats   *models.DashboardStats
	loading bool
	err     string
	seq     uint64
}

// NewDashboardStore creates the dashboard store.
func NewDashboardStore(client *upstream.Client) IDashboardStore {
	return &dashboardStore{client: client}
}

// Fetch reloads the stats document. Fenced the same way as the list stores:
// only the latest issued fetch settles.
func (s *dashboardStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	stats, err := s.client.DashboardStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return err
	}
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return err
	}
	s.stats = stats
	return nil
}

func (s *dashboardStore) Snapshot() DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := DashboardSnapshot{Loading: s.loading, Error: s.err}
	if s.stats != nil {
		statsCopy := *s.stats
		snap.Stats = &statsCopy
	}
	return snap
}
