package store

import (
	"context"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// UserList is the users store snapshot. Sellers and buyers share the store;
// whichever screen fetched last owns the page, exactly one fetch per store
// wins at a time.
type UserList = ListSnapshot[models.User]

// IUserStore defines the users store operations the screens use.
type IUserStore interface {
	Fetch(ctx context.Context, params upstream.ListParams) error
	UpdateStatus(ctx context.Context, userID, status string) (*models.User, error)
	Verify(ctx context.Context, userID string) (*models.User, error)
	Snapshot() UserList
}

// userStore implements IUserStore over the upstream client.
type userStore struct {
	client *upstream.Client
	list   listCore[models.User]
}

// NewUserStore creates the users store.
func NewUserStore(client *upstream.Client) IUserStore {
	return &userStore{client: client}
}

// Fetch loads one page of accounts, replacing the held page wholesale.
func (s *userStore) Fetch(ctx context.Context, params upstream.ListParams) error {
	seq := s.list.begin()
	items, p, err := s.client.Users(ctx, params)
	s.list.settle(seq, items, p, true, err)
	return err
}

// UpdateStatus changes an account's status upstream, then patches the record
// in place if the current page holds it.
func (s *userStore) UpdateStatus(ctx context.Context, userID, status string) (*models.User, error) {
	updated, err := s.client.UpdateUserStatus(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	s.list.replaceWhere(func(u *models.User) bool { return u.ID == updated.ID }, *updated)
	return updated, nil
}

// Verify marks a seller verified upstream, then patches the record in place.
func (s *userStore) Verify(ctx context.Context, userID string) (*models.User, error) {
	updated, err := s.client.VerifySeller(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.list.replaceWhere(func(u *models.User) bool { return u.ID == updated.ID }, *updated)
	return updated, nil
}

func (s *userStore) Snapshot() UserList {
	return s.list.snapshot()
}
