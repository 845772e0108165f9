package store

import (
	"context"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// QuotationList is the quotations store snapshot.
type QuotationList = ListSnapshot[models.Quotation]

// IQuotationStore defines the quotations store operations.
type IQuotationStore interface {
	Fetch(ctx context.Context, params upstream.ListParams) error
	UpdateStatus(ctx context.Context, quotationID, status string) (*models.Quotation, error)
	Snapshot() QuotationList
}

type quotationStore struct {
	client *upstream.Client
	list   listCore[models.Quotation]
}

// NewQuotationStore creates the quotations store.
func NewQuotationStore(client *upstream.Client) IQuotationStore {
	return &quotationStore{client: client}
}

func (s *quotationStore) Fetch(ctx context.Context, params upstream.ListParams) error {
	seq := s.list.begin()
	items, p, err := s.client.Quotations(ctx, params)
	s.list.settle(seq, items, p, true, err)
	return err
}

func (s *quotationStore) UpdateStatus(ctx context.Context, quotationID, status string) (*models.Quotation, error) {
	updated, err := s.client.UpdateQuotationStatus(ctx, quotationID, status)
	if err != nil {
		return nil, err
	}
	s.list.replaceWhere(func(q *models.Quotation) bool { return q.ID == updated.ID }, *updated)
	return updated, nil
}

func (s *quotationStore) Snapshot() QuotationList {
	return s.list.snapshot()
}
