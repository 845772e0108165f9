package store

import (
	"context"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// EnquiryList is the enquiries store snapshot.
type EnquiryList = ListSnapshot[models.Enquiry]

// IEnquiryStore defines the enquiries store operations.
type IEnquiryStore interface {
	Fetch(ctx context.Context, params upstream.ListParams) error
	QuotationsFor(ctx context.Context, enquiryID string) ([]models.Quotation, error)
	PatchStatus(enquiryID, status string) bool
	Snapshot() EnquiryList
}

type enquiryStore struct {
	client *upstream.Client
	list   listCore[models.Enquiry]
}

// NewEnquiryStore creates the enquiries store.
func NewEnquiryStore(client *upstream.Client) IEnquiryStore {
	return &enquiryStore{client: client}
}

func (s *enquiryStore) Fetch(ctx context.Context, params upstream.ListParams) error {
	seq := s.list.begin()
	items, p, err := s.client.Enquiries(ctx, params)
	s.list.settle(seq, items, p, true, err)
	return err
}

// QuotationsFor loads the quotations answering one enquiry. The result is
// detail-dialog data and is not retained in store state.
func (s *enquiryStore) QuotationsFor(ctx context.Context, enquiryID string) ([]models.Quotation, error) {
	return s.client.QuotationsByEnquiry(ctx, enquiryID)
}

// PatchStatus adjusts one enquiry's status field in place without a server
// round trip. Reports whether the current page held the enquiry.
func (s *enquiryStore) PatchStatus(enquiryID, status string) bool {
	return s.list.mutateWhere(
		func(e *models.Enquiry) bool { return e.ID == enquiryID },
		func(e *models.Enquiry) { e.Status = status },
	)
}

func (s *enquiryStore) Snapshot() EnquiryList {
	return s.list.snapshot()
}
