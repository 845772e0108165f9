package models

import "encoding/json"

// MonthCount is one time-series point of the marketplace activity chart.
// The upstream emits the count as a string.
type MonthCount struct {
	Month string `json:"month"` // "1".."12"
	Count string `json:"count"`
}

// MarketplaceActivity holds the three monthly series behind the dashboard bar chart.
type MarketplaceActivity struct {
	EnquiriesByMonth  []MonthCount `json:"enquiriesByMonth"`
	QuotationsByMonth []MonthCount `json:"quotationsByMonth"`
	TicketsByMonth    []MonthCount `json:"ticketsByMonth"`
}

// PercentChanges carries month-over-month deltas for the headline cards.
type PercentChanges struct {
	Sellers   float64 `json:"sellers"`
	Buyers    float64 `json:"buyers"`
	Enquiries float64 `json:"enquiries"`
	Tickets   float64 `json:"tickets"`
}

// RecentActivity lists the most recent record of each kind for the activity feed.
type RecentActivity struct {
	RecentSellers      []User      `json:"recentSellers"`
	RecentEnquiry      []Enquiry   `json:"recentEnquiry"`
	RecentQuotation    []Quotation `json:"recentQuotation"`
	RecentTicket       []Feedback  `json:"recentTicket"`
	RecentVerification []User      `json:"recentVerification"`
}

// DashboardStats is the aggregate document served by GET /admin/dashboard.
// Blocks the console only passes through are kept raw.
type DashboardStats struct {
	TotalSellers    int `json:"totalSellers"`
	TotalBuyers     int `json:"totalBuyers"`
	ActiveEnquiries int `json:"activeEnquiries"`
	OpenTickets     int `json:"openTickets"`

	PercentChanges      PercentChanges      `json:"percentChanges"`
	RecentActivity      RecentActivity      `json:"recentActivity"`
	MarketplaceActivity MarketplaceActivity `json:"marketplaceActivity"`

	SellerVerification json.RawMessage `json:"sellerVerification,omitempty"`
	TopSellers         json.RawMessage `json:"topSellers,omitempty"`
	SystemAlerts       json.RawMessage `json:"systemAlerts,omitempty"`
}
