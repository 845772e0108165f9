// Package charts prepares the dashboard's marketplace-activity bar chart.
package charts

import (
	"strconv"
	"time"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Bucket is one bar group of the activity chart.
type Bucket struct {
	Name       string `json:"name"`
	Enquiries  int    `json:"enquiries"`
	Quotations int    `json:"quotations"`
	Tickets    int    `json:"tickets"`
}

// MonthlyActivity merges the three monthly series into twelve Jan-Dec
// buckets, keyed by the upstream's "1".."12" month field. Counts arrive as
// strings; anything unparsable counts as zero. When every bucket of every
// series is zero, a trailing six-month zero-filled window ending at now's
// month is returned instead, so the chart axis stays meaningful on an empty
// marketplace. now is injectable for tests.
func MonthlyActivity(now time.Time, activity models.MarketplaceActivity) []Bucket {
	buckets := make([]Bucket, 12)
	for i := range buckets {
		buckets[i].Name = monthNames[i]
	}

	apply := func(series []models.MonthCount, set func(*Bucket, int)) {
		for _, point := range series {
			month, err := strconv.Atoi(point.Month)
			if err != nil || month < 1 || month > 12 {
				continue
			}
			count, err := strconv.Atoi(point.Count)
			if err != nil || count < 0 {
				count = 0
			}
			set(&buckets[month-1], count)
		}
	}
	apply(activity.EnquiriesByMonth, func(b *Bucket, n int) { b.Enquiries = n })
	apply(activity.QuotationsByMonth, func(b *Bucket, n int) { b.Quotations = n })
	apply(activity.TicketsByMonth, func(b *Bucket, n int) { b.Tickets = n })

	for _, b := range buckets {
		if b.Enquiries > 0 || b.Quotations > 0 || b.Tickets > 0 {
			return buckets
		}
	}
	return trailingZeroWindow(now, 6)
}

// trailingZeroWindow builds n zero-filled buckets ending at now's month.
func trailingZeroWindow(now time.Time, n int) []Bucket {
	currentMonth := int(now.Month()) // 1..12
	window := make([]Bucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		month := (currentMonth-i+11)%12 + 1
		window = append(window, Bucket{Name: monthNames[month-1]})
	}
	return window
}
