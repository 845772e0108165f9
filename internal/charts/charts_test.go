package charts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/charts"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
)

func TestMonthlyActivity_MergesSeriesIntoTwelveBuckets(t *testing.T) {
	activity := models.MarketplaceActivity{
		EnquiriesByMonth: []models.MonthCount{
			{Month: "1", Count: "4"},
			{Month: "3", Count: "7"},
		},
		QuotationsByMonth: []models.MonthCount{
			{Month: "3", Count: "2"},
		},
		TicketsByMonth: []models.MonthCount{
			{Month: "12", Count: "1"},
		},
	}

	buckets := charts.MonthlyActivity(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), activity)

	assert.Len(t, buckets, 12)
	assert.Equal(t, "Jan", buckets[0].Name)
	assert.Equal(t, 4, buckets[0].Enquiries)
	assert.Equal(t, "Mar", buckets[2].Name)
	assert.Equal(t, 7, buckets[2].Enquiries)
	assert.Equal(t, 2, buckets[2].Quotations)
	assert.Equal(t, "Dec", buckets[11].Name)
	assert.Equal(t, 1, buckets[11].Tickets)
	// Months with no data stay at zero rather than disappearing.
	assert.Equal(t, charts.Bucket{Name: "Feb"}, buckets[1])
}

func TestMonthlyActivity_UnparsableCountsBecomeZero(t *testing.T) {
	activity := models.MarketplaceActivity{
		EnquiriesByMonth: []models.MonthCount{
			{Month: "2", Count: "not-a-number"},
			{Month: "5", Count: "3"},
		},
	}

	buckets := charts.MonthlyActivity(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), activity)

	assert.Len(t, buckets, 12)
	assert.Equal(t, 0, buckets[1].Enquiries)
	assert.Equal(t, 3, buckets[4].Enquiries)
}

func TestMonthlyActivity_IgnoresOutOfRangeMonths(t *testing.T) {
	activity := models.MarketplaceActivity{
		EnquiriesByMonth: []models.MonthCount{
			{Month: "0", Count: "5"},
			{Month: "13", Count: "5"},
			{Month: "oops", Count: "5"},
			{Month: "6", Count: "5"},
		},
	}

	buckets := charts.MonthlyActivity(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), activity)

	total := 0
	for _, b := range buckets {
		total += b.Enquiries
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, 5, buckets[5].Enquiries)
}

func TestMonthlyActivity_EmptyMarketplaceGetsTrailingWindow(t *testing.T) {
	now := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

	buckets := charts.MonthlyActivity(now, models.MarketplaceActivity{})

	assert.Len(t, buckets, 6)
	assert.Equal(t, "Mar", buckets[0].Name)
	assert.Equal(t, "Aug", buckets[5].Name)
	for _, b := range buckets {
		assert.Zero(t, b.Enquiries)
		assert.Zero(t, b.Quotations)
		assert.Zero(t, b.Tickets)
	}
}

func TestMonthlyActivity_TrailingWindowWrapsYearBoundary(t *testing.T) {
	now := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	buckets := charts.MonthlyActivity(now, models.MarketplaceActivity{})

	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, names)
}

func TestMonthlyActivity_AllZeroCountsStillCollapse(t *testing.T) {
	activity := models.MarketplaceActivity{
		EnquiriesByMonth: []models.MonthCount{
			{Month: "1", Count: "0"},
			{Month: "2", Count: "0"},
		},
	}

	buckets := charts.MonthlyActivity(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), activity)

	assert.Len(t, buckets, 6)
}
