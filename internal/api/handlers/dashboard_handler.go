package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/charts"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/models"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// DashboardHandler serves the landing screen's aggregate stats and chart.
type DashboardHandler struct {
	stats store.IDashboardStore
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(stats store.IDashboardStore) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Get handles GET /console/dashboard.
func (h *DashboardHandler) Get(c *gin.Context) {
	err := h.stats.Fetch(c.Request.Context())
	if errors.Is(err, upstream.ErrUnauthenticated) {
		respondSessionExpired(c)
		return
	}

	snap := h.stats.Snapshot()
	activity := models.MarketplaceActivity{}
	if snap.Stats != nil {
		activity = snap.Stats.MarketplaceActivity
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":   snap.Stats,
		"chart":   charts.MonthlyActivity(time.Now(), activity),
		"loading": snap.Loading,
		"error":   snap.Error,
	})
}
