package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JAINEELPATEL/autopart-admin-console/internal/api/middleware"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/paginate"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/store"
	"github.com/JAINEELPATEL/autopart-admin-console/internal/upstream"
)

// defaultPageSize matches the front end's table page length.
const defaultPageSize = 10

// siblingCount is the number of page links flanking the current page in the
// pagination window.
const siblingCount = 1

// listQuery parses the list parameters common to every screen. Filters are
// always forwarded upstream as query parameters.
func listQuery(c *gin.Context) upstream.ListParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	return upstream.ListParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
}

// listView is the view model every list screen renders: the store snapshot
// plus the page-number window for the pagination control. A failed fetch
// still renders: the last-known-good items stay visible and error carries
// the inline message.
func listView[T any](snap store.ListSnapshot[T]) gin.H {
	return gin.H{
		"data":       snap.Items,
		"pagination": snap.Pagination,
		"pages":      paginate.Window(snap.Pagination.Page, snap.Pagination.Pages, siblingCount),
		"loading":    snap.Loading,
		"error":      snap.Error,
	}
}

// respondSessionExpired answers a request whose upstream call came back 401.
// The session record is already gone by now; the browser is sent to login.
func respondSessionExpired(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":    "Session expired",
		"redirect": middleware.LoginRedirect,
	})
}

// respondUnauthenticated handles the expired-session case and reports
// whether it did, for screens whose view model is more than a bare snapshot.
func respondUnauthenticated(c *gin.Context, err error) bool {
	if errors.Is(err, upstream.ErrUnauthenticated) {
		respondSessionExpired(c)
		return true
	}
	return false
}

// respondListResult renders a list screen after a fetch. Only an expired
// session aborts the render; other failures surface through the snapshot's
// error field.
func respondListResult[T any](c *gin.Context, err error, snap store.ListSnapshot[T]) {
	if errors.Is(err, upstream.ErrUnauthenticated) {
		respondSessionExpired(c)
		return
	}
	c.JSON(http.StatusOK, listView(snap))
}

// respondMutationError maps a failed upstream mutation onto the response:
// expired sessions redirect, upstream validation errors pass through with
// the server-provided message, transport failures become a 502.
func respondMutationError(c *gin.Context, err error) {
	if errors.Is(err, upstream.ErrUnauthenticated) {
		respondSessionExpired(c)
		return
	}
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream request failed"})
}
