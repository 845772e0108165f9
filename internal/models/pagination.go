package models

// Pagination is the canonical pagination shape attached to every list response.
// Upstream endpoints disagree on how they spell it (a nested `pagination` object
// vs. flat total/currentPage/totalPages fields); the upstream client normalizes
// both into this struct before anything else sees the response.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}
