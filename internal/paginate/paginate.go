// Package paginate computes the page-number window rendered under every
// list table.
package paginate

import "strconv"

// Marker is one entry of a pagination control: a page number, or a gap
// collapsing a run of omitted pages.
type Marker struct {
	Page int
	Gap  bool
}

// MarshalJSON renders a page marker as its number and a gap marker as "gap".
func (m Marker) MarshalJSON() ([]byte, error) {
	if m.Gap {
		return []byte(`"gap"`), nil
	}
	return []byte(strconv.Itoa(m.Page)), nil
}

// Window produces the ordered page markers for a pagination control: page 1
// and the last page are always present, up to siblingCount pages flank the
// current page, and each omitted run collapses into a single gap marker.
// There is nothing to render when totalPages <= 1.
func Window(currentPage, totalPages, siblingCount int) []Marker {
	if totalPages <= 1 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}
	if siblingCount < 0 {
		siblingCount = 0
	}

	markers := []Marker{{Page: 1}}

	leftSibling := currentPage - siblingCount
	if leftSibling < 2 {
		leftSibling = 2
	}
	rightSibling := currentPage + siblingCount
	if rightSibling > totalPages-1 {
		rightSibling = totalPages - 1
	}

	if leftSibling > 2 {
		markers = append(markers, Marker{Gap: true})
	}

	for i := leftSibling; i <= rightSibling; i++ {
		markers = append(markers, Marker{Page: i})
	}

	if rightSibling < totalPages-1 {
		markers = append(markers, Marker{Gap: true})
	}

	return append(markers, Marker{Page: totalPages})
}
