package entity

import "strings"

// PageSize is the fixed number of rows in one dashboard page.
const PageSize = 10

// Sort directions accepted by ViewQuery.SortDir.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultSortKey orders the dashboard by most recently touched shipment.
const DefaultSortKey = "updatedAt"

// ViewQuery is the renderer's table state: search box, status filter, sort
// selector and current page.
type ViewQuery struct {
	Text      string `json:"text" query:"q"`
	Status    string `json:"status" query:"status"`
	SortKey   string `json:"sortKey"`
	SortDir   string `json:"sortDir"`
	PageIndex int    `json:"pageIndex" query:"page"`
}

// Page is one projected slice of the filtered, sorted collection.
type Page struct {
	Items     []Shipment `json:"page"`
	Total     int        `json:"total"`
	PageIndex int        `json:"pageIndex"`
	HasPrev   bool       `json:"hasPrev"`
	HasNext   bool       `json:"hasNext"`
}

// NoticeKind is the toast flavour shown by the renderer.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Notice is a transient message for the operator.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// ParseSort splits a "field:dir" selector. An empty field falls back to the
// default key; a missing direction means descending.
func ParseSort(sort string) (key, dir string) {
	key, dir, _ = strings.Cut(strings.TrimSpace(sort), ":")
	if key == "" {
		key = DefaultSortKey
	}
	if dir != SortAsc {
		dir = SortDesc
	}

	return key, dir
}
