// internal/listing/engine.go

// Package listing implements the product listing engine: multi-criteria
// filtering, multi-key sorting, derived pagination, and the two-stage
// draft/applied protocol used by the filter drawer. An Engine holds one
// visitor's listing state; construct one per session.
package listing

import (
	"errors"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/labubu-world/storefront/internal/models"
)

// DefaultPageSize matches the storefront's product grid.
const DefaultPageSize = 8

var (
	ErrInvalidSortKey   = errors.New("unrecognized sort key")
	ErrInvalidDimension = errors.New("unrecognized filter dimension")
)

// Engine owns the catalog snapshot and the listing view state. All operations
// are synchronous and never block; callers serialize access per session.
type Engine struct {
	catalog  []models.Product
	active   Selection
	draft    Selection
	sortKey  SortKey
	page     int
	pageSize int

	// series/types are derived once from the full catalog, not the filtered
	// view, so unavailable combinations can still be browsed.
	series []string
	types  []string

	collator *collate.Collator
}

// View is everything the display surface needs to render the listing after an
// operation. Handlers must re-render from a fresh View, never a cached one.
type View struct {
	Products        []models.Product `json:"products"`
	Page            int              `json:"page"`
	TotalPages      int              `json:"total_pages"`
	PageSize        int              `json:"page_size"`
	TotalItems      int              `json:"total_items"`
	SortKey         SortKey          `json:"sort"`
	ActiveFilters   Selection        `json:"active_filters"`
	DraftFilters    Selection        `json:"draft_filters"`
	AvailableSeries []string         `json:"available_series"`
	AvailableTypes  []string         `json:"available_types"`
}

// NewEngine copies catalog and derives the filterable value sets. pageSize
// values below 1 fall back to DefaultPageSize.
func NewEngine(catalog []models.Product, pageSize int) *Engine {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	e := &Engine{
		catalog:  append([]models.Product(nil), catalog...),
		sortKey:  DefaultSortKey,
		page:     1,
		pageSize: pageSize,
		collator: collate.New(language.English),
	}

	for _, p := range e.catalog {
		if !contains(e.series, p.Series) {
			e.series = append(e.series, p.Series)
		}
		if !contains(e.types, p.Type) {
			e.types = append(e.types, p.Type)
		}
	}

	return e
}

// Visible derives the filtered, sorted subset of the catalog. It is a pure
// function of (catalog, active filters, sort key) and never mutates the
// catalog; sorting runs on a fresh copy every call.
func (e *Engine) Visible() []models.Product {
	out := make([]models.Product, 0, len(e.catalog))
	for _, p := range e.catalog {
		if e.active.matches(p) {
			out = append(out, p)
		}
	}

	less := comparators[e.sortKey]
	sort.SliceStable(out, func(i, j int) bool {
		return less(e.collator, out[i], out[j])
	})

	return out
}

// Page returns the current page slice of the visible set and the total page
// count. The page number is re-clamped into [1, totalPages] on every call so
// a shrinking result set can never strand it out of range.
func (e *Engine) Page() ([]models.Product, int) {
	visible := e.Visible()
	total := e.totalPages(len(visible))

	if e.page > total {
		e.page = total
	}
	if e.page < 1 {
		e.page = 1
	}

	start := (e.page - 1) * e.pageSize
	if start >= len(visible) {
		return []models.Product{}, total
	}
	end := start + e.pageSize
	if end > len(visible) {
		end = len(visible)
	}

	return visible[start:end], total
}

// totalPages treats an empty visible set as a single page so the page number
// stays well-defined; no page navigation is offered in that state.
func (e *Engine) totalPages(visibleCount int) int {
	if visibleCount == 0 {
		return 1
	}
	return (visibleCount + e.pageSize - 1) / e.pageSize
}

// SetSortKey rejects unknown keys without touching any state; on success the
// page resets to 1.
func (e *Engine) SetSortKey(key SortKey) error {
	if !ValidSortKey(key) {
		return ErrInvalidSortKey
	}
	e.sortKey = key
	e.page = 1
	return nil
}

// OpenFilterEditor re-seeds the draft from the applied filters, discarding
// any unapplied edits from a previous open/close cycle.
func (e *Engine) OpenFilterEditor() {
	e.draft = e.active.clone()
}

// SetDraftFilter adds or removes value on the draft's dimension. The applied
// filters are untouched until ApplyDraftFilters.
func (e *Engine) SetDraftFilter(dimension Dimension, value string, included bool) error {
	return e.draft.set(dimension, value, included)
}

// ApplyDraftFilters commits the draft and resets to page 1.
func (e *Engine) ApplyDraftFilters() {
	e.active = e.draft.clone()
	e.page = 1
}

// ClearAllFilters empties both the applied and draft selections together and
// resets to page 1. Available whether or not the filter editor is open.
func (e *Engine) ClearAllFilters() {
	e.active = Selection{}
	e.draft = Selection{}
	e.page = 1
}

// GoToPage moves to page n. Out-of-range requests are silent no-ops rather
// than errors: pagination controls can legitimately race a result set that
// shrank between render and click.
func (e *Engine) GoToPage(n int) {
	total := e.totalPages(len(e.Visible()))
	if n < 1 || n > total {
		return
	}
	e.page = n
}

func (e *Engine) CurrentPage() int { return e.page }

func (e *Engine) SortKey() SortKey { return e.sortKey }

func (e *Engine) PageSize() int { return e.pageSize }

// ActiveFilters returns a copy of the applied selection.
func (e *Engine) ActiveFilters() Selection { return e.active.clone() }

// DraftFilters returns a copy of the pending selection.
func (e *Engine) DraftFilters() Selection { return e.draft.clone() }

// AvailableSeries lists every series in the full catalog, first-seen order.
func (e *Engine) AvailableSeries() []string {
	return append([]string(nil), e.series...)
}

// AvailableTypes lists every product type in the full catalog.
func (e *Engine) AvailableTypes() []string {
	return append([]string(nil), e.types...)
}

// View assembles the full render state for the display surface.
func (e *Engine) View() View {
	visible := e.Visible()
	products, total := e.Page()

	return View{
		Products:        products,
		Page:            e.page,
		TotalPages:      total,
		PageSize:        e.pageSize,
		TotalItems:      len(visible),
		SortKey:         e.sortKey,
		ActiveFilters:   e.active.clone(),
		DraftFilters:    e.draft.clone(),
		AvailableSeries: e.AvailableSeries(),
		AvailableTypes:  e.AvailableTypes(),
	}
}
