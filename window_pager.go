package winpager

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// WindowPager owns the page cursor for a single browsing session. The dataset
// stays with the caller: every navigation call and derivation takes the item
// count (or the slice itself) at call time, so the pager remains correct when
// the caller filters or reloads the collection between calls.
//
// The zero value is usable and behaves as page 1 with DefaultPageSize.
type WindowPager struct {
	page     int
	pageSize int
	sort     Orderings
}

func NewWindowPager() *WindowPager {
	return new(WindowPager)
}

// WithPageSize sets the number of items per page. The value is normalized via
// NormalizePageSize, so non-positive and oversized inputs cannot produce a
// broken pager. The page size is fixed for the session: navigation never
// changes it.
func (p *WindowPager) WithPageSize(pageSize int) *WindowPager {
	if p == nil {
		p = new(WindowPager)
	}

	p.pageSize = NormalizePageSize(pageSize)

	return p
}

// WithInitialPage sets the starting page, clamped below at 1. Clamping
// against the dataset length happens on the first navigation or derivation.
func (p *WindowPager) WithInitialPage(page int) *WindowPager {
	if p == nil {
		p = new(WindowPager)
	}

	p.page = max(page, 1)

	return p
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (p *WindowPager) WithSubstitutedSort(orderBy ...OrderBy) *WindowPager {
	if p == nil {
		p = new(WindowPager)
	}

	p.sort = nil

	return p.WithSort(orderBy...)
}

// WithSort appends sort orderings without overwriting existing ones. A later
// ordering on a column already present replaces the earlier one in place of
// duplicating it.
func (p *WindowPager) WithSort(orderBy ...OrderBy) *WindowPager {
	if p == nil {
		p = new(WindowPager)
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(p.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})

		// Remove previous occurrence (avoid duplication).
		if idx != -1 {
			p.sort = slices.Delete(p.sort, idx, idx+1)
		}

		p.sort = append(p.sort, o)
	}

	return p
}

// GoToPage moves the cursor to the requested page, clamped into
// [1, max(totalPages, 1)] with totalPages computed from totalItems at call
// time. It never fails: out-of-range requests land on the nearest valid page,
// which keeps navigation correct after the caller filters or reloads the
// dataset.
func (p *WindowPager) GoToPage(page int, totalItems int) {
	p.page = ClampPage(page, TotalPagesFor(totalItems, p.GetPageSize()))
}

// Next advances the cursor by one page. A no-op when already on the last page.
func (p *WindowPager) Next(totalItems int) {
	p.GoToPage(p.GetPage()+1, totalItems)
}

// Prev moves the cursor back by one page. A no-op when already on page 1.
func (p *WindowPager) Prev(totalItems int) {
	p.GoToPage(p.GetPage()-1, totalItems)
}

// GetPage returns the current 1-based page number. The zero value reports
// page 1.
func (p *WindowPager) GetPage() int {
	if p == nil || p.page < 1 {
		return 1
	}

	return p.page
}

// GetPageSize returns the normalized page size.
func (p *WindowPager) GetPageSize() int {
	if p == nil {
		return DefaultPageSize
	}

	return NormalizePageSize(p.pageSize)
}

// GetSort returns orderings that will be applied on the DB path.
func (p *WindowPager) GetSort() Orderings {
	if p == nil {
		return nil
	}

	return p.sort
}

// Window derives the current window over a dataset of totalItems elements.
func (p *WindowPager) Window(totalItems int) Window {
	return DeriveWindow(totalItems, p.GetPage(), p.GetPageSize())
}

// View is a read-only snapshot of one page of a dataset: the derived window
// plus the visible slice.
type View[T any] struct {
	Window
	// Items elements visible on the current page. Aliases the dataset.
	Items []T
}

// PageOf derives the current view over dataset. Recomputed in full on every
// call from the slice passed in, so callers that replace the dataset between
// calls always observe a consistent page.
func PageOf[T any](p *WindowPager, dataset []T) View[T] {
	w := p.Window(len(dataset))

	return View[T]{
		Window: w,
		Items:  dataset[w.StartIndex:w.EndIndex],
	}
}

// Paginate applies sorting and the current window to a gorm query as
// ORDER BY / LIMIT / OFFSET. totalItems should come from a prior count of the
// same filtered query so the cursor clamps consistently with the in-memory
// contract. Returns an error only when the configured sort cannot be applied;
// window arithmetic itself cannot fail.
func (p *WindowPager) Paginate(db *gorm.DB, totalItems int64) (*gorm.DB, error) {
	err := p.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	if len(p.GetSort()) > 0 {
		db = p.sort.Apply(db)
	}

	return p.Window(int(totalItems)).Apply(db), nil
}

func (p *WindowPager) validate() error {
	if p == nil {
		return fmt.Errorf("window pager is nil")
	}

	// Sort is optional for window pagination; validate only what was set.
	if len(p.sort) > 0 {
		return p.sort.validate()
	}

	return nil
}
