package winpager

import (
	"github.com/samber/lo"
)

// Window is the derived view metadata for one page of a dataset. It is a pure
// function of the dataset length and the page cursor, recomputed on every
// observation and never cached, so it is always consistent with the latest
// dataset supplied by the caller.
type Window struct {
	// Page current 1-based page number, already clamped into range.
	Page int
	// PageSize normalized number of items per page.
	PageSize int
	// TotalItems length of the dataset the window was derived from.
	TotalItems int
	// TotalPages ceil(TotalItems / PageSize). Zero for an empty dataset.
	TotalPages int
	// StartIndex inclusive start of the [StartIndex, EndIndex) slice range.
	StartIndex int
	// EndIndex exclusive end of the slice range, capped at TotalItems.
	EndIndex int
	// HasNext reports whether a later page exists.
	HasNext bool
	// HasPrev reports whether an earlier page exists.
	HasPrev bool
}

// Count returns the number of items inside the window. It equals PageSize on
// every page except possibly the last one.
func (w Window) Count() int {
	return w.EndIndex - w.StartIndex
}

// ClampPage constrains a requested page number into [1, max(totalPages, 1)].
// Out-of-range requests land on the nearest valid page instead of failing;
// for an empty dataset (totalPages = 0) the result is always page 1.
func ClampPage(page int, totalPages int) int {
	return lo.Clamp(page, 1, max(totalPages, 1))
}

// TotalPagesFor returns ceil(totalItems / pageSize) with the page size
// normalized first. An empty dataset has zero pages.
func TotalPagesFor(totalItems int, pageSize int) int {
	if totalItems <= 0 {
		return 0
	}

	pageSize = NormalizePageSize(pageSize)

	return (totalItems + pageSize - 1) / pageSize
}

// DeriveWindow computes the window over totalItems elements for the given
// page cursor. The page is clamped first, so the result always describes a
// valid range: [0, 0) on page 1 when the dataset is empty, a full page
// everywhere except possibly the last page otherwise.
func DeriveWindow(totalItems int, page int, pageSize int) Window {
	pageSize = NormalizePageSize(pageSize)
	totalItems = max(totalItems, 0)
	totalPages := TotalPagesFor(totalItems, pageSize)
	page = ClampPage(page, totalPages)

	startIndex := (page - 1) * pageSize
	endIndex := min(startIndex+pageSize, totalItems)

	return Window{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		StartIndex: startIndex,
		EndIndex:   endIndex,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Slice returns the sub-slice of dataset described by the window. The result
// aliases the dataset; nothing is copied or retained. Indices are re-clamped
// against the slice passed in, so a window derived from a stale length never
// produces an out-of-range access.
func Slice[T any](dataset []T, w Window) []T {
	startIndex := lo.Clamp(w.StartIndex, 0, len(dataset))
	endIndex := lo.Clamp(w.EndIndex, startIndex, len(dataset))

	return dataset[startIndex:endIndex]
}
