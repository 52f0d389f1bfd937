package winpager

import (
	"fmt"

	"gorm.io/gorm"
)

// Apply - applies the window to a gorm query as LIMIT/OFFSET. gorm omits the
// OFFSET clause when StartIndex is zero.
func (w Window) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(w.StartIndex).Limit(w.PageSize)
}

// Scope returns the window as a gorm scope.
//
// Usage:
//
//	db.Scopes(w.Scope()).Find(&listings)
func (w Window) Scope() func(*gorm.DB) *gorm.DB {
	return w.Apply
}

// ToSQL returns the string form of the window as an SQL fragment.
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM table %s", w.ToSQL())
func (w Window) ToSQL() string {
	if w.StartIndex == 0 {
		return fmt.Sprintf("LIMIT %d", w.PageSize)
	}

	return fmt.Sprintf("LIMIT %d OFFSET %d", w.PageSize, w.StartIndex)
}

// CountItems counts the rows of the filtered query that feeds
// WindowPager.Paginate. Run it on the same query before paginating so the
// cursor clamps against the real dataset size.
func CountItems(db *gorm.DB) (int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("cannot count dataset: %w", err)
	}

	return total, nil
}
