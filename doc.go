// Package winpager provides window (page/offset) pagination primitives for
// in-memory datasets and GORM queries.
//
// Overview
//
// winpager maintains a single 1-based page cursor over a caller-owned, fully
// materialized collection (for example parsed CSV rows pending import review)
// and derives the visible window from it on every observation. Navigation is
// clamped: no operation can land on a page that does not exist, and an empty
// dataset degenerates to the "page 1 of 0" state instead of failing.
//
// Key concepts
//   - WindowPager: owns the page cursor, page size and sort, exposes
//     navigation and the GORM bridge for DB-backed browsing.
//   - Window: derived page metadata (total pages, index range, boundary flags),
//     recomputed from the dataset length at call time and never cached.
//   - Orderings: multi-column ordering with explicit directions, parsed from
//     untrusted "column:direction" input with alias mapping.
//
// See README for examples and usage details.
package winpager
