package winpager

const (
	MaxPageSize     = 1000
	DefaultPageSize = 50
)

// IsNormalizedPageSizeMax normalizes a page size against maxPageSize and
// reports whether the input was already in range. Non-positive values fall
// back to DefaultPageSize rather than being rejected, so construction can
// never fail on a bad page size.
func IsNormalizedPageSizeMax(pageSize int, maxPageSize int) (int, bool) {
	if pageSize <= 0 {
		return DefaultPageSize, false
	} else if pageSize > maxPageSize {
		return maxPageSize, false
	}

	return pageSize, true
}

func NormalizePageSizeMax(pageSize int, maxPageSize int) int {
	ret, _ := IsNormalizedPageSizeMax(pageSize, maxPageSize)
	return ret
}

func NormalizePageSize(pageSize int) int {
	return NormalizePageSizeMax(pageSize, MaxPageSize)
}
