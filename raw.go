package winpager

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

var _encoder = base64.RawURLEncoding

// RawWindowPager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawWindowPager `json:",inline"`
//	}
type RawWindowPager struct {
	// Page - 1-based page number to return. Non-positive values mean the first page.
	Page int `json:"page"`
	// PageSize - maximum number of records per page. Normalized via NormalizePageSize.
	PageSize int `json:"pageSize"`
	// PageToken - base64-encoded token obtained via EncodePageToken. When set,
	// it takes precedence over Page. An empty token means the first page.
	PageToken string `json:"pageToken"`
}

// Decode converts RawWindowPager into *WindowPager, normalizing PageSize,
// clamping Page below at 1 and validating PageToken. Returns *WindowPager
// with WithSort applied.
func (p RawWindowPager) Decode(orderBy ...OrderBy) (*WindowPager, error) {
	page := p.Page
	if p.PageToken != "" {
		decoded, err := DecodePageToken(p.PageToken)
		if err != nil {
			return nil, err
		}

		page = decoded
	}

	return NewWindowPager().
		WithPageSize(p.PageSize).
		WithInitialPage(page).
		WithSubstitutedSort(orderBy...), nil
}

// EncodePageToken encodes a 1-based page number as an opaque token. Page 1
// (or lower) encodes as the empty token: no token means the start of the
// dataset.
func EncodePageToken(page int) string {
	if page <= 1 {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(page)))
}

// DecodePageToken attempts to parse a token produced by EncodePageToken. The
// empty token decodes as page 1; a decoded page below 1 is clamped up.
func DecodePageToken(token string) (int, error) {
	if len(token) == 0 {
		return 1, nil
	}

	pageBytes, err := _encoder.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("failed to decode base64 encoded page token: %w", err)
	}

	page, err := strconv.Atoi(string(pageBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to decode page token value: %w", err)
	}

	return max(page, 1), nil
}

// NextPageToken returns the token for the page after the given window, or the
// empty string when the window is the last page. Return the empty token to
// the client to signal the end of the dataset.
func NextPageToken(w Window) string {
	if !w.HasNext {
		return ""
	}

	return EncodePageToken(w.Page + 1)
}
