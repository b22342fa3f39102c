package utils

import (
	"net/url"
	"strconv"
)

// ParsePageParams reads page and size query parameters, falling back to the
// defaults when a parameter is absent or malformed. Size is capped at
// maxSize.
func ParsePageParams(q url.Values, defaultSize int64, maxSize int64) (page int64, size int64) {
	size = defaultSize

	if v, err := strconv.ParseInt(q.Get("page"), 10, 64); err == nil && v > 0 {
		page = v
	}

	if v, err := strconv.ParseInt(q.Get("size"), 10, 64); err == nil && v > 0 {
		size = v
	}
	if size > maxSize {
		size = maxSize
	}

	return page, size
}
