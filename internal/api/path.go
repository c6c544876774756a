package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Path joins escaped segments into a request path: Path("movies", id) → "/movies/<id>".
func Path(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// WithQuery appends query parameters to path.
func WithQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// PageQuery builds the page/size query used by paginated endpoints.
func PageQuery(page, size int) url.Values {
	return url.Values{
		"page": []string{strconv.Itoa(page)},
		"size": []string{strconv.Itoa(size)},
	}
}

// FormatNumber renders a price or percentage as a path segment.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
