package services

import (
	"io"
	"net/url"
	"strconv"
)

// Upload is a binary attachment supplied by the caller: the original
// filename and content type pass through to the multipart body unchanged.
type Upload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// listQuery builds the standard collection query: page, per_page, plus any
// caller-supplied filter values.
func listQuery(page, perPage int, filters map[string]string) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	for k, v := range filters {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}
