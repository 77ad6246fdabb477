package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
)

// DecodeJSON decodes the request body into dst. An empty body decodes
// to the zero value, which the validators then report field by field.
func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// pageFromRequest parses the `page` query parameter. Anything that is
// not an integer of at least 2 collapses to page 1: missing, negative,
// zero, non-numeric and exactly-1 inputs all produce the same page.
func pageFromRequest(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 1 {
		return 1
	}
	return page
}
