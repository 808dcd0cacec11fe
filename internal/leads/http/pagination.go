package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/leads/internal/leads/domain"
)

// parsePage reads ?limit= and ?offset=. Missing values use the defaults;
// non-numeric or negative values are rejected.
func parsePage(r *http.Request) (domain.Page, error) {
	var (
		page domain.Page
		verr domain.ValidationError
	)

	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			verr.Add("limit", "must be a non-negative integer")
		}
		page.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			verr.Add("offset", "must be a non-negative integer")
		}
		page.Offset = n
	}

	if err := verr.Err(); err != nil {
		return domain.Page{}, err
	}
	return page.Normalize(), nil
}
