package dto

import (
	"hotel/shared/constant"
	"net/http"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries optional pagination. A zero Limit returns every row.
// OrderBy is set by services, never by the client.
type QueryParams struct {
	Page    int      `json:"page"  validate:"omitempty"`
	Limit   int      `json:"limit" validate:"omitempty"`
	OrderBy []string `json:"-"`
}

// FromRequest populates QueryParams from the HTTP request.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// With defaultRequest set, Page and Limit fall back to the package defaults
// when absent. Otherwise only the values present in the request are set.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Sort replaces the ordering with the given "column DIR" terms.
func (q QueryParams) Sort(terms ...string) QueryParams {
	q.OrderBy = terms

	return q
}
