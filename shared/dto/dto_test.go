package dto_test

import (
	"hotel/shared/constant"
	"hotel/shared/dto"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:        "with all valid parameters",
			queryParams: map[string]string{"page": "2", "limit": "20"},
			expected:    dto.QueryParams{Page: 2, Limit: 20},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with default request disabled and no parameters",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "with invalid page parameter",
			queryParams:    map[string]string{"page": "invalid"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with negative limit parameter",
			queryParams: map[string]string{"limit": "-10"},
			expected:    dto.QueryParams{},
		},
		{
			name:        "sort parameters are ignored",
			queryParams: map[string]string{"sort_by": "salary", "sort_dir": "DESC"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/api/rooms")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestQueryParams_Sort(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 5}
	sorted := params.Sort("rooms.room_id " + dto.SortDirAsc)

	assert.Nil(t, params.OrderBy)
	assert.Equal(t, []string{"rooms.room_id ASC"}, sorted.OrderBy)
	assert.Equal(t, 5, sorted.Limit)
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "booking_id", Value: int64(301), Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.booking_id = :booking_id",
			wantArgs:  map[string]any{"booking_id": int64(301)},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "room_id", Value: []int{101, 102}, Operator: dto.FilterOperatorIn},
			wantWhere: "room_id IN (:room_id_0, :room_id_1)",
			wantArgs:  map[string]any{"room_id_0": 101, "room_id_1": 102},
		},
		{
			name:      "less or equal with arg name",
			filter:    dto.Filter{ArgName: "until", Field: "checkin_date", Value: "2024-06-05", Operator: dto.FilterOperatorLessEq},
			wantWhere: "checkin_date <= :until",
			wantArgs:  map[string]any{"until": "2024-06-05"},
		},
		{
			name:      "greater or equal",
			filter:    dto.Filter{Field: "checkout_date", Value: "2024-06-01", Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "checkout_date >= :checkout_date",
			wantArgs:  map[string]any{"checkout_date": "2024-06-01"},
		},
		{
			name:     "unknown operator",
			filter:   dto.Filter{Field: "name", Value: "x", Operator: "like"},
			wantArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{}
	group.Add("bookings", "room_id", int64(101))
	group.Add("bookings", "customer_id", int64(0))
	group.Add("bookings", "customer_id", int64(111))

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.room_id = :room_id AND bookings.customer_id = :customer_id)", where)
	assert.Equal(t, map[string]any{"room_id": int64(101), "customer_id": int64(111)}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
