package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryParams holds the common list-endpoint paging parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// FromEcho extracts paging parameters from the request, applying defaults and
// clamping the page size.
func FromEcho(c echo.Context) QueryParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return QueryParams{PageNumber: page, PageSize: size}
}
