package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/genmo/core"
	"github.com/trezcool/genmo/core/content"
)

var (
	limitParam  = "limit"
	searchParam = "search"
	statusParam = "status"
)

// ListQuery holds the optional query params of list endpoints.
type ListQuery struct {
	Limit  int
	Search string
	Status content.Status
}

func (q *ListQuery) Bind(ctx echo.Context) error {
	if val := ctx.QueryParam(limitParam); val != "" {
		limit, err := strconv.Atoi(val)
		if err != nil {
			return core.NewValidationError(nil, core.FieldError{Field: limitParam, Error: "must be a number"})
		}
		q.Limit = limit
	}
	q.Search = core.CleanString(ctx.QueryParam(searchParam))
	q.Status = content.Status(core.CleanString(ctx.QueryParam(statusParam), true /* lower */))
	return nil
}

// Match reports whether status passes the status filter.
func (q *ListQuery) Match(status content.Status) bool {
	return q.Status == "" || q.Status == status
}
