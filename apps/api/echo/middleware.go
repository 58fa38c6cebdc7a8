package echoapi

import (
	"github.com/labstack/echo/v4"
)

// existsMiddleware answers 404 unless get finds the record named by the :id path param.
func existsMiddleware(get func(id string) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if err := get(ctx.Param("id")); err != nil {
				return err
			}
			return next(ctx)
		}
	}
}
