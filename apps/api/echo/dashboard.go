package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/genmo/core/content"
)

type dashboardApi struct {
	store *content.Store
}

func registerDashboardAPI(g *echo.Group, store *content.Store) {
	api := dashboardApi{store: store}

	g.GET("/activities", api.activities)
	g.GET("/stats", api.stats)
	g.GET("/library", api.library)
}

func (api *dashboardApi) activities(ctx echo.Context) error {
	var q ListQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.store.RecentActivities(q.Limit))
}

func (api *dashboardApi) stats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.Stats())
}

func (api *dashboardApi) library(ctx echo.Context) error {
	var q ListQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.store.Library(q.Search))
}
