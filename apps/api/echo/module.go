package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/genmo/core/content"
)

type moduleApi struct {
	store    *content.Store
	validate *validator.Validate
}

func registerModuleAPI(g *echo.Group, store *content.Store, validate *validator.Validate) {
	api := moduleApi{store: store, validate: validate}

	mg := g.Group("/modules")
	mg.GET("", api.query)
	mg.POST("", api.create)

	dg := mg.Group("/:id", existsMiddleware(func(id string) error {
		_, err := store.GetModule(id)
		return err
	}))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/toggle-status", api.toggleStatus)
	dg.GET("/lessons", api.lessons)
}

func (api *moduleApi) query(ctx echo.Context) error {
	var q ListQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	modules := []content.Module{}
	for _, m := range api.store.Modules() {
		if q.Match(m.Status) {
			modules = append(modules, m)
		}
	}
	return ctx.JSON(http.StatusOK, modules)
}

func (api *moduleApi) create(ctx echo.Context) error {
	var data content.NewModule
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewModule")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	module, err := api.store.AddModule(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding module")
	}
	return ctx.JSON(http.StatusCreated, module)
}

func (api *moduleApi) retrieve(ctx echo.Context) error {
	module, err := api.store.GetModule(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, module)
}

func (api *moduleApi) update(ctx echo.Context) error {
	var data content.UpdateModule
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateModule")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	module, err := api.store.UpdateModule(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating module")
	}
	return ctx.JSON(http.StatusOK, module)
}

func (api *moduleApi) toggleStatus(ctx echo.Context) error {
	module, err := api.store.ToggleModuleStatus(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "toggling module status")
	}
	return ctx.JSON(http.StatusOK, module)
}

func (api *moduleApi) destroy(ctx echo.Context) error {
	if err := api.store.DeleteModule(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting module")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *moduleApi) lessons(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.LessonsByModule(ctx.Param("id")))
}
