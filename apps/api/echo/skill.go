package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/genmo/core/content"
)

type skillApi struct {
	store    *content.Store
	validate *validator.Validate
}

func registerSkillAPI(g *echo.Group, store *content.Store, validate *validator.Validate) {
	api := skillApi{store: store, validate: validate}

	sg := g.Group("/skills")
	sg.GET("", api.query)
	sg.POST("", api.create)

	dg := sg.Group("/:id", existsMiddleware(func(id string) error {
		_, err := store.GetSkill(id)
		return err
	}))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/toggle-status", api.toggleStatus)
	dg.GET("/modules", api.modules)
}

func (api *skillApi) query(ctx echo.Context) error {
	var q ListQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	skills := []content.Skill{}
	for _, s := range api.store.Skills() {
		if q.Match(s.Status) {
			skills = append(skills, s)
		}
	}
	return ctx.JSON(http.StatusOK, skills)
}

func (api *skillApi) create(ctx echo.Context) error {
	var data content.NewSkill
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSkill")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	skill, err := api.store.AddSkill(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding skill")
	}
	return ctx.JSON(http.StatusCreated, skill)
}

func (api *skillApi) retrieve(ctx echo.Context) error {
	skill, err := api.store.GetSkill(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, skill)
}

func (api *skillApi) update(ctx echo.Context) error {
	var data content.UpdateSkill
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSkill")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	skill, err := api.store.UpdateSkill(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating skill")
	}
	return ctx.JSON(http.StatusOK, skill)
}

func (api *skillApi) toggleStatus(ctx echo.Context) error {
	skill, err := api.store.ToggleSkillStatus(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "toggling skill status")
	}
	return ctx.JSON(http.StatusOK, skill)
}

func (api *skillApi) destroy(ctx echo.Context) error {
	if err := api.store.DeleteSkill(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting skill")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *skillApi) modules(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.ModulesBySkill(ctx.Param("id")))
}
