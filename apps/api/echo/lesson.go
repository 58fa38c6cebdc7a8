package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/genmo/core/content"
)

type lessonApi struct {
	store    *content.Store
	validate *validator.Validate
}

func registerLessonAPI(g *echo.Group, store *content.Store, validate *validator.Validate) {
	api := lessonApi{store: store, validate: validate}

	lg := g.Group("/lessons")
	lg.GET("", api.query)
	lg.POST("", api.create)

	dg := lg.Group("/:id", existsMiddleware(func(id string) error {
		_, err := store.GetLesson(id)
		return err
	}))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/toggle-status", api.toggleStatus)
	dg.GET("/quizzes", api.quizzes)
	registerCardAPI(dg, store, validate)
}

func (api *lessonApi) query(ctx echo.Context) error {
	var q ListQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	lessons := []content.Lesson{}
	for _, l := range api.store.Lessons() {
		if q.Match(l.Status) {
			lessons = append(lessons, l)
		}
	}
	return ctx.JSON(http.StatusOK, lessons)
}

func (api *lessonApi) create(ctx echo.Context) error {
	var data content.NewLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLesson")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	lesson, err := api.store.AddLesson(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding lesson")
	}
	return ctx.JSON(http.StatusCreated, lesson)
}

func (api *lessonApi) retrieve(ctx echo.Context) error {
	lesson, err := api.store.GetLesson(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lesson)
}

func (api *lessonApi) update(ctx echo.Context) error {
	var data content.UpdateLesson
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateLesson")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	lesson, err := api.store.UpdateLesson(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating lesson")
	}
	return ctx.JSON(http.StatusOK, lesson)
}

func (api *lessonApi) toggleStatus(ctx echo.Context) error {
	lesson, err := api.store.ToggleLessonStatus(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "toggling lesson status")
	}
	return ctx.JSON(http.StatusOK, lesson)
}

func (api *lessonApi) destroy(ctx echo.Context) error {
	if err := api.store.DeleteLesson(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting lesson")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *lessonApi) quizzes(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.QuizzesByLesson(ctx.Param("id")))
}
