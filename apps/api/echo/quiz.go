package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/genmo/core"
	"github.com/trezcool/genmo/core/content"
)

type quizApi struct {
	store    *content.Store
	validate *validator.Validate
}

func registerQuizAPI(g *echo.Group, store *content.Store, validate *validator.Validate) {
	api := quizApi{store: store, validate: validate}

	qg := g.Group("/quizzes")
	qg.GET("", api.query)
	qg.POST("", api.create)

	dg := qg.Group("/:id", existsMiddleware(func(id string) error {
		_, err := store.GetQuiz(id)
		return err
	}))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/toggle-status", api.toggleStatus)
	dg.POST("/grade", api.grade)
}

func (api *quizApi) query(ctx echo.Context) error {
	var q ListQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	quizzes := []content.Quiz{}
	for _, qz := range api.store.Quizzes() {
		if q.Match(qz.Status) {
			quizzes = append(quizzes, qz)
		}
	}
	return ctx.JSON(http.StatusOK, quizzes)
}

func (api *quizApi) create(ctx echo.Context) error {
	var data content.NewQuiz
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewQuiz")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	quiz, err := api.store.AddQuiz(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding quiz")
	}
	return ctx.JSON(http.StatusCreated, quiz)
}

func (api *quizApi) retrieve(ctx echo.Context) error {
	quiz, err := api.store.GetQuiz(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, quiz)
}

func (api *quizApi) update(ctx echo.Context) error {
	var data content.UpdateQuiz
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateQuiz")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	quiz, err := api.store.UpdateQuiz(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating quiz")
	}
	return ctx.JSON(http.StatusOK, quiz)
}

func (api *quizApi) toggleStatus(ctx echo.Context) error {
	quiz, err := api.store.ToggleQuizStatus(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "toggling quiz status")
	}
	return ctx.JSON(http.StatusOK, quiz)
}

func (api *quizApi) destroy(ctx echo.Context) error {
	if err := api.store.DeleteQuiz(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting quiz")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GradeRequest holds the answers of one attempt, keyed by question id.
type GradeRequest struct {
	Answers      map[string]content.Answer `json:"answers" validate:"required"`
	AttemptsUsed int                       `json:"attempts_used" validate:"min=0"`
}

type GradeResponse struct {
	content.Result
	AttemptsLeft int `json:"attempts_left"` // -1: unlimited
}

func (api *quizApi) grade(ctx echo.Context) error {
	var data GradeRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradeRequest")
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	quiz, err := api.store.GetQuiz(ctx.Param("id"))
	if err != nil {
		return err
	}
	if quiz.AttemptsLeft(data.AttemptsUsed) == 0 {
		return core.NewValidationError(nil, core.FieldError{Field: "attempts_used", Error: errNoAttemptsLeft})
	}

	res := quiz.Grade(data.Answers)
	return ctx.JSON(http.StatusOK, GradeResponse{Result: res, AttemptsLeft: quiz.AttemptsLeft(data.AttemptsUsed + 1)})
}
