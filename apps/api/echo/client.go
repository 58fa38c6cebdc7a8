package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/genmo/core/content"
)

type clientApi struct {
	store    *content.Store
	validate *validator.Validate
}

func registerClientAPI(g *echo.Group, store *content.Store, validate *validator.Validate) {
	api := clientApi{store: store, validate: validate}

	cg := g.Group("/clients")
	cg.GET("", api.query)
	cg.POST("", api.create)

	// detail endpoints
	dg := cg.Group("/:id", existsMiddleware(func(id string) error {
		_, err := store.GetClient(id)
		return err
	}))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

func (api *clientApi) query(ctx echo.Context) error {
	var q ListQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	clients := []content.Client{}
	for _, c := range api.store.Clients() {
		if q.Status == "" || string(q.Status) == string(c.Status) {
			clients = append(clients, c)
		}
	}
	return ctx.JSON(http.StatusOK, clients)
}

func (api *clientApi) create(ctx echo.Context) error {
	var data content.NewClient
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClient")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	client, err := api.store.AddClient(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "adding client")
	}
	return ctx.JSON(http.StatusCreated, client)
}

func (api *clientApi) retrieve(ctx echo.Context) error {
	client, err := api.store.GetClient(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, client)
}

func (api *clientApi) update(ctx echo.Context) error {
	var data content.UpdateClient
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateClient")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	client, err := api.store.UpdateClient(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating client")
	}
	return ctx.JSON(http.StatusOK, client)
}

func (api *clientApi) destroy(ctx echo.Context) error {
	if err := api.store.DeleteClient(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting client")
	}
	return ctx.NoContent(http.StatusNoContent)
}
