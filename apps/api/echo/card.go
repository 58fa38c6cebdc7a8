package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/genmo/core"
	"github.com/trezcool/genmo/core/content"
)

// newCardID is mockable.
var newCardID = func() string { return content.CardIDPrefix + uuid.New().String() }

type cardApi struct {
	store    *content.Store
	validate *validator.Validate
}

// CardResponse is a card with its styling rendered as inline CSS.
type CardResponse struct {
	content.LessonCard
	CSS string `json:"css"`
}

type MoveCardRequest struct {
	Direction content.Direction `json:"direction"`
}

func toCardResponse(card content.LessonCard) CardResponse {
	return CardResponse{LessonCard: card, CSS: card.Styling.CSS()}
}

// registerCardAPI mounts the card editor under a lesson detail group.
func registerCardAPI(lg *echo.Group, store *content.Store, validate *validator.Validate) {
	api := cardApi{store: store, validate: validate}

	lg.GET("/cards", api.query)
	lg.POST("/cards", api.create)
	lg.PUT("/cards/:cardID", api.update)
	lg.DELETE("/cards/:cardID", api.destroy)
	lg.POST("/cards/:cardID/move", api.move)
	lg.POST("/cards/:cardID/duplicate", api.duplicate)
}

func (api *cardApi) saveCards(ctx echo.Context, cards []content.LessonCard) error {
	_, err := api.store.UpdateLesson(ctx.Request().Context(), ctx.Param("id"), content.UpdateLesson{Cards: cards})
	return errors.Wrap(err, "saving lesson cards")
}

func (api *cardApi) query(ctx echo.Context) error {
	lesson, err := api.store.GetLesson(ctx.Param("id"))
	if err != nil {
		return err
	}
	cards := make([]CardResponse, 0, len(lesson.Cards))
	for _, c := range content.SortedCards(lesson.Cards) {
		cards = append(cards, toCardResponse(c))
	}
	return ctx.JSON(http.StatusOK, cards)
}

func (api *cardApi) create(ctx echo.Context) error {
	var data content.NewCard
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCard")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	lesson, err := api.store.GetLesson(ctx.Param("id"))
	if err != nil {
		return err
	}
	cards := content.AddCard(lesson.Cards, data.Card(newCardID()))
	if err := api.saveCards(ctx, cards); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toCardResponse(cards[len(cards)-1]))
}

func (api *cardApi) update(ctx echo.Context) error {
	var data content.NewCard
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCard")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	lesson, err := api.store.GetLesson(ctx.Param("id"))
	if err != nil {
		return err
	}
	card := data.Card(ctx.Param("cardID"))
	cards, ok := content.ReplaceCard(lesson.Cards, card)
	if !ok {
		return errCardNotFound
	}
	if err := api.saveCards(ctx, cards); err != nil {
		return err
	}
	for _, c := range cards {
		if c.ID == card.ID {
			card = c
		}
	}
	return ctx.JSON(http.StatusOK, toCardResponse(card))
}

func (api *cardApi) destroy(ctx echo.Context) error {
	lesson, err := api.store.GetLesson(ctx.Param("id"))
	if err != nil {
		return err
	}
	cards, ok := content.RemoveCard(lesson.Cards, ctx.Param("cardID"))
	if !ok {
		return errCardNotFound
	}
	if err := api.saveCards(ctx, cards); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *cardApi) move(ctx echo.Context) error {
	var data MoveCardRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MoveCardRequest")
	}
	if data.Direction != content.DirectionUp && data.Direction != content.DirectionDown {
		return core.NewValidationError(nil, core.FieldError{Field: "direction", Error: errInvalidDirection})
	}

	lesson, err := api.store.GetLesson(ctx.Param("id"))
	if err != nil {
		return err
	}
	cards, ok := content.MoveCard(lesson.Cards, ctx.Param("cardID"), data.Direction)
	if !ok {
		return errCardNotFound
	}
	if err := api.saveCards(ctx, cards); err != nil {
		return err
	}

	resp := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		resp = append(resp, toCardResponse(c))
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *cardApi) duplicate(ctx echo.Context) error {
	lesson, err := api.store.GetLesson(ctx.Param("id"))
	if err != nil {
		return err
	}
	cards, ok := content.DuplicateCard(lesson.Cards, ctx.Param("cardID"), newCardID())
	if !ok {
		return errCardNotFound
	}
	if err := api.saveCards(ctx, cards); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toCardResponse(cards[len(cards)-1]))
}
