package handler

import (
    "database/sql"
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/engine"
    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// PricePeriodHandler exposes admin CRUD for seasonal price periods.
// Every write runs through the engine's period validation gate so the
// non-overlap invariant per room type holds at the API boundary.
type PricePeriodHandler struct {
	Periods *repository.PricePeriodRepo
}

// NewPricePeriodHandler constructs a PricePeriodHandler.
func NewPricePeriodHandler(periods *repository.PricePeriodRepo) *PricePeriodHandler {
	if periods == nil {
		panic("nil repository passed to NewPricePeriodHandler")
	}
	return &PricePeriodHandler{Periods: periods}
}

type pricePeriodReq struct {
	RoomType    string `json:"room_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PriceCents  uint32 `json:"price_cents"`
	Description string `json:"description"`
}

// periodFromReq parses and normalizes a period request body.
func periodFromReq(req pricePeriodReq) (model.RoomPricePeriod, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return model.RoomPricePeriod{}, errors.New("start_date: " + err.Error())
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return model.RoomPricePeriod{}, errors.New("end_date: " + err.Error())
	}
	return model.RoomPricePeriod{
		RoomType:    strings.TrimSpace(req.RoomType),
		StartDate:   start,
		EndDate:     end,
		PriceCents:  req.PriceCents,
		Description: strings.TrimSpace(req.Description),
	}, nil
}

// Create handles POST /v1/admin/price-periods.  The new period must
// pass validation against all existing periods of the same room type:
// overlapping another period is a conflict.
func (h *PricePeriodHandler) Create(c echo.Context) error {
	var req pricePeriodReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	period, err := periodFromReq(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx := c.Request().Context()
	existing, err := h.Periods.ListByRoomType(ctx, period.RoomType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load price periods"})
	}
	if err := engine.ValidatePricePeriod(period, existing, 0); err != nil {
		if errors.Is(err, engine.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Periods.Create(ctx, &period); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create price period"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": period})
}

// Update handles PUT /v1/admin/price-periods/:id.  The period being
// updated is excluded from the overlap check so date adjustments that
// still touch its old range are accepted.
func (h *PricePeriodHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid period id"})
	}
	var req pricePeriodReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	period, err := periodFromReq(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	period.ID = id

	ctx := c.Request().Context()
	existing, err := h.Periods.ListByRoomType(ctx, period.RoomType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load price periods"})
	}
	if err := engine.ValidatePricePeriod(period, existing, id); err != nil {
		if errors.Is(err, engine.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Periods.Update(ctx, &period); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "price period not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update price period"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": period})
}

// Delete handles DELETE /v1/admin/price-periods/:id.
func (h *PricePeriodHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid period id"})
	}
	if err := h.Periods.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "price period not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete price period"})
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/admin/price-periods.  The optional room_type
// query parameter narrows the listing to one room type.
func (h *PricePeriodHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	roomType := strings.TrimSpace(c.QueryParam("room_type"))

	var (
		items []model.RoomPricePeriod
		err   error
	)
	if roomType != "" {
		items, err = h.Periods.ListByRoomType(ctx, roomType)
	} else {
		items, err = h.Periods.ListAll(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load price periods"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/admin/price-periods/:id.
func (h *PricePeriodHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid period id"})
	}
	period, err := h.Periods.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "price period not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load price period"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": period})
}
