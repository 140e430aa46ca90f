package handler

import (
    "database/sql"     // sentinel errors returned from repositories
    "errors"           // errors.Is comparisons
    "net/http"         // HTTP status codes
    "strings"          // trimming request fields

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/iliyamo/hotel-reservation/internal/engine"
    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// RoomHandler groups the repositories needed to browse rooms, search
// availability and price stays.  Public browsing endpoints assume no
// authentication; the admin CRUD endpoints assume the ADMIN role has
// been enforced by middleware.
type RoomHandler struct {
	Rooms    *repository.RoomRepo
	Bookings *repository.BookingRepo
	Periods  *repository.PricePeriodRepo
	Packages *repository.HolidayPackageRepo
}

// NewRoomHandler constructs a RoomHandler.  All dependencies must be non-nil.
func NewRoomHandler(rooms *repository.RoomRepo, bookings *repository.BookingRepo, periods *repository.PricePeriodRepo, packages *repository.HolidayPackageRepo) *RoomHandler {
	if rooms == nil || bookings == nil || periods == nil || packages == nil {
		panic("nil repository passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms, Bookings: bookings, Periods: periods, Packages: packages}
}

type roomReq struct {
	RoomType       string `json:"room_type"`
	BasePriceCents uint32 `json:"base_price_cents"`
	Description    string `json:"description"`
	PhotoURL       string `json:"photo_url"`
}

// List handles GET /v1/rooms.  It returns every room.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load rooms"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

// Get handles GET /v1/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	room, err := h.Rooms.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": room})
}

// Types handles GET /v1/rooms/types.  It returns the distinct room
// types currently on offer, for populating search filters.
func (h *RoomHandler) Types(c echo.Context) error {
	types, err := h.Rooms.DistinctRoomTypes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load room types"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": types})
}

// Available handles GET /v1/rooms/available.  Query parameters:
// check_in and check_out (YYYY-MM-DD, required) and room_type
// (optional filter).  A room is included only when the availability
// gate passes: no blocking holiday package on its type and no
// conflicting booking on the room itself.
func (h *RoomHandler) Available(c echo.Context) error {
	checkIn, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in: " + err.Error()})
	}
	checkOut, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out: " + err.Error()})
	}

	ctx := c.Request().Context()
	roomType := strings.TrimSpace(c.QueryParam("room_type"))

	var rooms []model.Room
	if roomType != "" {
		rooms, err = h.Rooms.ListByType(ctx, roomType)
	} else {
		rooms, err = h.Rooms.ListAll(ctx)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load rooms"})
	}

	// One package query covers every candidate room.
	packages, err := h.Packages.ListActiveIntersecting(ctx, checkIn, checkOut)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load packages"})
	}

	available := make([]model.Room, 0, len(rooms))
	for _, room := range rooms {
		existing, err := h.Bookings.ListByRoom(ctx, room.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
		}
		res, err := engine.CheckAvailability(room.RoomType, checkIn, checkOut, packages, existing)
		if err != nil {
			if errors.Is(err, engine.ErrValidation) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability check failed"})
		}
		if res.Available {
			available = append(available, room)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": available})
}

// Price handles GET /v1/rooms/:id/price.  Query parameters: check_in
// and check_out (YYYY-MM-DD).  It prices the stay night by night and
// returns the total, the rounded per-night average and a breakdown of
// contiguous same-price segments.  Nothing is persisted.
func (h *RoomHandler) Price(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	checkIn, err := parseDate(c.QueryParam("check_in"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in: " + err.Error()})
	}
	checkOut, err := parseDate(c.QueryParam("check_out"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out: " + err.Error()})
	}

	ctx := c.Request().Context()
	room, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load room"})
	}
	periods, err := h.Periods.ListIntersecting(ctx, room.RoomType, checkIn, checkOut)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load price periods"})
	}
	calc, err := engine.CalculatePrice(room, periods, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, engine.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "price calculation failed"})
	}
	return c.JSON(http.StatusOK, calc)
}

// Create handles POST /v1/admin/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.RoomType = strings.TrimSpace(req.RoomType)
	if req.RoomType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_type is required"})
	}
	if req.BasePriceCents == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "base_price_cents must be positive"})
	}
	room := model.Room{
		RoomType:       req.RoomType,
		BasePriceCents: req.BasePriceCents,
		Description:    strings.TrimSpace(req.Description),
		PhotoURL:       strings.TrimSpace(req.PhotoURL),
	}
	if err := h.Rooms.Create(c.Request().Context(), &room); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create room"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": room})
}

// Update handles PUT /v1/admin/rooms/:id.
func (h *RoomHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.RoomType = strings.TrimSpace(req.RoomType)
	if req.RoomType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_type is required"})
	}
	if req.BasePriceCents == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "base_price_cents must be positive"})
	}
	room := model.Room{
		ID:             id,
		RoomType:       req.RoomType,
		BasePriceCents: req.BasePriceCents,
		Description:    strings.TrimSpace(req.Description),
		PhotoURL:       strings.TrimSpace(req.PhotoURL),
	}
	if err := h.Rooms.Update(c.Request().Context(), &room); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update room"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": room})
}

// Delete handles DELETE /v1/admin/rooms/:id.  A room that still has
// bookings cannot be deleted; the repository reports that as a
// conflict.
func (h *RoomHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room has bookings"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete room"})
	}
	return c.NoContent(http.StatusNoContent)
}
