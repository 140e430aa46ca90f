package handler

import (
    "database/sql"
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-reservation/internal/model"
    "github.com/iliyamo/hotel-reservation/internal/repository"
)

// HolidayPackageHandler exposes the public active-package listing and
// admin CRUD over holiday packages and their per-room-type prices.
type HolidayPackageHandler struct {
	Packages *repository.HolidayPackageRepo
}

// NewHolidayPackageHandler constructs a HolidayPackageHandler.
func NewHolidayPackageHandler(packages *repository.HolidayPackageRepo) *HolidayPackageHandler {
	if packages == nil {
		panic("nil repository passed to NewHolidayPackageHandler")
	}
	return &HolidayPackageHandler{Packages: packages}
}

type holidayPackageReq struct {
	Name                 string            `json:"name"`
	StartDate            string            `json:"start_date"`
	EndDate              string            `json:"end_date"`
	Description          string            `json:"description"`
	PhotoURL             string            `json:"photo_url"`
	IsActive             *bool             `json:"is_active"`
	AllowPartialBookings bool              `json:"allow_partial_bookings"`
	RoomTypePrices       map[string]uint32 `json:"room_type_prices"`
}

// packageFromReq parses and validates a package request body.
func packageFromReq(req holidayPackageReq) (model.HolidayPackage, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.HolidayPackage{}, errors.New("name is required")
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return model.HolidayPackage{}, errors.New("start_date: " + err.Error())
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return model.HolidayPackage{}, errors.New("end_date: " + err.Error())
	}
	if end.Before(start) {
		return model.HolidayPackage{}, errors.New("end_date must not be before start_date")
	}
	for roomType, cents := range req.RoomTypePrices {
		if strings.TrimSpace(roomType) == "" {
			return model.HolidayPackage{}, errors.New("room_type_prices keys must not be blank")
		}
		if cents == 0 {
			return model.HolidayPackage{}, errors.New("room_type_prices values must be positive")
		}
	}
	// New packages default to active unless the client says otherwise.
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return model.HolidayPackage{
		Name:                 name,
		StartDate:            start,
		EndDate:              end,
		Description:          strings.TrimSpace(req.Description),
		PhotoURL:             strings.TrimSpace(req.PhotoURL),
		IsActive:             active,
		AllowPartialBookings: req.AllowPartialBookings,
		RoomTypePrices:       req.RoomTypePrices,
	}, nil
}

// ListActive handles GET /v1/packages.  It shows only packages that
// are currently switched on; inactive ones stay admin-only.
func (h *HolidayPackageHandler) ListActive(c echo.Context) error {
	items, err := h.Packages.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load packages"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// List handles GET /v1/admin/packages, including inactive packages.
func (h *HolidayPackageHandler) List(c echo.Context) error {
	items, err := h.Packages.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load packages"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/admin/packages/:id.
func (h *HolidayPackageHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid package id"})
	}
	pkg, err := h.Packages.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load package"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": pkg})
}

// Create handles POST /v1/admin/packages.
func (h *HolidayPackageHandler) Create(c echo.Context) error {
	var req holidayPackageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	pkg, err := packageFromReq(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Packages.Create(c.Request().Context(), &pkg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create package"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": pkg})
}

// Update handles PUT /v1/admin/packages/:id.  When room_type_prices is
// present and non-empty the stored price set is replaced wholesale;
// omitting it keeps the existing prices.
func (h *HolidayPackageHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid package id"})
	}
	var req holidayPackageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	pkg, err := packageFromReq(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	pkg.ID = id
	if err := h.Packages.Update(c.Request().Context(), &pkg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update package"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": pkg})
}

// Delete handles DELETE /v1/admin/packages/:id.
func (h *HolidayPackageHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid package id"})
	}
	if err := h.Packages.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete package"})
	}
	return c.NoContent(http.StatusNoContent)
}
